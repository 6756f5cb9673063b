package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "aulataller_backend/internals/features/workshops/assignments/controller"
)

func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db, validator.New())

	g := r.Group("/assignments")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/enrollments", ctl.ListEnrollments)
}

func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := ctr.New(db, v)
	sessions := ctr.NewSessionController(db, v)
	recurrence := ctr.NewRecurrenceController()

	g := r.Group("/assignments")
	g.Patch("/:id/referents", ctl.PatchReferents)
	g.Post("/:id/sessions/sync", ctl.SyncSessions)
	g.Post("/:id/sessions/:number/staff", sessions.AddStaff)
	g.Delete("/:id/sessions/:number/staff/:teacherId", sessions.RemoveStaff)

	r.Get("/recurrence/preview", recurrence.Preview)
}
