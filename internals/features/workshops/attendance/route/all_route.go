package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "aulataller_backend/internals/features/workshops/attendance/controller"
)

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db, validator.New())

	r.Get("/assignments/:id/sessions/:number/status", ctl.GetSessionStatus)
}

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db, validator.New())

	g := r.Group("/assignments/:id/sessions/:number/attendance")
	g.Post("/sync", ctl.Sync)
	g.Get("/", ctl.ListBySession)
}
