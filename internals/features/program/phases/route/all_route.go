package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "aulataller_backend/internals/features/program/phases/controller"
)

// PhaseUserRoutes mounts read endpoints for phases and milestones.
func PhaseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db, validator.New())

	g := r.Group("/phases")
	g.Get("/", ctl.ListPhases)
	g.Get("/milestones", ctl.ListMilestones)
}

// PhaseAdminRoutes mounts milestone management.
func PhaseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db, validator.New())

	g := r.Group("/phases")
	g.Post("/milestones", ctl.CreateMilestone)
}
