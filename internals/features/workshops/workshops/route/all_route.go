package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "aulataller_backend/internals/features/workshops/workshops/controller"
)

func WorkshopUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db, validator.New())

	g := r.Group("/workshops")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

func WorkshopAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db, validator.New())

	g := r.Group("/workshops")
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
