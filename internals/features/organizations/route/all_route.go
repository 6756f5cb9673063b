package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "aulataller_backend/internals/features/organizations/controller"
)

// OrganizationRoutes mounts read endpoints for hosting organizations.
func OrganizationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db)

	g := r.Group("/organizations")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
