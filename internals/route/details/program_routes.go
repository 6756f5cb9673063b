package details

import (
	OrganizationRoutes "aulataller_backend/internals/features/organizations/route"
	PhaseRoutes "aulataller_backend/internals/features/program/phases/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER ===================== */

func ProgramUserRoutes(r fiber.Router, db *gorm.DB) {
	OrganizationRoutes.OrganizationRoutes(r, db)
	PhaseRoutes.PhaseUserRoutes(r, db)
}

/* ===================== ADMIN ===================== */

func ProgramAdminRoutes(r fiber.Router, db *gorm.DB) {
	PhaseRoutes.PhaseAdminRoutes(r, db)
}
