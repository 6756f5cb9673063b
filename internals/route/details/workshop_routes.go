package details

import (
	AssignmentRoutes "aulataller_backend/internals/features/workshops/assignments/route"
	AttendanceRoutes "aulataller_backend/internals/features/workshops/attendance/route"
	WorkshopRoutes "aulataller_backend/internals/features/workshops/workshops/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== USER ===================== */

func WorkshopUserRoutes(r fiber.Router, db *gorm.DB) {
	WorkshopRoutes.WorkshopUserRoutes(r, db)
	AssignmentRoutes.AssignmentUserRoutes(r, db)
	AttendanceRoutes.AttendanceUserRoutes(r, db)
}

/* ===================== ADMIN ===================== */

func WorkshopAdminRoutes(r fiber.Router, db *gorm.DB) {
	WorkshopRoutes.WorkshopAdminRoutes(r, db)
	AssignmentRoutes.AssignmentAdminRoutes(r, db)
	AttendanceRoutes.AttendanceAdminRoutes(r, db)
}
