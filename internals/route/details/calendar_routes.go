package details

import (
	CalendarRoutes "aulataller_backend/internals/features/calendar/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CalendarUserRoutes(r fiber.Router, db *gorm.DB) {
	CalendarRoutes.CalendarUserRoutes(r, db)
}
