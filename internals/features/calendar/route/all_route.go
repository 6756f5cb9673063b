package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "aulataller_backend/internals/features/calendar/controller"
)

func CalendarUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.New(db)

	g := r.Group("/calendar")
	g.Get("/events", ctl.GetEvents)
}
