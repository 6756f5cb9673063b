package routes

import (
	"log"
	"os"

	authMiddleware "aulataller_backend/internals/middlewares/auth"
	routeDetails "aulataller_backend/internals/route/details"

	"aulataller_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// every authenticated user
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// admin + coordinator
	log.Println("[INFO] Setting up STAFF group (Auth + RoleCheck)...")
	staff := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRoles(constants.StaffRoles...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Program routes...")
	routeDetails.ProgramUserRoutes(user, db)
	routeDetails.ProgramAdminRoutes(staff, db)

	log.Println("[INFO] Mounting Workshop routes...")
	routeDetails.WorkshopUserRoutes(user, db)
	routeDetails.WorkshopAdminRoutes(staff, db)

	log.Println("[INFO] Mounting Calendar routes...")
	routeDetails.CalendarUserRoutes(user, db)
}
