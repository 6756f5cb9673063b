package controller

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aulataller_backend/internals/features/calendar/repository"
	"aulataller_backend/internals/features/calendar/service"
	helper "aulataller_backend/internals/helpers"
	helperAuth "aulataller_backend/internals/helpers/auth"
)

type CalendarController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

// GET /api/u/calendar/events?from=2026-01-01&to=2026-03-31
// The event list is shaped by the caller's token: admins see the whole
// program, coordinators their organization, teachers only what they run.
func (ctl *CalendarController) GetEvents(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid token")
	}

	from, err := helper.ParseDateQuery(c.Query("from"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid from date, want YYYY-MM-DD")
	}
	to, err := helper.ParseDateQuery(c.Query("to"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid to date, want YYYY-MM-DD")
	}
	if from != nil && to != nil && to.Before(*from) {
		return helper.JsonError(c, http.StatusBadRequest, "to precedes from")
	}

	viewer := service.Viewer{
		UserID:         userID,
		Role:           helperAuth.GetRole(c),
		OrganizationID: helperAuth.GetOrganizationIDFromToken(c),
		ProfessorID:    helperAuth.GetProfessorIDFromToken(c),
	}

	agg := service.NewAggregator(repository.NewCalendarStore(ctl.DB))
	res, err := agg.GetEvents(c.Context(), viewer, service.DateRange{From: from, To: to})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "calendar aggregation failed")
	}

	return helper.JsonOK(c, "", res)
}
