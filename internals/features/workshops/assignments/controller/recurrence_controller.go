package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"aulataller_backend/internals/features/workshops/assignments/service"
	helper "aulataller_backend/internals/helpers"
)

// RecurrenceController exposes the date generator so operators can preview a
// schedule before creating an assignment. Pure read, no persistence.
type RecurrenceController struct{}

func NewRecurrenceController() *RecurrenceController {
	return &RecurrenceController{}
}

// GET /api/a/recurrence/preview?start=2026-01-13&weekdays=dilluns,dimecres&total=12
func (ctl *RecurrenceController) Preview(c *fiber.Ctx) error {
	start, err := helper.ParseDate(c.Query("start"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid start date, want YYYY-MM-DD")
	}

	total, err := strconv.Atoi(strings.TrimSpace(c.Query("total")))
	if err != nil || total < 0 || total > 200 {
		return helper.JsonError(c, http.StatusBadRequest, "total must be 0..200")
	}

	var names []string
	if raw := strings.TrimSpace(c.Query("weekdays")); raw != "" {
		names = strings.Split(raw, ",")
	}

	dates := service.GenerateDates(start, service.ParseWeekdayNames(names), total)

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(helper.DateLayout))
	}
	return helper.JsonOK(c, "", fiber.Map{
		"dates": out,
		"count": len(out),
	})
}
