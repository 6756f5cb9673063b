package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgModel "aulataller_backend/internals/features/workshops/assignments/model"
	d "aulataller_backend/internals/features/workshops/attendance/dto"
	"aulataller_backend/internals/features/workshops/attendance/repository"
	"aulataller_backend/internals/features/workshops/attendance/service"
	helper "aulataller_backend/internals/helpers"
	helperAuth "aulataller_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

func (ctl *AttendanceController) findSession(c *fiber.Ctx) (*asgModel.SessionModel, error) {
	raw := strings.TrimSpace(c.Params("id"))
	assignmentID, err := uuid.Parse(raw)
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, "invalid assignment id")
	}
	number, err := c.ParamsInt("number")
	if err != nil || number < 1 {
		return nil, helper.JsonError(c, http.StatusBadRequest, "invalid session number")
	}

	var row asgModel.SessionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("session_assignment_id = ? AND session_number = ?", assignmentID, number).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, http.StatusNotFound, "session not found")
		}
		return nil, helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return &row, nil
}

/* ===================== SYNC ===================== */

// POST /api/a/assignments/:id/sessions/:number/attendance/sync
// Called on session open. Creates one present record per enrollment that has
// none yet; repeated calls are no-ops for covered enrollments.
func (ctl *AttendanceController) Sync(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	session, err := ctl.findSession(c)
	if err != nil {
		return err
	}

	svc := service.NewAttendanceSyncService(repository.NewAttendanceStore(ctl.DB))
	created, err := svc.EnsureAttendance(c.Context(),
		session.SessionAssignmentID, session.SessionNumber, session.SessionDate)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"created":        created,
		"session_number": session.SessionNumber,
	})
}

/* ===================== STATUS ===================== */

// GET /api/u/assignments/:id/sessions/:number/status
func (ctl *AttendanceController) GetSessionStatus(c *fiber.Ctx) error {
	session, err := ctl.findSession(c)
	if err != nil {
		return err
	}

	resolver := service.NewStatusResolver(repository.NewAttendanceStore(ctl.DB))
	status, err := resolver.GetStatus(c.Context(),
		session.SessionAssignmentID, session.SessionNumber)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"session_number": session.SessionNumber,
		"session_date":   session.SessionDate.Format("2006-01-02"),
		"status":         status,
	})
}

/* ===================== LIST ===================== */

// GET /api/a/assignments/:id/sessions/:number/attendance
func (ctl *AttendanceController) ListBySession(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	session, err := ctl.findSession(c)
	if err != nil {
		return err
	}

	store := repository.NewAttendanceStore(ctl.DB)
	records, err := store.ListAttendance(c.Context(),
		session.SessionAssignmentID, session.SessionNumber)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", d.FromModels(records))
}
