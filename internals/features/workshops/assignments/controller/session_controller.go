package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "aulataller_backend/internals/features/workshops/assignments/dto"
	m "aulataller_backend/internals/features/workshops/assignments/model"
	helper "aulataller_backend/internals/helpers"
	helperAuth "aulataller_backend/internals/helpers/auth"
)

// SessionController manages per-session staff rows. Sessions themselves are
// only ever written by the synchronizer, never by hand.
type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validate: v}
}

func (ctl *SessionController) findSession(c *fiber.Ctx) (*m.SessionModel, error) {
	assignmentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, "invalid assignment id")
	}
	number, err := c.ParamsInt("number")
	if err != nil || number < 1 {
		return nil, helper.JsonError(c, http.StatusBadRequest, "invalid session number")
	}

	var row m.SessionModel
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

/* ===================== ADD STAFF ===================== */

// POST /api/a/assignments/:id/sessions/:number/staff
func (ctl *SessionController) AddStaff(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	session, err := ctl.findSession(c)
	if err != nil {
		return err
	}

	var req d.AddStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	// a teacher is at most once on a session
	var existing int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.SessionStaffModel{}).
		Where("session_staff_session_id = ? AND session_staff_teacher_id = ?",
			session.SessionID, req.TeacherID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if existing > 0 {
		return helper.JsonError(c, http.StatusConflict, "teacher already assigned to this session")
	}

	row := m.SessionStaffModel{
		SessionStaffSessionID:   session.SessionID,
		SessionStaffTeacherID:   req.TeacherID,
		SessionStaffTeacherName: req.TeacherName,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err)
	}

	return helper.JsonCreated(c, "Staff assigned", d.StaffResponse{
		SessionStaffID: row.SessionStaffID,
		TeacherID:      row.SessionStaffTeacherID,
		TeacherName:    row.SessionStaffTeacherName,
	})
}

/* ===================== REMOVE STAFF ===================== */

// DELETE /api/a/assignments/:id/sessions/:number/staff/:teacherId
func (ctl *SessionController) RemoveStaff(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	session, err := ctl.findSession(c)
	if err != nil {
		return err
	}
	teacherID, err := parseUUIDParam(c, "teacherId")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid teacher id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("session_staff_session_id = ? AND session_staff_teacher_id = ?",
			session.SessionID, teacherID).
		Delete(&m.SessionStaffModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "staff row not found")
	}

	return helper.JsonDeleted(c, "Staff removed", fiber.Map{
		"session_id": session.SessionID,
		"teacher_id": teacherID,
	})
}
