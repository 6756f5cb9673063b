package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "aulataller_backend/internals/features/workshops/assignments/dto"
	m "aulataller_backend/internals/features/workshops/assignments/model"
	"aulataller_backend/internals/features/workshops/assignments/repository"
	"aulataller_backend/internals/features/workshops/assignments/service"
	helper "aulataller_backend/internals/helpers"
	helperAuth "aulataller_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AssignmentController {
	return &AssignmentController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}
	return uuid.Parse(raw)
}

func viewerIDs(c *fiber.Ctx) ([]uuid.UUID, error) {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	ids := []uuid.UUID{userID}
	if profID := helperAuth.GetProfessorIDFromToken(c); profID != nil {
		ids = append(ids, *profID)
	}
	return ids, nil
}

/* ===================== LIST (role scoped) ===================== */

// GET /api/u/assignments
// Admins see everything, coordinators their own organization, teachers only
// assignments they referent or staff a session of.
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&m.AssignmentModel{}).
		Preload("Workshop").
		Preload("Organization")

	switch {
	case helperAuth.IsAdmin(c):
		if raw := strings.TrimSpace(c.Query("organization_id")); raw != "" {
			orgID, err := uuid.Parse(raw)
			if err != nil {
				return helper.JsonError(c, http.StatusBadRequest, "invalid organization id")
			}
			q = q.Where("assignment_organization_id = ?", orgID)
		}
	case helperAuth.IsCoordinator(c):
		orgID := helperAuth.GetOrganizationIDFromToken(c)
		if orgID == nil {
			return helper.JsonError(c, http.StatusForbidden, "coordinator token has no organization")
		}
		q = q.Where("assignment_organization_id = ?", *orgID)
	case helperAuth.IsTeacher(c):
		ids, err := viewerIDs(c)
		if err != nil {
			return helper.JsonError(c, http.StatusUnauthorized, "invalid token")
		}
		q = q.Where(`assignment_referent_primary_id IN ?
			OR assignment_referent_secondary_id IN ?
			OR EXISTS (
				SELECT 1 FROM sessions s
				JOIN session_staff st ON st.session_staff_session_id = s.session_id
				WHERE s.session_assignment_id = assignments.assignment_id
				  AND st.session_staff_teacher_id IN ?
				  AND s.session_deleted_at IS NULL
				  AND st.session_staff_deleted_at IS NULL
			)`,
			ids, ids, ids)
	default:
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("assignment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.AssignmentModel
	if err := q.
		Order("assignment_start_date ASC NULLS LAST, assignment_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

/* ===================== GET BY ID ===================== */

func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid assignment id")
	}

	var row m.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Workshop").
		Preload("Workshop.Slots").
		Preload("Organization").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_number ASC")
		}).
		Preload("Sessions.Staff").
		Where("assignment_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

/* ===================== ENROLLMENTS ===================== */

// GET /api/u/assignments/:id/enrollments
func (ctl *AssignmentController) ListEnrollments(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid assignment id")
	}

	var rows []m.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("enrollment_assignment_id = ?", id).
		Order("enrollment_participant_name ASC NULLS LAST, enrollment_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.EnrollmentsFromModels(rows))
}

/* ===================== PATCH REFERENTS ===================== */

// PATCH /api/a/assignments/:id/referents
// Both referent slots are replaced by the payload; null clears a slot.
func (ctl *AssignmentController) PatchReferents(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid assignment id")
	}

	var req d.UpdateReferentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.AssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("assignment_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "assignment not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{
		"assignment_referent_primary_id":   req.ReferentPrimaryID,
		"assignment_referent_secondary_id": req.ReferentSecondaryID,
	}
	if err := ctl.DB.WithContext(c.Context()).
		Model(&row).Updates(updates).Error; err != nil {
		return helper.JsonDBError(c, err)
	}

	row.AssignmentReferentPrimaryID = req.ReferentPrimaryID
	row.AssignmentReferentSecondaryID = req.ReferentSecondaryID
	return helper.JsonUpdated(c, "Referents updated", d.FromModel(row))
}

/* ===================== SYNC SESSIONS ===================== */

// POST /api/a/assignments/:id/sessions/sync
// Rebuilds the session calendar from the workshop slot pattern. Declines
// silently (synced=false) when attendance was already recorded.
func (ctl *AssignmentController) SyncSessions(c *fiber.Ctx) error {
	if !helperAuth.IsStaff(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid assignment id")
	}

	svc := service.NewSessionSyncService(repository.NewSchedulingStore(ctl.DB))
	res, err := svc.SyncSessions(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "assignment not found")
		}
		log.Printf("[assignments] session sync failed for %s: %v", id, err)
		return helper.JsonError(c, http.StatusInternalServerError, "session sync failed")
	}

	return helper.JsonOK(c, "", res)
}
