package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "aulataller_backend/internals/features/workshops/workshops/dto"
	m "aulataller_backend/internals/features/workshops/workshops/model"
	helper "aulataller_backend/internals/helpers"
	helperAuth "aulataller_backend/internals/helpers/auth"
)

type WorkshopController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *WorkshopController {
	return &WorkshopController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, errors.New(name + " is required")
	}
	return uuid.Parse(raw)
}

func (ctl *WorkshopController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.WorkshopModel{})
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		q = q.Where("workshop_title ILIKE ?", "%"+term+"%")
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("workshop_tags @> ?", pq.Array([]string{tag}))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.WorkshopModel
	if err := q.
		Preload("Slots").
		Order("workshop_title ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

func (ctl *WorkshopController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid workshop id")
	}

	var row m.WorkshopModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Slots").
		Where("workshop_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "workshop not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

func (ctl *WorkshopController) Create(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.CreateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err)
	}
	return helper.JsonCreated(c, "Workshop created", d.FromModel(row))
}

func (ctl *WorkshopController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid workshop id")
	}

	var existing m.WorkshopModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("workshop_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "workshop not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var req d.UpdateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	req.Apply(&existing)

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		if req.Slots != nil {
			// full replace of the weekly pattern
			if err := tx.
				Where("workshop_slot_workshop_id = ?", existing.WorkshopID).
				Delete(&m.WorkshopSlotModel{}).Error; err != nil {
				return err
			}
			for _, s := range *req.Slots {
				slot := m.WorkshopSlotModel{
					WorkshopSlotWorkshopID: existing.WorkshopID,
					WorkshopSlotWeekday:    s.Weekday,
					WorkshopSlotStartTime:  s.StartTime,
					WorkshopSlotEndTime:    s.EndTime,
				}
				if err := tx.Create(&slot).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var fresh m.WorkshopModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Slots").
		Where("workshop_id = ?", existing.WorkshopID).
		First(&fresh).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Workshop updated", d.FromModel(fresh))
}

func (ctl *WorkshopController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid workshop id")
	}

	var existing m.WorkshopModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("workshop_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "workshop not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Workshop deleted", d.FromModel(existing))
}
