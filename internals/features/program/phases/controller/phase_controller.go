package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "aulataller_backend/internals/features/program/phases/dto"
	m "aulataller_backend/internals/features/program/phases/model"
	helper "aulataller_backend/internals/helpers"
	helperAuth "aulataller_backend/internals/helpers/auth"
)

type PhaseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *PhaseController {
	return &PhaseController{DB: db, Validate: v}
}

func (ctl *PhaseController) ListPhases(c *fiber.Ctx) error {
	var rows []m.PhaseModel
	q := ctl.DB.WithContext(c.Context()).Order("phase_position ASC")
	if strings.EqualFold(c.Query("active"), "true") {
		q = q.Where("phase_is_active = TRUE")
	}
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.PhasesFromModels(rows))
}

func (ctl *PhaseController) ListMilestones(c *fiber.Ctx) error {
	from, err := helper.ParseDateQuery(c.Query("from"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	to, err := helper.ParseDateQuery(c.Query("to"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	q := ctl.DB.WithContext(c.Context()).Preload("Phase")
	if from != nil {
		q = q.Where("milestone_date >= ?", helper.FormatDate(*from))
	}
	if to != nil {
		q = q.Where("milestone_date <= ?", helper.FormatDate(*to))
	}

	var rows []m.MilestoneModel
	if err := q.Order("milestone_date ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.MilestonesFromModels(rows))
}

func (ctl *PhaseController) CreateMilestone(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Access denied")
	}

	var req d.CreateMilestoneRequest
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
	return helper.JsonCreated(c, "Milestone created", d.MilestoneFromModel(row))
}
