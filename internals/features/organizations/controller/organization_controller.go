package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "aulataller_backend/internals/features/organizations/dto"
	m "aulataller_backend/internals/features/organizations/model"
	helper "aulataller_backend/internals/helpers"
)

type OrganizationController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

func (ctl *OrganizationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.OrganizationModel{})
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		q = q.Where("organization_name ILIKE ?", "%"+term+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.OrganizationModel
	if err := q.
		Order("organization_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

func (ctl *OrganizationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid organization id")
	}

	var row m.OrganizationModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("organization_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "organization not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}
