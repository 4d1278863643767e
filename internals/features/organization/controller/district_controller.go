package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/organization/dto"
	"polstat_backend/internals/features/organization/model"
	helper "polstat_backend/internals/helpers"
)

type DistrictController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewDistrictController(db *gorm.DB) *DistrictController {
	return &DistrictController{DB: db, validate: validator.New()}
}

func (ctrl *DistrictController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.District{})
	if rangeID := c.QueryInt("range_id", 0); rangeID > 0 {
		q = q.Where("district_range_id = ?", rangeID)
	}
	if stateID := c.QueryInt("state_id", 0); stateID > 0 {
		q = q.Where("district_state_id = ?", stateID)
	}
	if name := c.Query("name"); name != "" {
		q = q.Where("district_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var districts []model.District
	if err := q.Order("district_priority ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&districts).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "Districts fetched", districts, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *DistrictController) Create(c *fiber.Ctx) error {
	var req dto.DistrictCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// the state is denormalized onto the district so ledger stamping is one read
	var rng model.Range
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&rng, "range_id = ?", req.DistrictRangeID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Range not found")
	}

	district := model.District{
		DistrictRangeID:          req.DistrictRangeID,
		DistrictStateID:          rng.RangeStateID,
		DistrictName:             req.DistrictName,
		DistrictPriority:         req.DistrictPriority,
		DistrictPSCount:          req.DistrictPSCount,
		DistrictSubdivisionCount: req.DistrictSubdivisionCount,
		DistrictCircleCount:      req.DistrictCircleCount,
		DistrictPSOPCount:        req.DistrictPSOPCount,
		DistrictIsActive:         true,
	}
	if district.DistrictPriority == 0 {
		district.DistrictPriority = 1
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&district).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "District name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "District created", district)
}

func (ctrl *DistrictController) Update(c *fiber.Ctx) error {
	var district model.District
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&district, "district_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District not found")
	}

	var req dto.DistrictUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.DistrictName != nil {
		district.DistrictName = *req.DistrictName
	}
	if req.DistrictPriority != nil {
		district.DistrictPriority = *req.DistrictPriority
	}
	if req.DistrictPSCount != nil {
		district.DistrictPSCount = *req.DistrictPSCount
	}
	if req.DistrictSubdivisionCount != nil {
		district.DistrictSubdivisionCount = *req.DistrictSubdivisionCount
	}
	if req.DistrictCircleCount != nil {
		district.DistrictCircleCount = *req.DistrictCircleCount
	}
	if req.DistrictPSOPCount != nil {
		district.DistrictPSOPCount = *req.DistrictPSOPCount
	}
	if req.DistrictIsActive != nil {
		district.DistrictIsActive = *req.DistrictIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&district).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "District name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "District updated", district)
}

func (ctrl *DistrictController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.District{}, "district_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "District not found")
	}
	return helper.JsonOK(c, "District deleted", nil)
}
