package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/organization/dto"
	"polstat_backend/internals/features/organization/model"
	helper "polstat_backend/internals/helpers"
)

type RangeController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewRangeController(db *gorm.DB) *RangeController {
	return &RangeController{DB: db, validate: validator.New()}
}

func (ctrl *RangeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.Range{})
	if stateID := c.QueryInt("state_id", 0); stateID > 0 {
		q = q.Where("range_state_id = ?", stateID)
	}
	if name := c.Query("name"); name != "" {
		q = q.Where("range_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var ranges []model.Range
	if err := q.Order("range_priority ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&ranges).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "Ranges fetched", ranges, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *RangeController) Create(c *fiber.Ctx) error {
	var req dto.RangeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var state model.State
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&state, "state_id = ?", req.RangeStateID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "State not found")
	}

	rng := model.Range{
		RangeStateID:  req.RangeStateID,
		RangeName:     req.RangeName,
		RangePriority: req.RangePriority,
		RangeIsActive: true,
	}
	if rng.RangePriority == 0 {
		rng.RangePriority = 1
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rng).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Range name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "Range created", rng)
}

func (ctrl *RangeController) Update(c *fiber.Ctx) error {
	var rng model.Range
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&rng, "range_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Range not found")
	}

	var req dto.RangeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.RangeName != nil {
		rng.RangeName = *req.RangeName
	}
	if req.RangePriority != nil {
		rng.RangePriority = *req.RangePriority
	}
	if req.RangeIsActive != nil {
		rng.RangeIsActive = *req.RangeIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&rng).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Range name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Range updated", rng)
}

func (ctrl *RangeController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.Range{}, "range_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Range not found")
	}
	return helper.JsonOK(c, "Range deleted", nil)
}
