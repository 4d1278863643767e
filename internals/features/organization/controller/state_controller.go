package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/organization/dto"
	"polstat_backend/internals/features/organization/model"
	helper "polstat_backend/internals/helpers"
)

type StateController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewStateController(db *gorm.DB) *StateController {
	return &StateController{DB: db, validate: validator.New()}
}

func (ctrl *StateController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.State{})
	if name := c.Query("name"); name != "" {
		q = q.Where("state_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var states []model.State
	if err := q.Order("state_priority ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&states).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "States fetched", states, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *StateController) Create(c *fiber.Ctx) error {
	var req dto.StateCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	state := model.State{
		StateName:     req.StateName,
		StatePriority: req.StatePriority,
		StateIsActive: true,
	}
	if state.StatePriority == 0 {
		state.StatePriority = 1
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&state).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "State name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "State created", state)
}

func (ctrl *StateController) Update(c *fiber.Ctx) error {
	var state model.State
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&state, "state_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "State not found")
	}

	var req dto.StateUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.StateName != nil {
		state.StateName = *req.StateName
	}
	if req.StatePriority != nil {
		state.StatePriority = *req.StatePriority
	}
	if req.StateIsActive != nil {
		state.StateIsActive = *req.StateIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&state).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "State name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "State updated", state)
}

func (ctrl *StateController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.State{}, "state_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "State not found")
	}
	return helper.JsonOK(c, "State deleted", nil)
}
