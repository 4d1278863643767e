package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/lookup/dto"
	"polstat_backend/internals/features/lookup/model"
	perfModel "polstat_backend/internals/features/performance/model"
	helper "polstat_backend/internals/helpers"
)

type ModuleController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db, validate: validator.New()}
}

func (ctrl *ModuleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.Module{})
	if name := c.Query("name"); name != "" {
		q = q.Where("module_name ILIKE ?", "%"+name+"%")
	}
	if c.Query("active") != "" {
		q = q.Where("module_is_active = ?", c.QueryBool("active"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var modules []model.Module
	if err := q.Order("module_priority ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&modules).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "Modules fetched", modules, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *ModuleController) GetByID(c *fiber.Ctx) error {
	var module model.Module
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&module, "module_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}
	return helper.JsonOK(c, "Module fetched", module)
}

func (ctrl *ModuleController) Create(c *fiber.Ctx) error {
	var req dto.ModuleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	priority := req.ModulePriority
	if priority == 0 {
		// append at the end of the page order
		var maxPriority int
		ctrl.DB.Model(&model.Module{}).Select("COALESCE(MAX(module_priority), 0)").Scan(&maxPriority)
		priority = maxPriority + 1
	}

	module := model.Module{
		ModuleName:     req.ModuleName,
		ModulePriority: priority,
		ModuleIsActive: true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&module).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Module name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "Module created", module)
}

func (ctrl *ModuleController) Update(c *fiber.Ctx) error {
	var module model.Module
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&module, "module_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	var req dto.ModuleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.ModuleName != nil {
		module.ModuleName = *req.ModuleName
	}
	if req.ModulePriority != nil {
		module.ModulePriority = *req.ModulePriority
	}
	if req.ModuleIsActive != nil {
		module.ModuleIsActive = *req.ModuleIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&module).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Module name already exists")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Module updated", module)
}

// Delete soft-deletes a module, refusing when statistics reference it:
// historical ledger rows must keep resolving their module.
func (ctrl *ModuleController) Delete(c *fiber.Ctx) error {
	var module model.Module
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&module, "module_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.JsonInternal(c, err)
	}

	var referenced int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&perfModel.PerformanceStatistic{}).
		Where("statistic_module_id = ?", module.ModuleID).
		Count(&referenced).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	if referenced > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Module has statistics and cannot be deleted; deactivate it instead")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&module).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Module deleted", nil)
}
