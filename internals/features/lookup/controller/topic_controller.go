package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/lookup/dto"
	"polstat_backend/internals/features/lookup/model"
	helper "polstat_backend/internals/helpers"
)

type TopicController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{DB: db, validate: validator.New()}
}

func (ctrl *TopicController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.Topic{})
	if moduleID := c.QueryInt("module_id", 0); moduleID > 0 {
		q = q.Where("topic_module_id = ?", moduleID)
	}
	if name := c.Query("name"); name != "" {
		q = q.Where("topic_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var topics []model.Topic
	if err := q.Order("topic_priority ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&topics).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "Topics fetched", topics, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *TopicController) GetByID(c *fiber.Ctx) error {
	var topic model.Topic
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&topic, "topic_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}
	return helper.JsonOK(c, "Topic fetched", topic)
}

func (ctrl *TopicController) Create(c *fiber.Ctx) error {
	var req dto.TopicCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var module model.Module
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&module, "module_id = ?", req.TopicModuleID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	formType := model.FormTypeNormal
	if req.TopicFormType != "" {
		parsed, err := model.ParseFormType(req.TopicFormType)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		formType = parsed
	}

	priority := req.TopicPriority
	if priority == 0 {
		var maxPriority int
		ctrl.DB.Model(&model.Topic{}).
			Where("topic_module_id = ?", req.TopicModuleID).
			Select("COALESCE(MAX(topic_priority), 0)").Scan(&maxPriority)
		priority = maxPriority + 1
	}

	topic := model.Topic{
		TopicModuleID:       req.TopicModuleID,
		TopicName:           req.TopicName,
		TopicPriority:       priority,
		TopicFormType:       formType,
		TopicStartMonth:     req.TopicStartMonth,
		TopicEndMonth:       req.TopicEndMonth,
		TopicShowPrevious:   req.TopicShowPrevious,
		TopicShowCumulative: req.TopicShowCumulative,
		TopicIsActive:       true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&topic).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "Topic created", topic)
}

func (ctrl *TopicController) Update(c *fiber.Ctx) error {
	var topic model.Topic
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&topic, "topic_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}

	var req dto.TopicUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.TopicName != nil {
		topic.TopicName = *req.TopicName
	}
	if req.TopicPriority != nil {
		topic.TopicPriority = *req.TopicPriority
	}
	if req.TopicFormType != nil {
		parsed, err := model.ParseFormType(*req.TopicFormType)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		topic.TopicFormType = parsed
	}
	if req.TopicStartMonth != nil {
		topic.TopicStartMonth = *req.TopicStartMonth
	}
	if req.TopicEndMonth != nil {
		topic.TopicEndMonth = *req.TopicEndMonth
	}
	if req.TopicShowPrevious != nil {
		topic.TopicShowPrevious = *req.TopicShowPrevious
	}
	if req.TopicShowCumulative != nil {
		topic.TopicShowCumulative = *req.TopicShowCumulative
	}
	if req.TopicIsActive != nil {
		topic.TopicIsActive = *req.TopicIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&topic).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Topic updated", topic)
}

func (ctrl *TopicController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.Topic{}, "topic_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}
	return helper.JsonOK(c, "Topic deleted", nil)
}
