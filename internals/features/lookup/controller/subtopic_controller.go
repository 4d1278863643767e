package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/lookup/dto"
	"polstat_backend/internals/features/lookup/model"
	helper "polstat_backend/internals/helpers"
)

type SubTopicController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSubTopicController(db *gorm.DB) *SubTopicController {
	return &SubTopicController{DB: db, validate: validator.New()}
}

func (ctrl *SubTopicController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.SubTopic{})
	if topicID := c.QueryInt("topic_id", 0); topicID > 0 {
		q = q.Where("sub_topic_topic_id = ?", topicID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var subTopics []model.SubTopic
	if err := q.Order("sub_topic_priority ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subTopics).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "Sub-topics fetched", subTopics, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *SubTopicController) Create(c *fiber.Ctx) error {
	var req dto.SubTopicCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var topic model.Topic
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&topic, "topic_id = ?", req.SubTopicTopicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}

	priority := req.SubTopicPriority
	if priority == 0 {
		var maxPriority int
		ctrl.DB.Model(&model.SubTopic{}).
			Where("sub_topic_topic_id = ?", req.SubTopicTopicID).
			Select("COALESCE(MAX(sub_topic_priority), 0)").Scan(&maxPriority)
		priority = maxPriority + 1
	}

	subTopic := model.SubTopic{
		SubTopicTopicID:  req.SubTopicTopicID,
		SubTopicName:     req.SubTopicName,
		SubTopicPriority: priority,
		SubTopicIsActive: true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&subTopic).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "Sub-topic created", subTopic)
}

func (ctrl *SubTopicController) Update(c *fiber.Ctx) error {
	var subTopic model.SubTopic
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&subTopic, "sub_topic_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sub-topic not found")
	}

	var req dto.SubTopicUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.SubTopicName != nil {
		subTopic.SubTopicName = *req.SubTopicName
	}
	if req.SubTopicPriority != nil {
		subTopic.SubTopicPriority = *req.SubTopicPriority
	}
	if req.SubTopicIsActive != nil {
		subTopic.SubTopicIsActive = *req.SubTopicIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&subTopic).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Sub-topic updated", subTopic)
}

func (ctrl *SubTopicController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.SubTopic{}, "sub_topic_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sub-topic not found")
	}
	return helper.JsonOK(c, "Sub-topic deleted", nil)
}
