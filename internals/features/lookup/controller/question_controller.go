package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"polstat_backend/internals/features/lookup/dto"
	"polstat_backend/internals/features/lookup/model"
	helper "polstat_backend/internals/helpers"
)

type QuestionController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db, validate: validator.New()}
}

func (ctrl *QuestionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.Question{})
	if topicID := c.QueryInt("topic_id", 0); topicID > 0 {
		q = q.Where("question_topic_id = ?", topicID)
	}
	if subTopicID := c.QueryInt("sub_topic_id", 0); subTopicID > 0 {
		q = q.Where("question_sub_topic_id = ?", subTopicID)
	}
	if text := c.Query("text"); text != "" {
		q = q.Where("question_text ILIKE ?", "%"+text+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var questions []model.Question
	if err := q.Order("question_priority ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&questions).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonList(c, "Questions fetched", questions, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *QuestionController) GetByID(c *fiber.Ctx) error {
	var question model.Question
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&question, "question_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonOK(c, "Question fetched", question)
}

func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	var req dto.QuestionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var topic model.Topic
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&topic, "topic_id = ?", req.QuestionTopicID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Topic not found")
	}

	qType := model.QuestionTypeNumeric
	if req.QuestionType != "" {
		qType = model.QuestionType(req.QuestionType)
	}
	defaultSource := model.DefaultNone
	if req.QuestionDefaultSource != "" {
		defaultSource = model.DefaultSource(req.QuestionDefaultSource)
	}
	if defaultSource == model.DefaultQuestion && req.QuestionDefaultQuestionID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "QUESTION default source needs question_default_question_id")
	}

	priority := req.QuestionPriority
	if priority == 0 {
		var maxPriority int
		ctrl.DB.Model(&model.Question{}).
			Where("question_topic_id = ?", req.QuestionTopicID).
			Select("COALESCE(MAX(question_priority), 0)").Scan(&maxPriority)
		priority = maxPriority + 1
	}

	question := model.Question{
		QuestionTopicID:           req.QuestionTopicID,
		QuestionSubTopicID:        req.QuestionSubTopicID,
		QuestionText:              req.QuestionText,
		QuestionType:              qType,
		QuestionDefaultSource:     defaultSource,
		QuestionDefaultQuestionID: req.QuestionDefaultQuestionID,
		QuestionFormula:           req.QuestionFormula,
		QuestionOptions:           datatypes.JSON(req.QuestionOptions),
		QuestionPriority:          priority,
		QuestionIsActive:          true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&question).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "Question created", question)
}

func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	var question model.Question
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&question, "question_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	var req dto.QuestionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.QuestionType != nil {
		question.QuestionType = model.QuestionType(*req.QuestionType)
	}
	if req.QuestionDefaultSource != nil {
		question.QuestionDefaultSource = model.DefaultSource(*req.QuestionDefaultSource)
	}
	if req.QuestionDefaultQuestionID != nil {
		question.QuestionDefaultQuestionID = *req.QuestionDefaultQuestionID
	}
	if req.QuestionFormula != nil {
		question.QuestionFormula = *req.QuestionFormula
	}
	if len(req.QuestionOptions) > 0 {
		question.QuestionOptions = datatypes.JSON(req.QuestionOptions)
	}
	if req.QuestionPriority != nil {
		question.QuestionPriority = *req.QuestionPriority
	}
	if req.QuestionSubTopicID != nil {
		question.QuestionSubTopicID = *req.QuestionSubTopicID
	}
	if req.QuestionIsActive != nil {
		question.QuestionIsActive = *req.QuestionIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&question).Error; err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Question updated", question)
}

func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.Question{}, "question_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonInternal(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonOK(c, "Question deleted", nil)
}
