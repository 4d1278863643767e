package dto

import "encoding/json"

type ModuleCreateRequest struct {
	ModuleName     string `json:"module_name" validate:"required,min=2,max=150"`
	ModulePriority int    `json:"module_priority" validate:"omitempty,min=1"`
}

type ModuleUpdateRequest struct {
	ModuleName     *string `json:"module_name" validate:"omitempty,min=2,max=150"`
	ModulePriority *int    `json:"module_priority" validate:"omitempty,min=1"`
	ModuleIsActive *bool   `json:"module_is_active"`
}

type TopicCreateRequest struct {
	TopicModuleID       uint   `json:"topic_module_id" validate:"required"`
	TopicName           string `json:"topic_name" validate:"required,min=2,max=150"`
	TopicPriority       int    `json:"topic_priority" validate:"omitempty,min=1"`
	TopicFormType       string `json:"topic_form_type" validate:"omitempty,oneof=NORMAL ST/Q Q/ST"`
	TopicStartMonth     int    `json:"topic_start_month" validate:"omitempty,min=0,max=12"`
	TopicEndMonth       int    `json:"topic_end_month" validate:"omitempty,min=0,max=12"`
	TopicShowPrevious   bool   `json:"topic_show_previous"`
	TopicShowCumulative bool   `json:"topic_show_cumulative"`
}

type TopicUpdateRequest struct {
	TopicName           *string `json:"topic_name" validate:"omitempty,min=2,max=150"`
	TopicPriority       *int    `json:"topic_priority" validate:"omitempty,min=1"`
	TopicFormType       *string `json:"topic_form_type" validate:"omitempty,oneof=NORMAL ST/Q Q/ST"`
	TopicStartMonth     *int    `json:"topic_start_month" validate:"omitempty,min=0,max=12"`
	TopicEndMonth       *int    `json:"topic_end_month" validate:"omitempty,min=0,max=12"`
	TopicShowPrevious   *bool   `json:"topic_show_previous"`
	TopicShowCumulative *bool   `json:"topic_show_cumulative"`
	TopicIsActive       *bool   `json:"topic_is_active"`
}

type SubTopicCreateRequest struct {
	SubTopicTopicID  uint   `json:"sub_topic_topic_id" validate:"required"`
	SubTopicName     string `json:"sub_topic_name" validate:"required,min=2,max=150"`
	SubTopicPriority int    `json:"sub_topic_priority" validate:"omitempty,min=1"`
}

type SubTopicUpdateRequest struct {
	SubTopicName     *string `json:"sub_topic_name" validate:"omitempty,min=2,max=150"`
	SubTopicPriority *int    `json:"sub_topic_priority" validate:"omitempty,min=1"`
	SubTopicIsActive *bool   `json:"sub_topic_is_active"`
}

type QuestionCreateRequest struct {
	QuestionTopicID           uint            `json:"question_topic_id" validate:"required"`
	QuestionSubTopicID        uint            `json:"question_sub_topic_id"`
	QuestionText              string          `json:"question_text" validate:"required"`
	QuestionType              string          `json:"question_type" validate:"omitempty,oneof=TEXT NUMERIC DATE BOOLEAN"`
	QuestionDefaultSource     string          `json:"question_default_source" validate:"omitempty,oneof=NONE PREVIOUS QUESTION PS SUB CIRCLE PSOP"`
	QuestionDefaultQuestionID uint            `json:"question_default_question_id"`
	QuestionFormula           string          `json:"question_formula"`
	QuestionOptions           json.RawMessage `json:"question_options"`
	QuestionPriority          int             `json:"question_priority" validate:"omitempty,min=1"`
}

type QuestionUpdateRequest struct {
	QuestionText              *string         `json:"question_text" validate:"omitempty,min=1"`
	QuestionType              *string         `json:"question_type" validate:"omitempty,oneof=TEXT NUMERIC DATE BOOLEAN"`
	QuestionDefaultSource     *string         `json:"question_default_source" validate:"omitempty,oneof=NONE PREVIOUS QUESTION PS SUB CIRCLE PSOP"`
	QuestionDefaultQuestionID *uint           `json:"question_default_question_id"`
	QuestionFormula           *string         `json:"question_formula"`
	QuestionOptions           json.RawMessage `json:"question_options"`
	QuestionPriority          *int            `json:"question_priority" validate:"omitempty,min=1"`
	QuestionSubTopicID        *uint           `json:"question_sub_topic_id"`
	QuestionIsActive          *bool           `json:"question_is_active"`
}
