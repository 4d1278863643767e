package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a single catalog entry. QuestionSubTopicID is 0 when the
// question hangs directly off the topic; matrix form types ignore it and pair
// every question with every subtopic instead.
type Question struct {
	QuestionID                uint           `gorm:"column:question_id;primaryKey" json:"question_id"`
	QuestionTopicID           uint           `gorm:"column:question_topic_id;not null;index" json:"question_topic_id"`
	QuestionSubTopicID        uint           `gorm:"column:question_sub_topic_id;not null;default:0;index" json:"question_sub_topic_id"`
	QuestionText              string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType              QuestionType   `gorm:"column:question_type;type:varchar(10);not null;default:NUMERIC" json:"question_type"`
	QuestionDefaultSource     DefaultSource  `gorm:"column:question_default_source;type:varchar(10);not null;default:NONE" json:"question_default_source"`
	QuestionDefaultQuestionID uint           `gorm:"column:question_default_question_id;not null;default:0" json:"question_default_question_id"`
	QuestionFormula           string         `gorm:"column:question_formula;type:text" json:"question_formula"`
	QuestionOptions           datatypes.JSON `gorm:"column:question_options" json:"question_options,omitempty"`
	QuestionPriority          int            `gorm:"column:question_priority;not null;default:1;index" json:"question_priority"`
	QuestionIsActive          bool           `gorm:"column:question_is_active;not null;default:true" json:"question_is_active"`
	CreatedAt                 time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                 time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt                 gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Question) TableName() string {
	return "performance_questions"
}
