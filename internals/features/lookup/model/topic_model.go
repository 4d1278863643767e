package model

import (
	"time"

	"gorm.io/gorm"
)

// Topic groups questions under a module. Start/end month (1..12, 0 = open)
// bound the entry window within the financial year.
type Topic struct {
	TopicID             uint           `gorm:"column:topic_id;primaryKey" json:"topic_id"`
	TopicModuleID       uint           `gorm:"column:topic_module_id;not null;index" json:"topic_module_id"`
	TopicName           string         `gorm:"column:topic_name;type:varchar(150);not null" json:"topic_name"`
	TopicPriority       int            `gorm:"column:topic_priority;not null;default:1;index" json:"topic_priority"`
	TopicFormType       FormType       `gorm:"column:topic_form_type;type:varchar(10);not null;default:NORMAL" json:"topic_form_type"`
	TopicStartMonth     int            `gorm:"column:topic_start_month;not null;default:0" json:"topic_start_month"`
	TopicEndMonth       int            `gorm:"column:topic_end_month;not null;default:0" json:"topic_end_month"`
	TopicShowPrevious   bool           `gorm:"column:topic_show_previous;not null;default:false" json:"topic_show_previous"`
	TopicShowCumulative bool           `gorm:"column:topic_show_cumulative;not null;default:false" json:"topic_show_cumulative"`
	TopicIsActive       bool           `gorm:"column:topic_is_active;not null;default:true" json:"topic_is_active"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Topic) TableName() string {
	return "performance_topics"
}
