package model

import (
	"time"

	"gorm.io/gorm"
)

type SubTopic struct {
	SubTopicID       uint           `gorm:"column:sub_topic_id;primaryKey" json:"sub_topic_id"`
	SubTopicTopicID  uint           `gorm:"column:sub_topic_topic_id;not null;index" json:"sub_topic_topic_id"`
	SubTopicName     string         `gorm:"column:sub_topic_name;type:varchar(150);not null" json:"sub_topic_name"`
	SubTopicPriority int            `gorm:"column:sub_topic_priority;not null;default:1;index" json:"sub_topic_priority"`
	SubTopicIsActive bool           `gorm:"column:sub_topic_is_active;not null;default:true" json:"sub_topic_is_active"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (SubTopic) TableName() string {
	return "performance_sub_topics"
}
