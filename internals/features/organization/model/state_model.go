package model

import (
	"time"

	"gorm.io/gorm"
)

type State struct {
	StateID       uint           `gorm:"column:state_id;primaryKey" json:"state_id"`
	StateName     string         `gorm:"column:state_name;type:varchar(100);not null;uniqueIndex" json:"state_name"`
	StatePriority int            `gorm:"column:state_priority;not null;default:1" json:"state_priority"`
	StateIsActive bool           `gorm:"column:state_is_active;not null;default:true" json:"state_is_active"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (State) TableName() string {
	return "states"
}
