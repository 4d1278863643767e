package model

import (
	"time"

	"gorm.io/gorm"
)

// Range is the police range tier between state and district.
type Range struct {
	RangeID       uint           `gorm:"column:range_id;primaryKey" json:"range_id"`
	RangeStateID  uint           `gorm:"column:range_state_id;not null;index" json:"range_state_id"`
	RangeName     string         `gorm:"column:range_name;type:varchar(100);not null;uniqueIndex" json:"range_name"`
	RangePriority int            `gorm:"column:range_priority;not null;default:1" json:"range_priority"`
	RangeIsActive bool           `gorm:"column:range_is_active;not null;default:true" json:"range_is_active"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Range) TableName() string {
	return "ranges"
}
