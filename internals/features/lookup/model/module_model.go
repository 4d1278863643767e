package model

import (
	"time"

	"gorm.io/gorm"
)

// Module is the top of the performance catalog. Priority is the 1-based page
// order; the form path addresses modules by priority, not by id.
type Module struct {
	ModuleID       uint           `gorm:"column:module_id;primaryKey" json:"module_id"`
	ModuleName     string         `gorm:"column:module_name;type:varchar(150);not null;uniqueIndex" json:"module_name"`
	ModulePriority int            `gorm:"column:module_priority;not null;default:1;index" json:"module_priority"`
	ModuleIsActive bool           `gorm:"column:module_is_active;not null;default:true" json:"module_is_active"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Module) TableName() string {
	return "performance_modules"
}
