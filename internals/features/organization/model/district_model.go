package model

import (
	"time"

	"gorm.io/gorm"
)

// District carries the unit counts (police stations, subdivisions, circles,
// police outposts) that seed form defaults for its users.
type District struct {
	DistrictID               uint           `gorm:"column:district_id;primaryKey" json:"district_id"`
	DistrictRangeID          uint           `gorm:"column:district_range_id;not null;index" json:"district_range_id"`
	DistrictStateID          uint           `gorm:"column:district_state_id;not null;index" json:"district_state_id"`
	DistrictName             string         `gorm:"column:district_name;type:varchar(100);not null;uniqueIndex" json:"district_name"`
	DistrictPriority         int            `gorm:"column:district_priority;not null;default:1" json:"district_priority"`
	DistrictPSCount          int            `gorm:"column:district_ps_count;not null;default:0" json:"district_ps_count"`
	DistrictSubdivisionCount int            `gorm:"column:district_subdivision_count;not null;default:0" json:"district_subdivision_count"`
	DistrictCircleCount      int            `gorm:"column:district_circle_count;not null;default:0" json:"district_circle_count"`
	DistrictPSOPCount        int            `gorm:"column:district_psop_count;not null;default:0" json:"district_psop_count"`
	DistrictIsActive         bool           `gorm:"column:district_is_active;not null;default:true" json:"district_is_active"`
	CreatedAt                time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (District) TableName() string {
	return "districts"
}
