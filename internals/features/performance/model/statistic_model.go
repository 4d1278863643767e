package model

import (
	"time"

	"github.com/google/uuid"
)

type StatStatus string

const (
	StatusInProgress StatStatus = "INPROGRESS"
	StatusSuccess    StatStatus = "SUCCESS"
)

// PerformanceStatistic is one ledger fact: one value per (user, question,
// subtopic, reporting month). The natural key is a real unique index so
// concurrent double-submission resolves to an upsert instead of a duplicate.
// StatisticSubTopicID is 0 (never NULL) when the question has no subtopic,
// otherwise Postgres NULL semantics would let duplicates through the index.
type PerformanceStatistic struct {
	StatisticID           uint       `gorm:"column:statistic_id;primaryKey" json:"statistic_id"`
	StatisticUserID       uuid.UUID  `gorm:"column:statistic_user_id;type:uuid;not null;uniqueIndex:idx_statistic_natural_key;index" json:"statistic_user_id"`
	StatisticQuestionID   uint       `gorm:"column:statistic_question_id;not null;uniqueIndex:idx_statistic_natural_key;index" json:"statistic_question_id"`
	StatisticSubTopicID   uint       `gorm:"column:statistic_sub_topic_id;not null;default:0;uniqueIndex:idx_statistic_natural_key" json:"statistic_sub_topic_id"`
	StatisticMonthYear    string     `gorm:"column:statistic_month_year;type:varchar(8);not null;uniqueIndex:idx_statistic_natural_key;index" json:"statistic_month_year"`
	StatisticModuleID     uint       `gorm:"column:statistic_module_id;not null;index" json:"statistic_module_id"`
	StatisticTopicID      uint       `gorm:"column:statistic_topic_id;not null;index" json:"statistic_topic_id"`
	StatisticValue        string     `gorm:"column:statistic_value;type:text;not null" json:"statistic_value"`
	StatisticValueKind    ValueKind  `gorm:"column:statistic_value_kind;type:varchar(10);not null;default:TEXT" json:"statistic_value_kind"`
	StatisticValueNumeric *float64   `gorm:"column:statistic_value_numeric" json:"statistic_value_numeric,omitempty"`
	StatisticStatus       StatStatus `gorm:"column:statistic_status;type:varchar(12);not null;default:INPROGRESS;index" json:"statistic_status"`
	StatisticStateID      uint       `gorm:"column:statistic_state_id;not null;default:0;index" json:"statistic_state_id"`
	StatisticRangeID      uint       `gorm:"column:statistic_range_id;not null;default:0;index" json:"statistic_range_id"`
	StatisticDistrictID   uint       `gorm:"column:statistic_district_id;not null;default:0;index" json:"statistic_district_id"`
	StatisticIsActive     bool       `gorm:"column:statistic_is_active;not null;default:true" json:"statistic_is_active"`
	CreatedAt             time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PerformanceStatistic) TableName() string {
	return "performance_statistics"
}
