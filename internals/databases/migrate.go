package database

import (
	"gorm.io/gorm"

	lookupModel "polstat_backend/internals/features/lookup/model"
	orgModel "polstat_backend/internals/features/organization/model"
	perfModel "polstat_backend/internals/features/performance/model"
	userModel "polstat_backend/internals/features/users/model"
)

// Migrate owns the schema for all features; tests run it against in-memory
// sqlite, deploys against Postgres.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orgModel.State{},
		&orgModel.Range{},
		&orgModel.District{},
		&userModel.User{},
		&userModel.TokenBlacklist{},
		&lookupModel.Module{},
		&lookupModel.Topic{},
		&lookupModel.SubTopic{},
		&lookupModel.Question{},
		&perfModel.PerformanceStatistic{},
		&perfModel.OtpChallenge{},
	)
}
