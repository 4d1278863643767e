package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "polstat_backend/internals/databases"
	lookupModel "polstat_backend/internals/features/lookup/model"
	"polstat_backend/internals/features/performance/model"
	userModel "polstat_backend/internals/features/users/model"
)

// Jan 15 2026 pins the reporting period to JAN 2026 / DEC 2025 everywhere.
var testNow = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) userModel.User {
	t.Helper()
	user := userModel.User{
		UserName:       "Test District SP",
		UserEmail:      fmt.Sprintf("%s@example.test", uuid.NewString()),
		UserPassword:   "irrelevant",
		UserStateID:    1,
		UserRangeID:    2,
		UserDistrictID: 3,
		UserIsActive:   true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedModule(t *testing.T, db *gorm.DB, priority int) lookupModel.Module {
	t.Helper()
	m := lookupModel.Module{
		ModuleName:     fmt.Sprintf("Module %d", priority),
		ModulePriority: priority,
		ModuleIsActive: true,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func seedTopic(t *testing.T, db *gorm.DB, moduleID uint, formType lookupModel.FormType, mutate func(*lookupModel.Topic)) lookupModel.Topic {
	t.Helper()
	topic := lookupModel.Topic{
		TopicModuleID: moduleID,
		TopicName:     "Topic",
		TopicPriority: 1,
		TopicFormType: formType,
		TopicIsActive: true,
	}
	if mutate != nil {
		mutate(&topic)
	}
	require.NoError(t, db.Create(&topic).Error)
	return topic
}

func seedQuestion(t *testing.T, db *gorm.DB, topicID uint, priority int, mutate func(*lookupModel.Question)) lookupModel.Question {
	t.Helper()
	q := lookupModel.Question{
		QuestionTopicID:       topicID,
		QuestionText:          fmt.Sprintf("Question %d", priority),
		QuestionType:          lookupModel.QuestionTypeNumeric,
		QuestionDefaultSource: lookupModel.DefaultNone,
		QuestionPriority:      priority,
		QuestionIsActive:      true,
	}
	if mutate != nil {
		mutate(&q)
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func seedSubTopic(t *testing.T, db *gorm.DB, topicID uint, name string, priority int) lookupModel.SubTopic {
	t.Helper()
	st := lookupModel.SubTopic{
		SubTopicTopicID:  topicID,
		SubTopicName:     name,
		SubTopicPriority: priority,
		SubTopicIsActive: true,
	}
	require.NoError(t, db.Create(&st).Error)
	return st
}

func seedStat(t *testing.T, db *gorm.DB, row model.PerformanceStatistic) model.PerformanceStatistic {
	t.Helper()
	row.StatisticIsActive = true
	require.NoError(t, db.Create(&row).Error)
	return row
}

func numPtr(f float64) *float64 { return &f }

// fixedCounts is the test stand-in for the district-backed provider.
type fixedCounts struct {
	counts OrgCounts
}

func (f fixedCounts) Counts(ctx context.Context, userID uuid.UUID) (OrgCounts, error) {
	return f.counts, nil
}
