package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "polstat_backend/internals/databases"
	lookupModel "polstat_backend/internals/features/lookup/model"
	orgModel "polstat_backend/internals/features/organization/model"
	perfModel "polstat_backend/internals/features/performance/model"
	"polstat_backend/internals/features/reports/dto"
	userModel "polstat_backend/internals/features/users/model"
)

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

func numPtr(f float64) *float64 { return &f }

type statSeed struct {
	UserID     uuid.UUID
	QuestionID uint
	ModuleID   uint
	TopicID    uint
	Month      string
	Value      float64
	Kind       perfModel.ValueKind
	Status     perfModel.StatStatus
	RangeID    uint
	DistrictID uint
}

func seedStat(t *testing.T, db *gorm.DB, s statSeed) {
	t.Helper()
	if s.Kind == "" {
		s.Kind = perfModel.ValueKindNumeric
	}
	if s.Status == "" {
		s.Status = perfModel.StatusSuccess
	}
	row := perfModel.PerformanceStatistic{
		StatisticUserID:     s.UserID,
		StatisticQuestionID: s.QuestionID,
		StatisticMonthYear:  s.Month,
		StatisticModuleID:   s.ModuleID,
		StatisticTopicID:    s.TopicID,
		StatisticValue:      fmt.Sprint(s.Value),
		StatisticValueKind:  s.Kind,
		StatisticStatus:     s.Status,
		StatisticStateID:    1,
		StatisticRangeID:    s.RangeID,
		StatisticDistrictID: s.DistrictID,
		StatisticIsActive:   true,
	}
	if s.Kind == perfModel.ValueKindNumeric {
		row.StatisticValueNumeric = numPtr(s.Value)
	}
	require.NoError(t, db.Create(&row).Error)
}

func seedReportUser(t *testing.T, db *gorm.DB, name string, districtID uint) userModel.User {
	t.Helper()
	u := userModel.User{
		UserName:       name,
		UserEmail:      fmt.Sprintf("%s@example.test", uuid.NewString()),
		UserPassword:   "irrelevant",
		UserStateID:    1,
		UserRangeID:    1,
		UserDistrictID: districtID,
		UserIsActive:   true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestBuildReportRangeScope(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&orgModel.District{
		DistrictRangeID: 1, DistrictStateID: 1, DistrictName: "Alpha District", DistrictIsActive: true,
	}).Error)
	require.NoError(t, db.Create(&orgModel.District{
		DistrictRangeID: 1, DistrictStateID: 1, DistrictName: "Beta District", DistrictIsActive: true,
	}).Error)

	u1 := seedReportUser(t, db, "SP Alpha", 1)
	u2 := seedReportUser(t, db, "SP Beta", 2)

	seedStat(t, db, statSeed{UserID: u1.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "NOV 2025", Value: 10, RangeID: 1, DistrictID: 1})
	seedStat(t, db, statSeed{UserID: u1.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 5, RangeID: 1, DistrictID: 1})
	seedStat(t, db, statSeed{UserID: u2.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 7, RangeID: 1, DistrictID: 2})
	// drafts and non-numeric answers never enter a total
	seedStat(t, db, statSeed{UserID: u1.UserID, QuestionID: 2, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 99, Status: perfModel.StatusInProgress, RangeID: 1, DistrictID: 1})
	seedStat(t, db, statSeed{UserID: u1.UserID, QuestionID: 3, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 99, Kind: perfModel.ValueKindText, RangeID: 1, DistrictID: 1})

	svc := NewAggregatorService(db)
	matrix, err := svc.BuildReport(context.Background(), dto.ReportRequest{
		Scope:       "RANGE",
		ScopeIDs:    []uint{1},
		QuestionIDs: []uint{1, 2, 3},
		Months:      []string{"NOV 2025", "DEC 2025"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"NOV 2025", "DEC 2025"}, matrix.Labels)
	require.Len(t, matrix.Datasets, 2)
	assert.Equal(t, "Alpha District", matrix.Datasets[0].Name)
	assert.Equal(t, []float64{10, 5}, matrix.Datasets[0].Data)
	assert.Equal(t, "Beta District", matrix.Datasets[1].Name)
	assert.Equal(t, []float64{0, 7}, matrix.Datasets[1].Data)
}

func TestBuildReportExpandsMonthWindow(t *testing.T) {
	db := newTestDB(t)
	u := seedReportUser(t, db, "SP Alpha", 1)
	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 4, RangeID: 1, DistrictID: 1})

	svc := NewAggregatorService(db)
	matrix, err := svc.BuildReport(context.Background(), dto.ReportRequest{
		Scope:       "MODULE",
		QuestionIDs: []uint{1},
		StartMonth:  "NOV 2025",
		EndMonth:    "JAN 2026",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"NOV 2025", "DEC 2025", "JAN 2026"}, matrix.Labels)
	require.Len(t, matrix.Datasets, 1)
	assert.Equal(t, []float64{0, 4, 0}, matrix.Datasets[0].Data)
}

func TestBuildReportRequiresMonthWindow(t *testing.T) {
	svc := NewAggregatorService(newTestDB(t))
	_, err := svc.BuildReport(context.Background(), dto.ReportRequest{
		Scope:       "MODULE",
		QuestionIDs: []uint{1},
	})
	assert.ErrorIs(t, err, ErrEmptyMonthWindow)
}

func TestBuildReportUnknownScope(t *testing.T) {
	svc := NewAggregatorService(newTestDB(t))
	_, err := svc.BuildReport(context.Background(), dto.ReportRequest{
		Scope:       "GALAXY",
		QuestionIDs: []uint{1},
		Months:      []string{"DEC 2025"},
	})
	assert.Error(t, err)
}

func TestBuildReportUserScope(t *testing.T) {
	db := newTestDB(t)
	u1 := seedReportUser(t, db, "SP Alpha", 1)
	u2 := seedReportUser(t, db, "SP Beta", 2)
	seedStat(t, db, statSeed{UserID: u1.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 3, RangeID: 1, DistrictID: 1})
	seedStat(t, db, statSeed{UserID: u2.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 6, RangeID: 1, DistrictID: 2})

	svc := NewAggregatorService(db)
	matrix, err := svc.BuildReport(context.Background(), dto.ReportRequest{
		Scope:       "USER",
		UserIDs:     []string{u1.UserID.String()},
		QuestionIDs: []uint{1},
		Months:      []string{"DEC 2025"},
	})
	require.NoError(t, err)
	require.Len(t, matrix.Datasets, 1)
	assert.Equal(t, "SP Alpha", matrix.Datasets[0].Name)
	assert.Equal(t, []float64{3}, matrix.Datasets[0].Data)
}

func TestLabelsForUser(t *testing.T) {
	db := newTestDB(t)
	u := seedReportUser(t, db, "SP Alpha", 1)
	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "JAN 2026", Value: 1, RangeID: 1, DistrictID: 1})
	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 2, ModuleID: 1, TopicID: 1, Month: "NOV 2025", Value: 1, RangeID: 1, DistrictID: 1})
	// drafts carry no label
	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 3, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 1, Status: perfModel.StatusInProgress, RangeID: 1, DistrictID: 1})

	svc := NewAggregatorService(db)
	labels, err := svc.LabelsForUser(context.Background(), u.UserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"NOV 2025", "JAN 2026"}, labels)
}

func TestSummaryForUser(t *testing.T) {
	db := newTestDB(t)
	u := seedReportUser(t, db, "SP Alpha", 1)
	require.NoError(t, db.Create(&lookupModel.Module{ModuleName: "Crime", ModulePriority: 1, ModuleIsActive: true}).Error)
	require.NoError(t, db.Create(&lookupModel.Module{ModuleName: "Traffic", ModulePriority: 2, ModuleIsActive: true}).Error)

	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 1, ModuleID: 1, TopicID: 1, Month: "JAN 2026", Value: 1, Status: perfModel.StatusSuccess, RangeID: 1, DistrictID: 1})
	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 2, ModuleID: 1, TopicID: 1, Month: "JAN 2026", Value: 1, Status: perfModel.StatusInProgress, RangeID: 1, DistrictID: 1})
	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 3, ModuleID: 2, TopicID: 2, Month: "JAN 2026", Value: 1, Status: perfModel.StatusInProgress, RangeID: 1, DistrictID: 1})
	// other months stay out of the summary
	seedStat(t, db, statSeed{UserID: u.UserID, QuestionID: 4, ModuleID: 1, TopicID: 1, Month: "DEC 2025", Value: 1, RangeID: 1, DistrictID: 1})

	svc := NewAggregatorService(db)
	summary, err := svc.SummaryForUser(context.Background(), u.UserID, "JAN 2026")
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "Crime", summary[0].ModuleName)
	assert.EqualValues(t, 1, summary[0].Success)
	assert.EqualValues(t, 1, summary[0].InProgress)
	assert.Equal(t, "Traffic", summary[1].ModuleName)
	assert.EqualValues(t, 1, summary[1].InProgress)
	assert.EqualValues(t, 0, summary[1].Success)
}
