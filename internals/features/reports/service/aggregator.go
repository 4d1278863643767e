package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lookupModel "polstat_backend/internals/features/lookup/model"
	orgModel "polstat_backend/internals/features/organization/model"
	perfModel "polstat_backend/internals/features/performance/model"
	"polstat_backend/internals/features/reports/dto"
	userModel "polstat_backend/internals/features/users/model"
	helper "polstat_backend/internals/helpers"
)

var ErrEmptyMonthWindow = errors.New("no months selected: give months or startMonth/endMonth")

// AggregatorService sums finalized ledger values into a month x entity matrix
// for charting and export. Only SUCCESS rows with a numeric value count;
// text, boolean and date answers never enter a total.
type AggregatorService struct {
	DB *gorm.DB
}

func NewAggregatorService(db *gorm.DB) *AggregatorService {
	return &AggregatorService{DB: db}
}

// scopePlan maps a requested scope onto the ledger column it filters and the
// column it groups by. Geographic scopes group one level down the hierarchy
// (state -> range -> district -> user); catalog scopes group by themselves,
// one series per entity.
type scopePlan struct {
	filterColumn string
	groupColumn  string
	nameResolver func(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error)
}

func planForScope(scope string) (scopePlan, error) {
	switch scope {
	case "STATE":
		return scopePlan{"statistic_state_id", "statistic_range_id", rangeNames}, nil
	case "RANGE":
		return scopePlan{"statistic_range_id", "statistic_district_id", districtNames}, nil
	case "DISTRICT":
		return scopePlan{"statistic_district_id", "statistic_user_id", userNames}, nil
	case "MODULE":
		return scopePlan{"statistic_module_id", "statistic_module_id", moduleNames}, nil
	case "TOPIC":
		return scopePlan{"statistic_topic_id", "statistic_topic_id", topicNames}, nil
	case "SUBTOPIC":
		return scopePlan{"statistic_sub_topic_id", "statistic_sub_topic_id", subTopicNames}, nil
	case "USER":
		return scopePlan{"statistic_user_id", "statistic_user_id", userNames}, nil
	}
	return scopePlan{}, fmt.Errorf("unknown report scope %q", scope)
}

func (s *AggregatorService) BuildReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportMatrix, error) {
	labels, err := resolveLabels(req)
	if err != nil {
		return nil, err
	}
	plan, err := planForScope(req.Scope)
	if err != nil {
		return nil, err
	}

	query := s.baseQuery(ctx, req, plan).
		Select(plan.groupColumn+" AS group_id, statistic_month_year AS month_year, SUM(statistic_value_numeric) AS total").
		Where("statistic_month_year IN ?", labels).
		Group(plan.groupColumn).
		Group("statistic_month_year")

	var rows []struct {
		GroupID   string
		MonthYear string
		Total     float64
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	labelIndex := make(map[string]int, len(labels))
	for i, l := range labels {
		labelIndex[l] = i
	}

	series := make(map[string][]float64)
	groupIDs := make([]string, 0)
	for _, r := range rows {
		if _, ok := series[r.GroupID]; !ok {
			series[r.GroupID] = make([]float64, len(labels))
			groupIDs = append(groupIDs, r.GroupID)
		}
		if i, ok := labelIndex[r.MonthYear]; ok {
			series[r.GroupID][i] = r.Total
		}
	}

	names := map[string]string{}
	if len(groupIDs) > 0 {
		names, err = plan.nameResolver(ctx, s.DB, groupIDs)
		if err != nil {
			return nil, err
		}
	}

	datasets := make([]dto.ReportDataset, 0, len(groupIDs))
	for _, id := range groupIDs {
		name := names[id]
		if name == "" {
			name = id
		}
		datasets = append(datasets, dto.ReportDataset{Name: name, Data: series[id]})
	}
	sort.Slice(datasets, func(i, j int) bool { return datasets[i].Name < datasets[j].Name })

	return &dto.ReportMatrix{Labels: labels, Datasets: datasets}, nil
}

// AvailableLabels returns the distinct months that actually carry SUCCESS
// data for the filter, in chronological order. Charts with no series at all
// are suppressed client-side using this list.
func (s *AggregatorService) AvailableLabels(ctx context.Context, req dto.ReportRequest) ([]string, error) {
	plan, err := planForScope(req.Scope)
	if err != nil {
		return nil, err
	}

	var months []string
	if err := s.baseQuery(ctx, req, plan).
		Distinct("statistic_month_year").
		Pluck("statistic_month_year", &months).Error; err != nil {
		return nil, err
	}

	sort.Slice(months, func(i, j int) bool {
		a, errA := helper.ParseMonthLabel(months[i])
		b, errB := helper.ParseMonthLabel(months[j])
		if errA != nil || errB != nil {
			return months[i] < months[j]
		}
		return a.Before(b)
	})
	return months, nil
}

// LabelsForUser lists the months where the user has finalized data, oldest
// first.
func (s *AggregatorService) LabelsForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var months []string
	err := s.DB.WithContext(ctx).
		Model(&perfModel.PerformanceStatistic{}).
		Distinct("statistic_month_year").
		Where("statistic_user_id = ? AND statistic_status = ? AND statistic_is_active = ?",
			userID, perfModel.StatusSuccess, true).
		Pluck("statistic_month_year", &months).Error
	if err != nil {
		return nil, err
	}
	sort.Slice(months, func(i, j int) bool {
		a, errA := helper.ParseMonthLabel(months[i])
		b, errB := helper.ParseMonthLabel(months[j])
		if errA != nil || errB != nil {
			return months[i] < months[j]
		}
		return a.Before(b)
	})
	return months, nil
}

// SummaryForUser reports the user's current-month progress per module.
func (s *AggregatorService) SummaryForUser(ctx context.Context, userID uuid.UUID, month string) ([]dto.ModuleSummary, error) {
	var rows []struct {
		StatisticModuleID uint
		StatisticStatus   perfModel.StatStatus
		Cnt               int64
	}
	err := s.DB.WithContext(ctx).
		Model(&perfModel.PerformanceStatistic{}).
		Select("statistic_module_id, statistic_status, COUNT(*) AS cnt").
		Where("statistic_user_id = ? AND statistic_month_year = ? AND statistic_is_active = ?", userID, month, true).
		Group("statistic_module_id").
		Group("statistic_status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byModule := make(map[uint]*dto.ModuleSummary)
	order := make([]uint, 0)
	for _, r := range rows {
		sum, ok := byModule[r.StatisticModuleID]
		if !ok {
			sum = &dto.ModuleSummary{ModuleID: r.StatisticModuleID}
			byModule[r.StatisticModuleID] = sum
			order = append(order, r.StatisticModuleID)
		}
		switch r.StatisticStatus {
		case perfModel.StatusInProgress:
			sum.InProgress = r.Cnt
		case perfModel.StatusSuccess:
			sum.Success = r.Cnt
		}
	}

	if len(order) > 0 {
		var modules []lookupModel.Module
		if err := s.DB.WithContext(ctx).Where("module_id IN ?", order).Find(&modules).Error; err != nil {
			return nil, err
		}
		for _, m := range modules {
			if sum, ok := byModule[m.ModuleID]; ok {
				sum.ModuleName = m.ModuleName
			}
		}
	}

	out := make([]dto.ModuleSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byModule[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModuleID < out[j].ModuleID })
	return out, nil
}

func (s *AggregatorService) baseQuery(ctx context.Context, req dto.ReportRequest, plan scopePlan) *gorm.DB {
	q := s.DB.WithContext(ctx).
		Model(&perfModel.PerformanceStatistic{}).
		Where("statistic_status = ?", perfModel.StatusSuccess).
		Where("statistic_value_kind = ?", perfModel.ValueKindNumeric).
		Where("statistic_is_active = ?", true).
		Where("statistic_question_id IN ?", req.QuestionIDs)

	if req.Scope == "USER" {
		if len(req.UserIDs) > 0 {
			q = q.Where("statistic_user_id IN ?", req.UserIDs)
		}
	} else if len(req.ScopeIDs) > 0 {
		q = q.Where(plan.filterColumn+" IN ?", req.ScopeIDs)
	}
	return q
}

func resolveLabels(req dto.ReportRequest) ([]string, error) {
	if len(req.Months) > 0 {
		labels := make([]string, 0, len(req.Months))
		for _, m := range req.Months {
			t, err := helper.ParseMonthLabel(m)
			if err != nil {
				return nil, err
			}
			labels = append(labels, helper.MonthLabel(t))
		}
		return labels, nil
	}
	if req.StartMonth == "" || req.EndMonth == "" {
		return nil, ErrEmptyMonthWindow
	}
	return helper.ExpandMonthRange(req.StartMonth, req.EndMonth)
}

func rangeNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error) {
	var rows []orgModel.Range
	if err := db.WithContext(ctx).Where("range_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[fmt.Sprint(r.RangeID)] = r.RangeName
	}
	return names, nil
}

func districtNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error) {
	var rows []orgModel.District
	if err := db.WithContext(ctx).Where("district_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[fmt.Sprint(r.DistrictID)] = r.DistrictName
	}
	return names, nil
}

func userNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error) {
	var rows []userModel.User
	if err := db.WithContext(ctx).Where("user_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[r.UserID.String()] = r.UserName
	}
	return names, nil
}

func moduleNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error) {
	var rows []lookupModel.Module
	if err := db.WithContext(ctx).Where("module_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[fmt.Sprint(r.ModuleID)] = r.ModuleName
	}
	return names, nil
}

func topicNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error) {
	var rows []lookupModel.Topic
	if err := db.WithContext(ctx).Where("topic_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[fmt.Sprint(r.TopicID)] = r.TopicName
	}
	return names, nil
}

func subTopicNames(ctx context.Context, db *gorm.DB, ids []string) (map[string]string, error) {
	var rows []lookupModel.SubTopic
	if err := db.WithContext(ctx).Where("sub_topic_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[fmt.Sprint(r.SubTopicID)] = r.SubTopicName
	}
	return names, nil
}
