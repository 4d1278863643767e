package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	lookupModel "polstat_backend/internals/features/lookup/model"
	"polstat_backend/internals/features/performance/dto"
	"polstat_backend/internals/features/performance/model"
	userModel "polstat_backend/internals/features/users/model"
)

// LedgerService persists answered questions for the current reporting month.
// The whole batch runs in one transaction with a per-row upsert keyed on
// (user, question, subtopic, month), so a retried or concurrent submission
// lands on the same row instead of duplicating it.
type LedgerService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewLedgerService(db *gorm.DB, clock Clock) *LedgerService {
	if clock == nil {
		clock = time.Now
	}
	return &LedgerService{DB: db, Clock: clock}
}

func (s *LedgerService) SaveStatistics(ctx context.Context, userID uuid.UUID, items []dto.StatisticInput) ([]dto.SaveItemResult, error) {
	period := NewPeriod(s.Clock)
	db := s.DB.WithContext(ctx)

	var user userModel.User
	if err := db.Take(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	questionTypes, err := s.questionTypes(ctx, items)
	if err != nil {
		return nil, err
	}

	existing, err := s.existingKeys(ctx, userID, period.Current)
	if err != nil {
		return nil, err
	}

	results := make([]dto.SaveItemResult, 0, len(items))
	written := make(map[statKey]bool, len(items))
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			status := model.StatusInProgress
			if item.Status != "" {
				status = model.StatStatus(item.Status)
			}
			kind, numeric := model.ClassifyValue(item.Value, questionTypes[item.QuestionID])

			row := model.PerformanceStatistic{
				StatisticUserID:       userID,
				StatisticQuestionID:   item.QuestionID,
				StatisticSubTopicID:   item.SubTopicID,
				StatisticMonthYear:    period.Current,
				StatisticModuleID:     item.ModuleID,
				StatisticTopicID:      item.TopicID,
				StatisticValue:        item.Value,
				StatisticValueKind:    kind,
				StatisticValueNumeric: numeric,
				StatisticStatus:       status,
				// geography is stamped from the user's profile at write time;
				// moving a user later must not rewrite history
				StatisticStateID:    user.UserStateID,
				StatisticRangeID:    user.UserRangeID,
				StatisticDistrictID: user.UserDistrictID,
				StatisticIsActive:   true,
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "statistic_user_id"},
					{Name: "statistic_question_id"},
					{Name: "statistic_sub_topic_id"},
					{Name: "statistic_month_year"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"statistic_value",
					"statistic_value_kind",
					"statistic_value_numeric",
					"statistic_status",
					"statistic_module_id",
					"statistic_topic_id",
					"statistic_is_active",
					"updated_at",
				}),
			}).Create(&row).Error; err != nil {
				return err
			}

			// a later batch entry hitting the same key updates the earlier one
			key := statKey{item.QuestionID, item.SubTopicID, period.Current}
			action := "CREATED"
			if existing[key] || written[key] {
				action = "UPDATED"
			}
			written[key] = true
			results = append(results, dto.SaveItemResult{
				QuestionID: item.QuestionID,
				SubTopicID: item.SubTopicID,
				MonthYear:  period.Current,
				Action:     action,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// questionTypes resolves the declared type of every referenced question; an
// unknown question id fails the whole batch up front.
func (s *LedgerService) questionTypes(ctx context.Context, items []dto.StatisticInput) (map[uint]lookupModel.QuestionType, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.QuestionID]; !ok {
			seen[item.QuestionID] = struct{}{}
			ids = append(ids, item.QuestionID)
		}
	}

	var questions []lookupModel.Question
	if err := s.DB.WithContext(ctx).
		Where("question_id IN ?", ids).
		Find(&questions).Error; err != nil {
		return nil, err
	}

	types := make(map[uint]lookupModel.QuestionType, len(questions))
	for _, q := range questions {
		types[q.QuestionID] = q.QuestionType
	}
	for _, id := range ids {
		if _, ok := types[id]; !ok {
			return nil, fmt.Errorf("%w: id %d", ErrQuestionNotFound, id)
		}
	}
	return types, nil
}

func (s *LedgerService) existingKeys(ctx context.Context, userID uuid.UUID, month string) (map[statKey]bool, error) {
	var rows []struct {
		StatisticQuestionID uint
		StatisticSubTopicID uint
	}
	err := s.DB.WithContext(ctx).
		Model(&model.PerformanceStatistic{}).
		Select("statistic_question_id, statistic_sub_topic_id").
		Where("statistic_user_id = ? AND statistic_month_year = ?", userID, month).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	keys := make(map[statKey]bool, len(rows))
	for _, r := range rows {
		keys[statKey{r.StatisticQuestionID, r.StatisticSubTopicID, month}] = true
	}
	return keys, nil
}
