package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lookupModel "polstat_backend/internals/features/lookup/model"
	"polstat_backend/internals/features/performance/model"
)

func TestGetPerformanceFormNormal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	module := seedModule(t, db, 1)
	topic := seedTopic(t, db, module.ModuleID, lookupModel.FormTypeNormal, func(tp *lookupModel.Topic) {
		tp.TopicShowPrevious = true
	})
	q1 := seedQuestion(t, db, topic.TopicID, 1, nil)
	q2 := seedQuestion(t, db, topic.TopicID, 2, func(q *lookupModel.Question) {
		q.QuestionDefaultSource = lookupModel.DefaultPrevious
	})

	// q2 was answered last month; this month it carries forward read-only
	seedStat(t, db, model.PerformanceStatistic{
		StatisticUserID:       user.UserID,
		StatisticQuestionID:   q2.QuestionID,
		StatisticMonthYear:    "DEC 2025",
		StatisticModuleID:     module.ModuleID,
		StatisticTopicID:      topic.TopicID,
		StatisticValue:        "42",
		StatisticValueKind:    model.ValueKindNumeric,
		StatisticValueNumeric: numPtr(42),
		StatisticStatus:       model.StatusSuccess,
	})

	svc := NewFormService(db, fixedCounts{}, testClock)
	form, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, "JAN 2026", form.MonthYear)
	assert.Equal(t, "DEC 2025", form.PreviousMonthYear)
	assert.True(t, form.Topic.EntryOpen)
	assert.False(t, form.HasPreviousModule)
	assert.False(t, form.HasNextModule)
	assert.False(t, form.HasPreviousTopic)
	assert.False(t, form.HasNextTopic)

	require.Len(t, form.Questions, 2)

	first := form.Questions[0]
	assert.Equal(t, q1.QuestionID, first.QuestionID)
	assert.Equal(t, "1", first.SerialNo)
	assert.Equal(t, "", first.CurrentCount)
	assert.False(t, first.IsDisabled)

	second := form.Questions[1]
	assert.Equal(t, q2.QuestionID, second.QuestionID)
	assert.Equal(t, "2", second.SerialNo)
	assert.Equal(t, "42", second.CurrentCount)
	assert.Equal(t, "42", second.PreviousCount)
	assert.True(t, second.IsDisabled)
}

func TestGetPerformanceFormQuestionDefault(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	module := seedModule(t, db, 1)
	topic := seedTopic(t, db, module.ModuleID, lookupModel.FormTypeNormal, nil)
	src := seedQuestion(t, db, topic.TopicID, 1, nil)
	mirror := seedQuestion(t, db, topic.TopicID, 2, func(q *lookupModel.Question) {
		q.QuestionDefaultSource = lookupModel.DefaultQuestion
		q.QuestionDefaultQuestionID = src.QuestionID
	})

	seedStat(t, db, model.PerformanceStatistic{
		StatisticUserID:       user.UserID,
		StatisticQuestionID:   src.QuestionID,
		StatisticMonthYear:    "JAN 2026",
		StatisticModuleID:     module.ModuleID,
		StatisticTopicID:      topic.TopicID,
		StatisticValue:        "11",
		StatisticValueKind:    model.ValueKindNumeric,
		StatisticValueNumeric: numPtr(11),
		StatisticStatus:       model.StatusInProgress,
	})

	svc := NewFormService(db, fixedCounts{}, testClock)
	form, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	require.NoError(t, err)
	require.Len(t, form.Questions, 2)

	got := form.Questions[1]
	assert.Equal(t, mirror.QuestionID, got.QuestionID)
	assert.Equal(t, "11", got.CurrentCount)
	assert.True(t, got.IsDisabled)
}

func TestGetPerformanceFormOrgCountDefaults(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	module := seedModule(t, db, 1)
	topic := seedTopic(t, db, module.ModuleID, lookupModel.FormTypeNormal, nil)
	seedQuestion(t, db, topic.TopicID, 1, func(q *lookupModel.Question) {
		q.QuestionDefaultSource = lookupModel.DefaultPS
	})
	seedQuestion(t, db, topic.TopicID, 2, func(q *lookupModel.Question) {
		q.QuestionDefaultSource = lookupModel.DefaultPSOP
	})

	svc := NewFormService(db, fixedCounts{OrgCounts{PoliceStations: 9, Outposts: 4}}, testClock)
	form, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	require.NoError(t, err)
	require.Len(t, form.Questions, 2)

	assert.Equal(t, "9", form.Questions[0].CurrentCount)
	assert.True(t, form.Questions[0].IsDisabled)
	assert.Equal(t, "4", form.Questions[1].CurrentCount)
	assert.True(t, form.Questions[1].IsDisabled)
}

func TestGetPerformanceFormCumulative(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	module := seedModule(t, db, 1)
	topic := seedTopic(t, db, module.ModuleID, lookupModel.FormTypeNormal, func(tp *lookupModel.Topic) {
		tp.TopicShowCumulative = true
		tp.TopicStartMonth = 4
	})
	q := seedQuestion(t, db, topic.TopicID, 1, nil)

	// APR 2025 financial year; NOV + DEC contribute, JAN (current) does not
	for month, value := range map[string]float64{"NOV 2025": 10, "DEC 2025": 5} {
		seedStat(t, db, model.PerformanceStatistic{
			StatisticUserID:       user.UserID,
			StatisticQuestionID:   q.QuestionID,
			StatisticMonthYear:    month,
			StatisticModuleID:     module.ModuleID,
			StatisticTopicID:      topic.TopicID,
			StatisticValue:        "x",
			StatisticValueKind:    model.ValueKindNumeric,
			StatisticValueNumeric: numPtr(value),
			StatisticStatus:       model.StatusSuccess,
		})
	}

	svc := NewFormService(db, fixedCounts{}, testClock)
	form, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	require.NoError(t, err)
	require.Len(t, form.Questions, 1)
	assert.Equal(t, "15", form.Questions[0].CumulativeCount)
}

func TestGetPerformanceFormMatrixSubtopicQuestion(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	module := seedModule(t, db, 1)
	topic := seedTopic(t, db, module.ModuleID, lookupModel.FormTypeSubtopicQuestion, func(tp *lookupModel.Topic) {
		tp.TopicShowPrevious = true
	})
	q := seedQuestion(t, db, topic.TopicID, 1, nil)
	stA := seedSubTopic(t, db, topic.TopicID, "Urban", 1)
	stB := seedSubTopic(t, db, topic.TopicID, "Rural", 2)

	seedStat(t, db, model.PerformanceStatistic{
		StatisticUserID:     user.UserID,
		StatisticQuestionID: q.QuestionID,
		StatisticSubTopicID: stA.SubTopicID,
		StatisticMonthYear:  "JAN 2026",
		StatisticModuleID:   module.ModuleID,
		StatisticTopicID:    topic.TopicID,
		StatisticValue:      "7",
		StatisticValueKind:  model.ValueKindNumeric,
		StatisticValueNumeric: numPtr(7),
		StatisticStatus:     model.StatusSuccess,
	})
	seedStat(t, db, model.PerformanceStatistic{
		StatisticUserID:     user.UserID,
		StatisticQuestionID: q.QuestionID,
		StatisticSubTopicID: stB.SubTopicID,
		StatisticMonthYear:  "DEC 2025",
		StatisticModuleID:   module.ModuleID,
		StatisticTopicID:    topic.TopicID,
		StatisticValue:      "3",
		StatisticValueKind:  model.ValueKindNumeric,
		StatisticValueNumeric: numPtr(3),
		StatisticStatus:     model.StatusSuccess,
	})

	svc := NewFormService(db, fixedCounts{}, testClock)
	form, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	require.NoError(t, err)
	require.Len(t, form.Questions, 1)
	require.Len(t, form.Questions[0].Values, 2)

	urban := form.Questions[0].Values[0]
	assert.Equal(t, stA.SubTopicID, urban.SubTopicID)
	assert.Equal(t, "Urban", urban.SubTopicName)
	assert.Equal(t, "7", urban.CurrentCount)
	assert.Equal(t, string(model.StatusSuccess), urban.Status)
	assert.True(t, urban.IsDisabled)

	rural := form.Questions[0].Values[1]
	assert.Equal(t, "Rural", rural.SubTopicName)
	assert.Equal(t, "", rural.CurrentCount)
	assert.Equal(t, "3", rural.PreviousCount)
	assert.False(t, rural.IsDisabled)
}

func TestGetPerformanceFormMatrixFirstEntry(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	module := seedModule(t, db, 1)
	topic := seedTopic(t, db, module.ModuleID, lookupModel.FormTypeQuestionSubtopic, nil)
	q := seedQuestion(t, db, topic.TopicID, 1, nil)
	stA := seedSubTopic(t, db, topic.TopicID, "Urban", 1)
	seedSubTopic(t, db, topic.TopicID, "Rural", 2)

	// a row in any earlier month clears the first-entry flag for that pair
	seedStat(t, db, model.PerformanceStatistic{
		StatisticUserID:     user.UserID,
		StatisticQuestionID: q.QuestionID,
		StatisticSubTopicID: stA.SubTopicID,
		StatisticMonthYear:  "NOV 2025",
		StatisticModuleID:   module.ModuleID,
		StatisticTopicID:    topic.TopicID,
		StatisticValue:      "1",
		StatisticValueKind:  model.ValueKindNumeric,
		StatisticValueNumeric: numPtr(1),
		StatisticStatus:     model.StatusSuccess,
	})

	svc := NewFormService(db, fixedCounts{}, testClock)
	form, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	require.NoError(t, err)
	require.Len(t, form.Questions, 1)
	require.Len(t, form.Questions[0].Values, 2)

	assert.False(t, form.Questions[0].Values[0].IsFirstEntry)
	assert.True(t, form.Questions[0].Values[1].IsFirstEntry)
}

func TestGetPerformanceFormNavFlags(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	seedModule(t, db, 1)
	m2 := seedModule(t, db, 2)
	seedModule(t, db, 3)
	t1 := seedTopic(t, db, m2.ModuleID, lookupModel.FormTypeNormal, nil)
	seedTopic(t, db, m2.ModuleID, lookupModel.FormTypeNormal, func(tp *lookupModel.Topic) {
		tp.TopicPriority = 2
	})
	seedQuestion(t, db, t1.TopicID, 1, nil)

	svc := NewFormService(db, fixedCounts{}, testClock)
	form, err := svc.GetPerformanceForm(context.Background(), user.UserID, 1, 1)
	require.NoError(t, err)

	assert.True(t, form.HasPreviousModule)
	assert.True(t, form.HasNextModule)
	assert.False(t, form.HasPreviousTopic)
	assert.True(t, form.HasNextTopic)
}

func TestGetPerformanceFormNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	svc := NewFormService(db, fixedCounts{}, testClock)
	_, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	assert.ErrorIs(t, err, ErrModuleNotFound)

	module := seedModule(t, db, 1)
	seedTopic(t, db, module.ModuleID, lookupModel.FormTypeNormal, nil)
	_, err = svc.GetPerformanceForm(context.Background(), user.UserID, 0, 5)
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestGetPerformanceFormUnknownFormType(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	module := seedModule(t, db, 1)
	seedTopic(t, db, module.ModuleID, lookupModel.FormType("GRID"), nil)

	svc := NewFormService(db, fixedCounts{}, testClock)
	_, err := svc.GetPerformanceForm(context.Background(), user.UserID, 0, 1)
	assert.Error(t, err)
}

func TestTopicEntryOpen(t *testing.T) {
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	open := lookupModel.Topic{}
	assert.True(t, topicEntryOpen(open, jan))

	bounded := lookupModel.Topic{TopicStartMonth: 4, TopicEndMonth: 9}
	assert.True(t, topicEntryOpen(bounded, jun))
	assert.False(t, topicEntryOpen(bounded, jan))

	// window wrapping the year end (Oct..Feb)
	wrapped := lookupModel.Topic{TopicStartMonth: 10, TopicEndMonth: 2}
	assert.True(t, topicEntryOpen(wrapped, jan))
	assert.False(t, topicEntryOpen(wrapped, jun))
}
