package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lookupModel "polstat_backend/internals/features/lookup/model"
	"polstat_backend/internals/features/performance/dto"
	"polstat_backend/internals/features/performance/model"
	helper "polstat_backend/internals/helpers"
)

// FormService assembles the entry page for a (module, topic) path: which
// questions apply this reporting month and what value each one pre-fills
// with. It never writes to the ledger.
type FormService struct {
	DB     *gorm.DB
	Counts OrgCountProvider
	Clock  Clock
}

func NewFormService(db *gorm.DB, counts OrgCountProvider, clock Clock) *FormService {
	if counts == nil {
		counts = DistrictCountProvider{DB: db}
	}
	if clock == nil {
		clock = time.Now
	}
	return &FormService{DB: db, Counts: counts, Clock: clock}
}

type statKey struct {
	QuestionID uint
	SubTopicID uint
	Month      string
}

// GetPerformanceForm resolves modulePathID (0-based priority index) and
// topicPathID (1-based index into the module's active topics) and dispatches
// on the topic's form type.
func (s *FormService) GetPerformanceForm(ctx context.Context, userID uuid.UUID, modulePathID, topicPathID int) (*dto.PerformanceForm, error) {
	period := NewPeriod(s.Clock)
	db := s.DB.WithContext(ctx)

	var module lookupModel.Module
	err := db.Where("module_priority = ? AND module_is_active = ?", modulePathID+1, true).
		Take(&module).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}

	var topics []lookupModel.Topic
	if err := db.Where("topic_module_id = ? AND topic_is_active = ?", module.ModuleID, true).
		Order("topic_priority ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}
	if topicPathID < 1 || topicPathID > len(topics) {
		return nil, ErrTopicNotFound
	}
	topic := topics[topicPathID-1]

	var questions []lookupModel.Question
	if err := db.Where("question_topic_id = ? AND question_is_active = ?", topic.TopicID, true).
		Order("question_priority ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	var subTopics []lookupModel.SubTopic
	if err := db.Where("sub_topic_topic_id = ? AND sub_topic_is_active = ?", topic.TopicID, true).
		Order("sub_topic_priority ASC").
		Find(&subTopics).Error; err != nil {
		return nil, err
	}

	stats, err := s.loadLedgerWindow(ctx, userID, topic.TopicID, questions, period)
	if err != nil {
		return nil, err
	}

	counts := OrgCounts{}
	if needsOrgCounts(questions) {
		counts, err = s.Counts.Counts(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	var formQuestions []dto.FormQuestion
	switch topic.TopicFormType {
	case lookupModel.FormTypeNormal:
		formQuestions, err = s.processNormalForm(ctx, userID, topic, questions, subTopics, stats, counts, period)
	case lookupModel.FormTypeSubtopicQuestion:
		formQuestions, err = s.processMatrixForm(ctx, userID, topic, questions, subTopics, stats, counts, period, false)
	case lookupModel.FormTypeQuestionSubtopic:
		formQuestions, err = s.processMatrixForm(ctx, userID, topic, questions, subTopics, stats, counts, period, true)
	default:
		err = fmt.Errorf("topic %d: unknown form type %q", topic.TopicID, topic.TopicFormType)
	}
	if err != nil {
		return nil, err
	}

	hasPrevModule, hasNextModule, err := s.moduleNeighbors(ctx, modulePathID)
	if err != nil {
		return nil, err
	}

	return &dto.PerformanceForm{
		Module: dto.ModuleRef{ModuleID: module.ModuleID, ModuleName: module.ModuleName},
		Topic: dto.TopicRef{
			TopicID:        topic.TopicID,
			TopicName:      topic.TopicName,
			FormType:       string(topic.TopicFormType),
			ShowPrevious:   topic.TopicShowPrevious,
			ShowCumulative: topic.TopicShowCumulative,
			EntryOpen:      topicEntryOpen(topic, period.Now),
		},
		MonthYear:         period.Current,
		PreviousMonthYear: period.Previous,
		HasPreviousModule: hasPrevModule,
		HasNextModule:     hasNextModule,
		HasPreviousTopic:  topicPathID > 1,
		HasNextTopic:      topicPathID < len(topics),
		Questions:         formQuestions,
	}, nil
}

// loadLedgerWindow pulls the user's current and previous month rows for the
// topic, plus the rows of any cross-referenced default questions (those may
// live under other topics).
func (s *FormService) loadLedgerWindow(ctx context.Context, userID uuid.UUID, topicID uint, questions []lookupModel.Question, period Period) (map[statKey]*model.PerformanceStatistic, error) {
	db := s.DB.WithContext(ctx)
	months := []string{period.Current, period.Previous}

	var rows []model.PerformanceStatistic
	if err := db.Where(
		"statistic_user_id = ? AND statistic_topic_id = ? AND statistic_month_year IN ? AND statistic_is_active = ?",
		userID, topicID, months, true,
	).Find(&rows).Error; err != nil {
		return nil, err
	}

	var refIDs []uint
	for _, q := range questions {
		if q.QuestionDefaultSource == lookupModel.DefaultQuestion && q.QuestionDefaultQuestionID != 0 {
			refIDs = append(refIDs, q.QuestionDefaultQuestionID)
		}
	}
	if len(refIDs) > 0 {
		var refRows []model.PerformanceStatistic
		if err := db.Where(
			"statistic_user_id = ? AND statistic_question_id IN ? AND statistic_month_year IN ? AND statistic_is_active = ?",
			userID, refIDs, months, true,
		).Find(&refRows).Error; err != nil {
			return nil, err
		}
		rows = append(rows, refRows...)
	}

	stats := make(map[statKey]*model.PerformanceStatistic, len(rows))
	for i := range rows {
		r := &rows[i]
		stats[statKey{r.StatisticQuestionID, r.StatisticSubTopicID, r.StatisticMonthYear}] = r
	}
	return stats, nil
}

func (s *FormService) moduleNeighbors(ctx context.Context, modulePathID int) (hasPrev, hasNext bool, err error) {
	db := s.DB.WithContext(ctx)
	var prevCount, nextCount int64
	if err = db.Model(&lookupModel.Module{}).
		Where("module_priority = ? AND module_is_active = ?", modulePathID, true).
		Count(&prevCount).Error; err != nil {
		return
	}
	if err = db.Model(&lookupModel.Module{}).
		Where("module_priority = ? AND module_is_active = ?", modulePathID+2, true).
		Count(&nextCount).Error; err != nil {
		return
	}
	return prevCount > 0, nextCount > 0, nil
}

func (s *FormService) processNormalForm(ctx context.Context, userID uuid.UUID, topic lookupModel.Topic, questions []lookupModel.Question, subTopics []lookupModel.SubTopic, stats map[statKey]*model.PerformanceStatistic, counts OrgCounts, period Period) ([]dto.FormQuestion, error) {
	subTopicNames := make(map[uint]string, len(subTopics))
	subTopicOrder := make(map[uint]int, len(subTopics))
	for i, st := range subTopics {
		subTopicNames[st.SubTopicID] = st.SubTopicName
		subTopicOrder[st.SubTopicID] = i + 1
	}

	var cumulative map[uint]float64
	if topic.TopicShowCumulative {
		var err error
		cumulative, err = s.cumulativeTotals(ctx, userID, topic, period)
		if err != nil {
			return nil, err
		}
	}

	out := make([]dto.FormQuestion, 0, len(questions))
	topSerial := 0
	groupSerial := make(map[uint]int, len(subTopics))
	for _, q := range questions {
		cell := resolveCell(q, q.QuestionSubTopicID, stats, counts, period)

		// subtopic grouping is display numbering only
		var serial string
		if q.QuestionSubTopicID == 0 {
			topSerial++
			serial = strconv.Itoa(topSerial)
		} else {
			groupSerial[q.QuestionSubTopicID]++
			serial = fmt.Sprintf("%d.%d", subTopicOrder[q.QuestionSubTopicID], groupSerial[q.QuestionSubTopicID])
		}

		fq := dto.FormQuestion{
			QuestionID:    q.QuestionID,
			SerialNo:      serial,
			SubTopicID:    q.QuestionSubTopicID,
			SubTopicName:  subTopicNames[q.QuestionSubTopicID],
			Text:          q.QuestionText,
			Type:          string(q.QuestionType),
			DefaultSource: string(q.QuestionDefaultSource),
			Formula:       q.QuestionFormula,
			CurrentCount:  cell.CurrentCount,
			Status:        cell.Status,
			IsDisabled:    cell.IsDisabled,
		}
		if topic.TopicShowPrevious {
			fq.PreviousCount = cell.PreviousCount
		}
		if topic.TopicShowCumulative {
			if total, ok := cumulative[q.QuestionID]; ok {
				fq.CumulativeCount = strconv.FormatFloat(total, 'f', -1, 64)
			}
		}
		out = append(out, fq)
	}
	return out, nil
}

// processMatrixForm serves both matrix types: ST/Q, and Q/ST which adds the
// first-ever-entry flag per (question, subtopic) pair.
func (s *FormService) processMatrixForm(ctx context.Context, userID uuid.UUID, topic lookupModel.Topic, questions []lookupModel.Question, subTopics []lookupModel.SubTopic, stats map[statKey]*model.PerformanceStatistic, counts OrgCounts, period Period, withFirstEntry bool) ([]dto.FormQuestion, error) {
	var seen map[statKey]bool
	if withFirstEntry {
		var err error
		seen, err = s.historicalPairs(ctx, userID, topic.TopicID, period)
		if err != nil {
			return nil, err
		}
	}

	out := make([]dto.FormQuestion, 0, len(questions))
	for i, q := range questions {
		fq := dto.FormQuestion{
			QuestionID:    q.QuestionID,
			SerialNo:      strconv.Itoa(i + 1),
			Text:          q.QuestionText,
			Type:          string(q.QuestionType),
			DefaultSource: string(q.QuestionDefaultSource),
			Formula:       q.QuestionFormula,
			Values:        make([]dto.FormCell, 0, len(subTopics)),
		}
		for _, st := range subTopics {
			cell := resolveCell(q, st.SubTopicID, stats, counts, period)
			cell.SubTopicID = st.SubTopicID
			cell.SubTopicName = st.SubTopicName
			if !topic.TopicShowPrevious {
				cell.PreviousCount = ""
			}
			if withFirstEntry {
				cell.IsFirstEntry = !seen[statKey{q.QuestionID, st.SubTopicID, ""}]
			}
			fq.Values = append(fq.Values, cell)
		}
		out = append(out, fq)
	}
	return out, nil
}

// resolveCell applies the default-source rules to one (question, subtopic)
// slot. A cell is read-only once its current-month row is SUCCESS, or when
// its value is derived (non-NONE default or formula).
func resolveCell(q lookupModel.Question, subTopicID uint, stats map[statKey]*model.PerformanceStatistic, counts OrgCounts, period Period) dto.FormCell {
	cur := stats[statKey{q.QuestionID, subTopicID, period.Current}]
	prev := stats[statKey{q.QuestionID, subTopicID, period.Previous}]

	var value string
	switch q.QuestionDefaultSource {
	case lookupModel.DefaultPrevious:
		if cur != nil {
			value = cur.StatisticValue
		} else if prev != nil {
			value = prev.StatisticValue
		}
	case lookupModel.DefaultQuestion:
		// referenced questions carry no subtopic of their own
		if ref := stats[statKey{q.QuestionDefaultQuestionID, 0, period.Current}]; ref != nil {
			value = ref.StatisticValue
		} else if ref := stats[statKey{q.QuestionDefaultQuestionID, 0, period.Previous}]; ref != nil {
			value = ref.StatisticValue
		}
	case lookupModel.DefaultPS:
		value = strconv.Itoa(counts.PoliceStations)
	case lookupModel.DefaultSub:
		value = strconv.Itoa(counts.Subdivisions)
	case lookupModel.DefaultCircle:
		value = strconv.Itoa(counts.Circles)
	case lookupModel.DefaultPSOP:
		value = strconv.Itoa(counts.Outposts)
	default: // DefaultNone
		if cur != nil {
			value = cur.StatisticValue
		}
	}

	cell := dto.FormCell{CurrentCount: value}
	if prev != nil {
		cell.PreviousCount = prev.StatisticValue
	}
	if cur != nil {
		cell.Status = string(cur.StatisticStatus)
	}
	cell.IsDisabled = (cur != nil && cur.StatisticStatus == model.StatusSuccess) ||
		q.QuestionDefaultSource != lookupModel.DefaultNone ||
		q.QuestionFormula != ""
	return cell
}

// historicalPairs returns the (question, subtopic) pairs that already have a
// row in any month other than the current one.
func (s *FormService) historicalPairs(ctx context.Context, userID uuid.UUID, topicID uint, period Period) (map[statKey]bool, error) {
	var rows []struct {
		StatisticQuestionID uint
		StatisticSubTopicID uint
	}
	err := s.DB.WithContext(ctx).
		Model(&model.PerformanceStatistic{}).
		Distinct("statistic_question_id", "statistic_sub_topic_id").
		Where("statistic_user_id = ? AND statistic_topic_id = ? AND statistic_month_year <> ? AND statistic_is_active = ?",
			userID, topicID, period.Current, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	seen := make(map[statKey]bool, len(rows))
	for _, r := range rows {
		seen[statKey{r.StatisticQuestionID, r.StatisticSubTopicID, ""}] = true
	}
	return seen, nil
}

// cumulativeTotals sums the user's numeric values per question from the start
// of the topic's financial-year window through the previous month.
func (s *FormService) cumulativeTotals(ctx context.Context, userID uuid.UUID, topic lookupModel.Topic, period Period) (map[uint]float64, error) {
	fyStart := helper.FinancialYearStart(period.Now, topic.TopicStartMonth)
	prevMonth, err := helper.ParseMonthLabel(period.Previous)
	if err != nil {
		return nil, err
	}
	if prevMonth.Before(fyStart) {
		return map[uint]float64{}, nil
	}
	months, err := helper.ExpandMonthRange(helper.MonthLabel(fyStart), period.Previous)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		StatisticQuestionID uint
		Total               float64
	}
	err = s.DB.WithContext(ctx).
		Model(&model.PerformanceStatistic{}).
		Select("statistic_question_id, SUM(statistic_value_numeric) AS total").
		Where("statistic_user_id = ? AND statistic_topic_id = ? AND statistic_month_year IN ? AND statistic_value_kind = ? AND statistic_is_active = ?",
			userID, topic.TopicID, months, model.ValueKindNumeric, true).
		Group("statistic_question_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]float64, len(rows))
	for _, r := range rows {
		totals[r.StatisticQuestionID] = r.Total
	}
	return totals, nil
}

func needsOrgCounts(questions []lookupModel.Question) bool {
	for _, q := range questions {
		switch q.QuestionDefaultSource {
		case lookupModel.DefaultPS, lookupModel.DefaultSub, lookupModel.DefaultCircle, lookupModel.DefaultPSOP:
			return true
		}
	}
	return false
}

// topicEntryOpen checks the calendar month against the topic's entry window.
// The window may wrap the year end (e.g. Apr..Mar).
func topicEntryOpen(topic lookupModel.Topic, now time.Time) bool {
	start, end := topic.TopicStartMonth, topic.TopicEndMonth
	if start == 0 && end == 0 {
		return true
	}
	if start == 0 {
		start = 1
	}
	if end == 0 {
		end = 12
	}
	m := int(now.Month())
	if start <= end {
		return m >= start && m <= end
	}
	return m >= start || m <= end
}
