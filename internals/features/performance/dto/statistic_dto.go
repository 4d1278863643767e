package dto

type SaveStatisticsRequest struct {
	PerformanceStatistics []StatisticInput `json:"performanceStatistics" validate:"required,min=1,dive"`
}

type StatisticInput struct {
	QuestionID uint   `json:"questionId" validate:"required"`
	ModuleID   uint   `json:"moduleId" validate:"required"`
	TopicID    uint   `json:"topicId" validate:"required"`
	SubTopicID uint   `json:"subTopicId"`
	Value      string `json:"value"`
	Status     string `json:"status" validate:"omitempty,oneof=INPROGRESS SUCCESS"`
}

// SaveItemResult reports what happened to each entry of a batch; the batch is
// transactional, so either every item lands or none do.
type SaveItemResult struct {
	QuestionID uint   `json:"questionId"`
	SubTopicID uint   `json:"subTopicId"`
	MonthYear  string `json:"monthYear"`
	Action     string `json:"action"` // CREATED | UPDATED
}

type VerifyOtpRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}
