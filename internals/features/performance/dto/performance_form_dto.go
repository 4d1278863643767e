package dto

// PerformanceForm is the assembled entry page for one (module, topic) path:
// the questions to answer this reporting month, pre-filled and flagged
// read-only where a value must not be re-entered.
type PerformanceForm struct {
	Module            ModuleRef      `json:"module"`
	Topic             TopicRef       `json:"topic"`
	MonthYear         string         `json:"month_year"`
	PreviousMonthYear string         `json:"previous_month_year"`
	HasPreviousModule bool           `json:"has_previous_module"`
	HasNextModule     bool           `json:"has_next_module"`
	HasPreviousTopic  bool           `json:"has_previous_topic"`
	HasNextTopic      bool           `json:"has_next_topic"`
	Questions         []FormQuestion `json:"questions"`
}

type ModuleRef struct {
	ModuleID   uint   `json:"module_id"`
	ModuleName string `json:"module_name"`
}

type TopicRef struct {
	TopicID        uint   `json:"topic_id"`
	TopicName      string `json:"topic_name"`
	FormType       string `json:"form_type"`
	ShowPrevious   bool   `json:"show_previous"`
	ShowCumulative bool   `json:"show_cumulative"`
	EntryOpen      bool   `json:"entry_open"`
}

type FormQuestion struct {
	QuestionID      uint       `json:"question_id"`
	SerialNo        string     `json:"serial_no"`
	SubTopicID      uint       `json:"sub_topic_id,omitempty"`
	SubTopicName    string     `json:"sub_topic_name,omitempty"`
	Text            string     `json:"text"`
	Type            string     `json:"type"`
	DefaultSource   string     `json:"default_source"`
	Formula         string     `json:"formula,omitempty"`
	CurrentCount    string     `json:"current_count"`
	PreviousCount   string     `json:"previous_count,omitempty"`
	CumulativeCount string     `json:"cumulative_count,omitempty"`
	Status          string     `json:"status,omitempty"`
	IsDisabled      bool       `json:"is_disabled"`
	Values          []FormCell `json:"values,omitempty"`
}

// FormCell is one (question, subtopic) slot of a matrix form.
type FormCell struct {
	SubTopicID    uint   `json:"sub_topic_id"`
	SubTopicName  string `json:"sub_topic_name"`
	CurrentCount  string `json:"current_count"`
	PreviousCount string `json:"previous_count,omitempty"`
	Status        string `json:"status,omitempty"`
	IsDisabled    bool   `json:"is_disabled"`
	IsFirstEntry  bool   `json:"is_first_entry,omitempty"`
}
