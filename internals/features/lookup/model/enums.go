package model

import "fmt"

// FormType selects the assembly algorithm for a topic's entry page.
type FormType string

const (
	// FormTypeNormal is a flat question list, optionally grouped by subtopic
	// for display numbering.
	FormTypeNormal FormType = "NORMAL"
	// FormTypeSubtopicQuestion (ST/Q) evaluates every question against every
	// subtopic of the topic, one value per subtopic.
	FormTypeSubtopicQuestion FormType = "ST/Q"
	// FormTypeQuestionSubtopic (Q/ST) is the same matrix plus a first-entry
	// flag per (question, subtopic) pair.
	FormTypeQuestionSubtopic FormType = "Q/ST"
)

func ParseFormType(s string) (FormType, error) {
	switch FormType(s) {
	case FormTypeNormal, FormTypeSubtopicQuestion, FormTypeQuestionSubtopic:
		return FormType(s), nil
	}
	return "", fmt.Errorf("unknown form type %q", s)
}

// DefaultSource says where a question's pre-filled value comes from.
type DefaultSource string

const (
	DefaultNone     DefaultSource = "NONE"     // current month's own value, else empty
	DefaultPrevious DefaultSource = "PREVIOUS" // carried forward from previous month
	DefaultQuestion DefaultSource = "QUESTION" // copied from another question
	DefaultPS       DefaultSource = "PS"       // police-station count of the unit
	DefaultSub      DefaultSource = "SUB"      // subdivision count
	DefaultCircle   DefaultSource = "CIRCLE"   // circle count
	DefaultPSOP     DefaultSource = "PSOP"     // police-outpost count
)

func ParseDefaultSource(s string) (DefaultSource, error) {
	switch DefaultSource(s) {
	case DefaultNone, DefaultPrevious, DefaultQuestion, DefaultPS, DefaultSub, DefaultCircle, DefaultPSOP:
		return DefaultSource(s), nil
	}
	return "", fmt.Errorf("unknown default source %q", s)
}

// QuestionType is the declared answer type; it decides how submitted values
// are classified at ingestion.
type QuestionType string

const (
	QuestionTypeText    QuestionType = "TEXT"
	QuestionTypeNumeric QuestionType = "NUMERIC"
	QuestionTypeDate    QuestionType = "DATE"
	QuestionTypeBoolean QuestionType = "BOOLEAN"
)

func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case QuestionTypeText, QuestionTypeNumeric, QuestionTypeDate, QuestionTypeBoolean:
		return QuestionType(s), nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}
