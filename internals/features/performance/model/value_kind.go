package model

import (
	"strconv"
	"strings"
	"time"

	lookupModel "polstat_backend/internals/features/lookup/model"
)

// ValueKind is decided once, at ingestion. Aggregation sums only NUMERIC
// rows, so no downstream code ever sniffs strings again.
type ValueKind string

const (
	ValueKindNumeric ValueKind = "NUMERIC"
	ValueKindText    ValueKind = "TEXT"
	ValueKindBoolean ValueKind = "BOOLEAN"
	ValueKindDate    ValueKind = "DATE"
)

var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

// ClassifyValue decides the kind of a submitted value and, for numerics, the
// parsed float stored in the shadow column. The declared question type wins;
// the content checks only catch legacy clients that send "Yes"/"No" or a
// dd/mm/yyyy into a free-typed question.
func ClassifyValue(raw string, qType lookupModel.QuestionType) (ValueKind, *float64) {
	v := strings.TrimSpace(raw)

	switch qType {
	case lookupModel.QuestionTypeBoolean:
		return ValueKindBoolean, nil
	case lookupModel.QuestionTypeDate:
		return ValueKindDate, nil
	case lookupModel.QuestionTypeNumeric:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return ValueKindNumeric, &f
		}
		return ValueKindText, nil
	}

	// free-typed question: recognize the markers the legacy forms used
	switch strings.ToLower(v) {
	case "yes", "no":
		return ValueKindBoolean, nil
	}
	if strings.Contains(v, "/") || looksLikeDate(v) {
		return ValueKindDate, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return ValueKindNumeric, &f
	}
	return ValueKindText, nil
}

func looksLikeDate(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
