package helper

import (
	"fmt"
	"strings"
	"time"
)

// Reporting months are keyed by an upper-cased "MMM YYYY" label ("JAN 2026").
// Every ledger row and every report filter speaks this format, so all of the
// month math lives here.

const monthLayout = "Jan 2006"

func MonthLabel(t time.Time) string {
	return strings.ToUpper(t.Format(monthLayout))
}

func ParseMonthLabel(label string) (time.Time, error) {
	t, err := time.Parse(monthLayout, normalizeMonthLabel(label))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month label %q", label)
	}
	return t, nil
}

// AddMonths shifts a month label by n calendar months.
func AddMonths(label string, n int) (string, error) {
	t, err := ParseMonthLabel(label)
	if err != nil {
		return "", err
	}
	return MonthLabel(t.AddDate(0, n, 0)), nil
}

// ExpandMonthRange walks from start to end inclusively, month by month.
// start == end yields a single label.
func ExpandMonthRange(start, end string) ([]string, error) {
	from, err := ParseMonthLabel(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseMonthLabel(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("month range end %q precedes start %q", end, start)
	}

	var labels []string
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 1, 0) {
		labels = append(labels, MonthLabel(cur))
	}
	return labels, nil
}

// FinancialYearStart returns the first month of the financial-year window
// that contains t. startMonth is 1..12 (0 falls back to April, the Indian
// financial year).
func FinancialYearStart(t time.Time, startMonth int) time.Time {
	if startMonth < 1 || startMonth > 12 {
		startMonth = 4
	}
	year := t.Year()
	if int(t.Month()) < startMonth {
		year--
	}
	return time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, t.Location())
}

// "JAN 2026" -> "Jan 2026" so time.Parse accepts it regardless of the casing
// the client sent.
func normalizeMonthLabel(label string) string {
	label = strings.TrimSpace(label)
	if len(label) < 3 {
		return label
	}
	return strings.ToUpper(label[:1]) + strings.ToLower(label[1:3]) + label[3:]
}
