package service

import (
	"time"

	helper "polstat_backend/internals/helpers"
)

// Clock supplies "now" so the reporting period can be pinned in tests.
type Clock func() time.Time

// Period is the explicit reporting window threaded through the assembler,
// ledger and finalize paths: the current calendar month and the one before it.
type Period struct {
	Now      time.Time
	Current  string
	Previous string
}

func NewPeriod(clock Clock) Period {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	return Period{
		Now:      now,
		Current:  helper.MonthLabel(now),
		Previous: helper.MonthLabel(now.AddDate(0, -1, 0)),
	}
}
