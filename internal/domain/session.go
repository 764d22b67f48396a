package domain

import "time"

// Session is a persisted record of one continuous short-form visit.
// End fields are nil while the session is open. A closed session is never
// mutated again.
type Session struct {
	ID           string
	App          string
	Day          string
	StartTime    time.Time
	StartEpochMs int64
	EndTime      *time.Time
	EndEpochMs   *int64
	DurationSec  *int64
}

// Closed reports whether the session has been ended.
func (s *Session) Closed() bool {
	return s.EndEpochMs != nil
}

// DayUTC is the day bucket used for session documents.
func DayUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
