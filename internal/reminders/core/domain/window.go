package domain

import "time"

const DateLayout = "2006-01-02"

// Window is the half-open query interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow covers whole calendar days from startDate to endDate inclusive,
// both taken at midnight in loc.
func NewWindow(startDate, endDate time.Time, loc *time.Location) Window {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return Window{Start: start, End: end}
}

// LowerBound and UpperBound are bare dates. Any stored date_time starting
// with YYYY-MM-DD sorts at or above that date whatever its time suffix, so
// date_time >= LowerBound and date_time < UpperBound select whole days.
func (w Window) LowerBound() string {
	return w.Start.Format(DateLayout)
}

func (w Window) UpperBound() string {
	return w.End.Format(DateLayout)
}

// Offset is the window's UTC offset as ±hh:mm.
func (w Window) Offset() string {
	return w.Start.Format("-07:00")
}
