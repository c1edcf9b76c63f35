package usecase

import (
	"context"
	"errors"
	"time"

	"reminder-metrics-service/internal/metrics/core/domain"
	"reminder-metrics-service/internal/metrics/core/ports"
	reminders "reminder-metrics-service/internal/reminders/core/domain"
)

var ErrInvalidViewMode = errors.New("invalid view_mode, expected daily or monthly")

// DefaultLookbackDays is how far back start_date goes when it is not given.
const DefaultLookbackDays = 30

type GetMetricsInput struct {
	StartDate string // YYYY-MM-DD, longer values are truncated
	EndDate   string
	ViewMode  string // "daily" (default) / "monthly"
}

type MetricsReport struct {
	StartDate string
	EndDate   string
	ViewMode  domain.Granularity
	Bundle    *domain.Bundle
}

type GetMetricsUseCase struct {
	reader ports.ReminderReaderPort
	loc    *time.Location
	now    func() time.Time
}

func NewGetMetricsUseCase(reader ports.ReminderReaderPort, loc *time.Location) *GetMetricsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &GetMetricsUseCase{reader: reader, loc: loc, now: time.Now}
}

// WithClock replaces the clock used to default missing dates.
func (uc *GetMetricsUseCase) WithClock(now func() time.Time) *GetMetricsUseCase {
	uc.now = now
	return uc
}

// Execute resolves the date range, fetches the reminders and computes the
// bundle. Bad dates fall back to defaults; only the view mode and the
// source can fail.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, in GetMetricsInput) (*MetricsReport, error) {
	view := domain.Daily
	if in.ViewMode != "" {
		view = domain.Granularity(in.ViewMode)
		if !view.Valid() {
			return nil, ErrInvalidViewMode
		}
	}

	start, end := uc.resolveRange(in.StartDate, in.EndDate)

	ds, err := uc.reader.FetchReminders(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &MetricsReport{
		StartDate: start.Format(reminders.DateLayout),
		EndDate:   end.Format(reminders.DateLayout),
		ViewMode:  view,
		Bundle:    Compute(ds),
	}, nil
}

func (uc *GetMetricsUseCase) resolveRange(startStr, endStr string) (time.Time, time.Time) {
	today := uc.now().In(uc.loc)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, uc.loc)
	defaultStart := today.AddDate(0, 0, -DefaultLookbackDays)

	if startStr == "" || endStr == "" {
		return defaultStart, today
	}

	start, ok := uc.parseDate(startStr)
	if !ok {
		start = defaultStart
	}
	end, ok := uc.parseDate(endStr)
	if !ok {
		end = today
	}
	return start, end
}

func (uc *GetMetricsUseCase) parseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(reminders.DateLayout, reminders.DatePrefix(s), uc.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
