package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reminder-metrics-service/internal/reminders/core/domain"
	"reminder-metrics-service/internal/reminders/core/ports"
)

var ErrSourceUnavailable = errors.New("reminder source unavailable")

type FetchRemindersUseCase struct {
	source  ports.ReminderSourcePort
	loc     *time.Location
	timeout time.Duration
}

// NewFetchRemindersUseCase builds windows in loc. A zero timeout leaves the
// deadline to the caller's context.
func NewFetchRemindersUseCase(source ports.ReminderSourcePort, loc *time.Location, timeout time.Duration) *FetchRemindersUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &FetchRemindersUseCase{source: source, loc: loc, timeout: timeout}
}

// FetchReminders queries [start 00:00, end+1 00:00) and normalizes every row.
func (uc *FetchRemindersUseCase) FetchReminders(ctx context.Context, start, end time.Time) (domain.Dataset, error) {
	w := domain.NewWindow(start, end, uc.loc)

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	rows, err := uc.source.FetchReminders(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	out := make(domain.Dataset, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Normalize(r))
	}

	return out, nil
}
