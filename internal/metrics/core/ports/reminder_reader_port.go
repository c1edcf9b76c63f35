package ports

import (
	"context"
	"time"

	reminders "reminder-metrics-service/internal/reminders/core/domain"
)

type ReminderReaderPort interface {
	// FetchReminders covers whole days from start to end inclusive.
	FetchReminders(ctx context.Context, start, end time.Time) (reminders.Dataset, error)
}
