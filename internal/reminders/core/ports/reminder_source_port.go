package ports

import (
	"context"

	"reminder-metrics-service/internal/reminders/core/domain"
)

type ReminderSourcePort interface {
	// FetchReminders returns every reminder created inside w.
	//   rows, err = nil -> rows may be empty, that is a valid result
	//   err != nil      -> no partial rows
	FetchReminders(ctx context.Context, w domain.Window) (domain.Dataset, error)
}
