package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"reminder-metrics-service/internal/reminders/core/domain"
	"reminder-metrics-service/internal/reminders/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ReminderRepository struct {
	db DB
}

func NewReminderRepository(db DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

var _ ports.ReminderSourcePort = (*ReminderRepository)(nil)

// date_time and sent_at are stored as ISO text with the source offset.
const selectRemindersSQL = `
SELECT
    user_id,
    SUBSTRING(date_time FROM 1 FOR 10) AS created_date,
    SUBSTRING(sent_at FROM 1 FOR 10) AS sent_date,
    COALESCE(status, 'not_sent') AS status
FROM reminders
WHERE date_time >= $1 AND date_time < $2`

func (r *ReminderRepository) FetchReminders(ctx context.Context, w domain.Window) (domain.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, selectRemindersSQL, w.LowerBound(), w.UpperBound())
	if err != nil {
		return nil, describe(err)
	}
	defer rows.Close()

	out := domain.Dataset{}
	for rows.Next() {
		var (
			userID, created, status string
			sent                    sql.NullString
		)
		if err := rows.Scan(&userID, &created, &sent, &status); err != nil {
			return nil, err
		}

		out = append(out, domain.Reminder{
			UserID:      userID,
			CreatedDate: created,
			SentDate:    sent.String,
			Status:      domain.Status(status),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, describe(err)
	}

	return out, nil
}

// describe prefixes server errors with their SQLSTATE condition name.
func describe(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("postgres %s (%s): %w", pqErr.Code.Name(), pqErr.Code, err)
	}
	return err
}
