package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"reminder-metrics-service/internal/reminders/core/domain"
	"reminder-metrics-service/internal/reminders/core/ports"

	_ "modernc.org/sqlite"
)

// Querier is satisfied by *sql.DB and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type ReminderRepository struct {
	db Querier
}

func NewReminderRepository(db Querier) *ReminderRepository {
	return &ReminderRepository{db: db}
}

var _ ports.ReminderSourcePort = (*ReminderRepository)(nil)

// Open opens an existing reminders database read-only.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", fileDSN(path, url.Values{
		"mode":    {"ro"},
		"_pragma": {"busy_timeout(5000)"},
	}))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// fileDSN renders path as a file: URI, so '?', '#' and '%' in file names are
// escaped instead of being read as the query or fragment.
func fileDSN(path string, params url.Values) string {
	u := url.URL{
		Scheme:   "file",
		OmitHost: true,
		Path:     path,
		RawQuery: params.Encode(),
	}
	return u.String()
}

const selectRemindersSQL = `
SELECT
    user_id,
    substr(date_time, 1, 10),
    substr(sent_at, 1, 10),
    COALESCE(status, 'not_sent')
FROM reminders
WHERE date_time >= ? AND date_time < ?`

func (r *ReminderRepository) FetchReminders(ctx context.Context, w domain.Window) (domain.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, selectRemindersSQL, w.LowerBound(), w.UpperBound())
	if err != nil {
		return nil, err
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
		return nil, err
	}

	return out, nil
}
