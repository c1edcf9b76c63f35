package sqlite

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"reminder-metrics-service/internal/reminders/core/domain"
)

const createRemindersSQL = `
CREATE TABLE reminders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	date_time TEXT NOT NULL,
	sent_at TEXT,
	status TEXT
)`

type seedRow struct {
	userID   string
	dateTime string
	sentAt   any
	status   any
}

func openTestDB(t *testing.T, seed []seedRow) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// every pooled connection would get its own :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(createRemindersSQL); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, r := range seed {
		if _, err := db.Exec(
			`INSERT INTO reminders(user_id, date_time, sent_at, status) VALUES (?, ?, ?, ?)`,
			r.userID, r.dateTime, r.sentAt, r.status,
		); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return db
}

func window(start, end string) domain.Window {
	loc := time.FixedZone("UTC-4", -4*60*60)
	s, _ := time.ParseInLocation(domain.DateLayout, start, loc)
	e, _ := time.ParseInLocation(domain.DateLayout, end, loc)
	return domain.NewWindow(s, e, loc)
}

// ------------------------------------------------------------
// WINDOW BOUNDARIES
// ------------------------------------------------------------

func TestReminderRepository_WindowBoundaries(t *testing.T) {
	db := openTestDB(t, []seedRow{
		{"before", "2024-03-31T23:59:59.999-04:00", nil, nil},
		{"first", "2024-04-01T00:00:00.000-04:00", nil, nil},
		{"last", "2024-04-10T23:59:59.000-04:00", nil, nil},
		{"after", "2024-04-11T00:00:00.000-04:00", nil, nil},
	})

	rows, err := NewReminderRepository(db).FetchReminders(context.Background(), window("2024-04-01", "2024-04-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]bool{}
	for _, r := range rows {
		got[r.UserID] = true
	}
	if len(rows) != 2 || !got["first"] || !got["last"] {
		t.Fatalf("expected only first and last, got %+v", rows)
	}
}

func TestReminderRepository_WindowBoundaries_WithoutMilliseconds(t *testing.T) {
	db := openTestDB(t, []seedRow{
		{"before", "2024-03-31T23:59:59-04:00", nil, nil},
		{"first", "2024-04-01T00:00:00-04:00", nil, nil},
		{"last", "2024-04-10T23:59:59-04:00", nil, nil},
		{"after", "2024-04-11T00:00:00-04:00", nil, nil},
		{"first_ms", "2024-04-01T00:00:00.000-04:00", nil, nil},
		{"after_ms", "2024-04-11T00:00:00.000-04:00", nil, nil},
	})

	rows, err := NewReminderRepository(db).FetchReminders(context.Background(), window("2024-04-01", "2024-04-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]string{}
	for _, r := range rows {
		got[r.UserID] = r.CreatedDate
	}
	if len(rows) != 3 || got["first"] != "2024-04-01" || got["last"] != "2024-04-10" || got["first_ms"] != "2024-04-01" {
		t.Fatalf("expected first, last and first_ms only, got %+v", rows)
	}
}

// ------------------------------------------------------------
// PROJECTION
// ------------------------------------------------------------

func TestReminderRepository_Projection(t *testing.T) {
	db := openTestDB(t, []seedRow{
		{"u1", "2024-04-02T08:15:00.000-04:00", "2024-04-03T09:00:00.000-04:00", "sent"},
		{"u2", "2024-04-05T10:00:00.000-04:00", nil, nil},
	})

	rows, err := NewReminderRepository(db).FetchReminders(context.Background(), window("2024-04-01", "2024-04-30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	byUser := map[string]domain.Reminder{}
	for _, r := range rows {
		byUser[r.UserID] = r
	}

	sent := byUser["u1"]
	if sent.CreatedDate != "2024-04-02" || sent.SentDate != "2024-04-03" || sent.Status != domain.StatusSent {
		t.Fatalf("unexpected projection for u1: %+v", sent)
	}
	pending := byUser["u2"]
	if pending.CreatedDate != "2024-04-05" || pending.SentDate != "" || pending.Status != domain.StatusNotSent {
		t.Fatalf("unexpected projection for u2: %+v", pending)
	}
}

// ------------------------------------------------------------
// EMPTY / ERROR
// ------------------------------------------------------------

func TestReminderRepository_EmptyRange(t *testing.T) {
	db := openTestDB(t, []seedRow{
		{"u1", "2024-01-02T08:15:00.000-04:00", nil, "sent"},
	})

	rows, err := NewReminderRepository(db).FetchReminders(context.Background(), window("2024-04-01", "2024-04-30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil || !rows.Empty() {
		t.Fatalf("expected empty non-nil dataset, got %v", rows)
	}
}

func TestReminderRepository_MissingTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	rows, err := NewReminderRepository(db).FetchReminders(context.Background(), window("2024-04-01", "2024-04-30"))
	if err == nil {
		t.Fatalf("expected error for missing table")
	}
	if rows != nil {
		t.Fatalf("expected nil rows on error")
	}
}

// ------------------------------------------------------------
// OPEN
// ------------------------------------------------------------

func TestFileDSN_EscapesPath(t *testing.T) {
	got := fileDSN("/var/data/reminders?v=2#old.db", url.Values{"mode": {"ro"}})
	want := "file:/var/data/reminders%3Fv=2%23old.db?mode=ro"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	if got := fileDSN("data/reminders.db", url.Values{"mode": {"ro"}}); got != "file:data/reminders.db?mode=ro" {
		t.Fatalf("unexpected relative dsn %s", got)
	}
}

func TestOpen_PathWithQueryAndFragmentCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders?v=2#old.db")

	seed, err := sql.Open("sqlite", fileDSN(path, url.Values{"mode": {"rwc"}}))
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	if _, err := seed.Exec(createRemindersSQL); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := seed.Exec(
		`INSERT INTO reminders(user_id, date_time, sent_at, status) VALUES (?, ?, ?, ?)`,
		"u1", "2024-04-02T08:15:00-04:00", nil, "sent",
	); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := seed.Close(); err != nil {
		t.Fatalf("close seed db: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database at %s: %v", path, err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer db.Close()

	rows, err := NewReminderRepository(db).FetchReminders(context.Background(), window("2024-04-01", "2024-04-30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != "u1" {
		t.Fatalf("expected the seeded row, got %+v", rows)
	}

	if _, err := db.Exec(`DELETE FROM reminders`); err == nil {
		t.Fatalf("expected read-only database to reject writes")
	}
}
