package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"reminder-metrics-service/internal/reminders/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeCursor decodes its documents through a real bson round trip.
type fakeCursor struct {
	docs   []bson.M
	i      int
	err    error
	closed bool
}

func (f *fakeCursor) Next(ctx context.Context) bool {
	if f.i >= len(f.docs) {
		return false
	}
	f.i++
	return true
}

func (f *fakeCursor) Decode(val any) error {
	raw, err := bson.Marshal(f.docs[f.i-1])
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, val)
}

func (f *fakeCursor) Err() error {
	return f.err
}

func (f *fakeCursor) Close(ctx context.Context) error {
	f.closed = true
	return nil
}

type fakeCollection struct {
	AggregateFn  func(ctx context.Context, pipeline any) (Cursor, error)
	lastPipeline any
	called       bool
}

func (f *fakeCollection) Aggregate(ctx context.Context, pipeline any) (Cursor, error) {
	f.called = true
	f.lastPipeline = pipeline
	if f.AggregateFn != nil {
		return f.AggregateFn(ctx, pipeline)
	}
	return &fakeCursor{}, nil
}

func testWindow() domain.Window {
	loc := time.FixedZone("UTC-4", -4*60*60)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	return domain.NewWindow(day, day.AddDate(0, 0, 9), loc)
}

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestReminderRepository_FetchReminders_Success(t *testing.T) {
	cur := &fakeCursor{
		docs: []bson.M{
			{"user_id": "5491100000001", "date_time": "2024-03-02", "sentAt": "2024-03-03", "status": "sent"},
			{"user_id": "5491100000002", "date_time": "2024-03-04", "sentAt": nil, "status": "not_sent"},
		},
	}
	coll := &fakeCollection{
		AggregateFn: func(ctx context.Context, pipeline any) (Cursor, error) {
			return cur, nil
		},
	}

	repo := NewReminderRepository(coll)

	rows, err := repo.FetchReminders(context.Background(), testWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !coll.called {
		t.Fatalf("expected Aggregate to be called")
	}
	if !cur.closed {
		t.Fatalf("expected cursor to be closed")
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.UserID != "5491100000001" || first.CreatedDate != "2024-03-02" || first.SentDate != "2024-03-03" || !first.IsSent() {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if rows[1].SentDate != "" {
		t.Fatalf("expected empty sent date for null sentAt, got %q", rows[1].SentDate)
	}
}

// ------------------------------------------------------------
// PIPELINE SHAPE
// ------------------------------------------------------------

func TestReminderRepository_Pipeline(t *testing.T) {
	coll := &fakeCollection{}
	repo := NewReminderRepository(coll)

	if _, err := repo.FetchReminders(context.Background(), testWindow()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pipeline, ok := coll.lastPipeline.(mongo.Pipeline)
	if !ok {
		t.Fatalf("expected mongo.Pipeline, got %T", coll.lastPipeline)
	}
	if len(pipeline) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(pipeline))
	}
	if pipeline[0][0].Key != "$match" || pipeline[1][0].Key != "$project" {
		t.Fatalf("unexpected stages: %s, %s", pipeline[0][0].Key, pipeline[1][0].Key)
	}

	match := pipeline[0][0].Value.(bson.D)
	bounds := match[0].Value.(bson.D)
	if bounds[0].Key != "$gte" || bounds[0].Value != "2024-03-01" {
		t.Fatalf("unexpected lower bound: %v", bounds[0])
	}
	if bounds[1].Key != "$lt" || bounds[1].Value != "2024-03-11" {
		t.Fatalf("unexpected upper bound: %v", bounds[1])
	}

	project := pipeline[1][0].Value.(bson.D)
	if project[0].Key != "_id" || project[0].Value != 0 {
		t.Fatalf("expected _id to be dropped, got %v", project[0])
	}
}

func TestReminderRepository_Pipeline_SentAtDateUsesWindowZone(t *testing.T) {
	pipeline := reminderPipeline(testWindow())
	project := pipeline[1][0].Value.(bson.D)

	var sentAt bson.D
	for _, e := range project {
		if e.Key == "sentAt" {
			sentAt = e.Value.(bson.D)
		}
	}
	if sentAt == nil || sentAt[0].Key != "$switch" {
		t.Fatalf("expected sentAt to be a $switch, got %v", sentAt)
	}

	sw := sentAt[0].Value.(bson.D)
	branches := sw[0].Value.(bson.A)
	if len(branches) != 2 {
		t.Fatalf("expected null and date branches, got %d", len(branches))
	}

	dateBranch := branches[1].(bson.D)
	cond := dateBranch[0].Value.(bson.D)[0].Value.(bson.A)
	if cond[1] != "date" {
		t.Fatalf("expected second branch to match BSON dates, got %v", cond)
	}

	then := dateBranch[1].Value.(bson.D)
	if then[0].Key != "$dateToString" {
		t.Fatalf("expected $dateToString for dates, got %s", then[0].Key)
	}
	opts := map[string]any{}
	for _, e := range then[0].Value.(bson.D) {
		opts[e.Key] = e.Value
	}
	if opts["format"] != "%Y-%m-%d" || opts["date"] != "$sentAt" {
		t.Fatalf("unexpected $dateToString options: %v", opts)
	}
	if opts["timezone"] != "-04:00" {
		t.Fatalf("expected sentAt rendered at -04:00, got %v", opts["timezone"])
	}

	if sw[1].Key != "default" {
		t.Fatalf("expected string fallback as default, got %s", sw[1].Key)
	}
}

// ------------------------------------------------------------
// EMPTY
// ------------------------------------------------------------

func TestReminderRepository_FetchReminders_Empty(t *testing.T) {
	repo := NewReminderRepository(&fakeCollection{})

	rows, err := repo.FetchReminders(context.Background(), testWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows == nil {
		t.Fatalf("expected empty non-nil dataset")
	}
	if !rows.Empty() {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestReminderRepository_FetchReminders_AggregateError(t *testing.T) {
	coll := &fakeCollection{
		AggregateFn: func(ctx context.Context, pipeline any) (Cursor, error) {
			return nil, errors.New("server selection timeout")
		},
	}

	rows, err := NewReminderRepository(coll).FetchReminders(context.Background(), testWindow())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if rows != nil {
		t.Fatalf("expected nil rows on error")
	}
}

func TestReminderRepository_FetchReminders_CursorError(t *testing.T) {
	cur := &fakeCursor{
		docs: []bson.M{{"user_id": "u1", "date_time": "2024-03-02", "status": "sent"}},
		err:  errors.New("cursor killed"),
	}
	coll := &fakeCollection{
		AggregateFn: func(ctx context.Context, pipeline any) (Cursor, error) {
			return cur, nil
		},
	}

	rows, err := NewReminderRepository(coll).FetchReminders(context.Background(), testWindow())
	if err == nil || err.Error() != "cursor killed" {
		t.Fatalf("expected cursor error, got %v", err)
	}
	if rows != nil {
		t.Fatalf("expected no partial rows")
	}
}
