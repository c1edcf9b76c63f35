package mongo

import (
	"context"

	"reminder-metrics-service/internal/reminders/core/domain"
	"reminder-metrics-service/internal/reminders/core/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// reminderDocument is the projected shape, not the stored one.
type reminderDocument struct {
	UserID   string  `bson:"user_id"`
	DateTime string  `bson:"date_time"`
	SentAt   *string `bson:"sentAt"`
	Status   string  `bson:"status"`
}

type ReminderRepository struct {
	coll Collection
}

func NewReminderRepository(coll Collection) *ReminderRepository {
	return &ReminderRepository{coll: coll}
}

var _ ports.ReminderSourcePort = (*ReminderRepository)(nil)

func (r *ReminderRepository) FetchReminders(ctx context.Context, w domain.Window) (domain.Dataset, error) {
	cur, err := r.coll.Aggregate(ctx, reminderPipeline(w))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := domain.Dataset{}
	for cur.Next(ctx) {
		var doc reminderDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}

		row := domain.Reminder{
			UserID:      doc.UserID,
			CreatedDate: doc.DateTime,
			Status:      domain.Status(doc.Status),
		}
		if doc.SentAt != nil {
			row.SentDate = *doc.SentAt
		}
		rows = append(rows, row)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}

// reminderPipeline matches on the stored date_time string and projects the
// date-only prefixes. date_time is written in the source zone, so comparing
// it against bare-date bounds orders like time.
func reminderPipeline(w domain.Window) mongo.Pipeline {
	match := bson.D{{Key: "date_time", Value: bson.D{
		{Key: "$gte", Value: w.LowerBound()},
		{Key: "$lt", Value: w.UpperBound()},
	}}}

	// $substr on a missing field yields "", so sentAt is checked for null first.
	// Dates are rendered in the window's zone; $toString would render UTC.
	sentAt := bson.D{{Key: "$switch", Value: bson.D{
		{Key: "branches", Value: bson.A{
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{
					bson.D{{Key: "$ifNull", Value: bson.A{"$sentAt", nil}}},
					nil,
				}}}},
				{Key: "then", Value: nil},
			},
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{
					bson.D{{Key: "$type", Value: "$sentAt"}},
					"date",
				}}}},
				{Key: "then", Value: bson.D{{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m-%d"},
					{Key: "date", Value: "$sentAt"},
					{Key: "timezone", Value: w.Offset()},
				}}}},
			},
		}},
		{Key: "default", Value: bson.D{{Key: "$substrCP", Value: bson.A{
			bson.D{{Key: "$toString", Value: "$sentAt"}}, 0, 10,
		}}}},
	}}}

	project := bson.D{
		{Key: "_id", Value: 0},
		{Key: "user_id", Value: bson.D{{Key: "$toString", Value: "$user_id"}}},
		{Key: "date_time", Value: bson.D{{Key: "$substrCP", Value: bson.A{"$date_time", 0, 10}}}},
		{Key: "sentAt", Value: sentAt},
		{Key: "status", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$status", string(domain.StatusNotSent)}}}},
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: project}},
	}
}
