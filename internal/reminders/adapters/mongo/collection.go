package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val any) error
	Err() error
	Close(ctx context.Context) error
}

type Collection interface {
	Aggregate(ctx context.Context, pipeline any) (Cursor, error)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func NewCollection(coll *mongo.Collection) Collection {
	return &mongoCollection{coll: coll}
}

func (m *mongoCollection) Aggregate(ctx context.Context, pipeline any) (Cursor, error) {
	cur, err := m.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return cur, nil
}
