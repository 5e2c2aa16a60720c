package repository

import (
	"context"
	"tableread/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepo handles MongoDB operations for result records
type ResultRepo interface {
	Save(ctx context.Context, record *model.ResultRecord) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.ResultRecord, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("results"),
	}
}

func (r *resultRepo) Save(ctx context.Context, record *model.ResultRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.SessionID}, record, opts)
	return err
}

func (r *resultRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.ResultRecord, error) {
	var record model.ResultRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
