package mongodb

import (
	"context"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type recordRepository struct {
	coll *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) repository.RecordRepository {
	return &recordRepository{coll: db.Collection(recordsCollection)}
}

func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now().UTC()
	if record.UploadedAt.IsZero() {
		record.UploadedAt = now
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, newRecordDocument(record))
	return err
}

func (r *recordRepository) FindByUserEmail(ctx context.Context, userEmail string) ([]entity.Record, error) {
	cursor, err := r.coll.Find(ctx,
		bson.D{{Key: "userEmail", Value: userEmail}},
		options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	var docs []recordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]entity.Record, len(docs))
	for i, doc := range docs {
		records[i] = doc.toEntity()
	}
	return records, nil
}
