package mongodb

import (
	"context"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const auditLogSequence = "audit_logs"

type auditLogRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewAuditLogRepository(db *mongo.Database) repository.AuditLogRepository {
	return &auditLogRepository{
		coll:     db.Collection(auditLogsCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	log.ID = id
	log.CreatedAt = time.Now().UTC()

	_, err = r.coll.InsertOne(ctx, auditLogDocument{
		ID:        log.ID,
		UserEmail: log.UserEmail,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	})
	return err
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	return r.find(ctx, bson.D{}, 0)
}

func (r *auditLogRepository) FindByUserEmail(ctx context.Context, userEmail string, limit int) ([]entity.AuditLog, error) {
	return r.find(ctx, bson.D{{Key: "userEmail", Value: userEmail}}, limit)
}

func (r *auditLogRepository) find(ctx context.Context, filter bson.D, limit int) ([]entity.AuditLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []auditLogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	logs := make([]entity.AuditLog, len(docs))
	for i, doc := range docs {
		logs[i] = doc.toEntity()
	}
	return logs, nil
}

// nextID hands out increasing ids from the counters collection.
func (r *auditLogRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: auditLogSequence}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
