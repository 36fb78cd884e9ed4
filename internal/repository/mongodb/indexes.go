package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Index names match the postgres schema.
const (
	userEmailIndex = "idx_users_email"
	slotIndex      = "idx_appointments_slot"
)

// EnsureIndexes creates the unique indexes the repositories rely on. It is
// safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName(userEmailIndex).SetUnique(true),
			},
		},
		appointmentsCollection: {
			{
				Keys: bson.D{
					{Key: "doctorName", Value: 1},
					{Key: "slotDay", Value: 1},
					{Key: "appointmentTime", Value: 1},
				},
				Options: options.Index().
					SetName(slotIndex).
					SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "active", Value: true}}),
			},
			{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "appointmentDate", Value: 1}}},
		},
		recordsCollection: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "uploadedAt", Value: -1}}},
		},
		auditLogsCollection: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
