package mongodb

import (
	"context"
	"errors"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type appointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) repository.AppointmentRepository {
	return &appointmentRepository{coll: db.Collection(appointmentsCollection)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, newAppointmentDocument(appointment))
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateSlot
	}
	return err
}

func (r *appointmentRepository) FindActiveInWindow(ctx context.Context, doctorName, appointmentTime string, window entity.DayWindow) (*entity.Appointment, error) {
	filter := bson.D{
		{Key: "doctorName", Value: doctorName},
		{Key: "appointmentTime", Value: appointmentTime},
		{Key: "active", Value: true},
		{Key: "appointmentDate", Value: bson.D{
			{Key: "$gte", Value: window.Start},
			{Key: "$lte", Value: window.End},
		}},
	}

	var doc appointmentDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	appointment := doc.toEntity()
	return &appointment, nil
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context, userEmail string, from time.Time) ([]entity.Appointment, error) {
	filter := bson.D{
		{Key: "userEmail", Value: userEmail},
		{Key: "appointmentDate", Value: bson.D{{Key: "$gte", Value: from}}},
	}
	return r.find(ctx, filter, 1)
}

func (r *appointmentRepository) FindHistory(ctx context.Context, userEmail string, before time.Time) ([]entity.Appointment, error) {
	filter := bson.D{
		{Key: "userEmail", Value: userEmail},
		{Key: "appointmentDate", Value: bson.D{{Key: "$lt", Value: before}}},
	}
	return r.find(ctx, filter, -1)
}

// find sorts by appointmentDate then appointmentTime in direction (1 or -1).
func (r *appointmentRepository) find(ctx context.Context, filter bson.D, direction int) ([]entity.Appointment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: direction},
		{Key: "appointmentTime", Value: direction},
	})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []appointmentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	appointments := make([]entity.Appointment, len(docs))
	for i, doc := range docs {
		appointments[i] = doc.toEntity()
	}
	return appointments, nil
}
