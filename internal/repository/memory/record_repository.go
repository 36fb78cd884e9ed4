package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
)

// Ensure RecordRepository implements the interface.
var _ repository.RecordRepository = (*RecordRepository)(nil)

type RecordRepository struct {
	mu      sync.RWMutex
	records []entity.Record
}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{}
}

func (r *RecordRepository) Create(_ context.Context, record *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now()
	if record.UploadedAt.IsZero() {
		record.UploadedAt = now
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	r.records = append(r.records, *record)
	return nil
}

func (r *RecordRepository) FindByUserEmail(_ context.Context, userEmail string) ([]entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.Record{}
	for _, rec := range r.records {
		if rec.UserEmail == userEmail {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}
