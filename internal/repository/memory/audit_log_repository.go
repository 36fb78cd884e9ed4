package memory

import (
	"context"
	"sync"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"
)

// Ensure AuditLogRepository implements the interface.
var _ repository.AuditLogRepository = (*AuditLogRepository)(nil)

type AuditLogRepository struct {
	mu   sync.Mutex
	logs []entity.AuditLog
	seq  int64
}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

func (r *AuditLogRepository) Create(_ context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	log.ID = r.seq
	log.CreatedAt = time.Now()
	r.logs = append(r.logs, *log)
	return nil
}

// FindAll returns logs newest first.
func (r *AuditLogRepository) FindAll(_ context.Context) ([]entity.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.AuditLog, 0, len(r.logs))
	for i := len(r.logs) - 1; i >= 0; i-- {
		out = append(out, r.logs[i])
	}
	return out, nil
}

func (r *AuditLogRepository) FindByUserEmail(_ context.Context, userEmail string, limit int) ([]entity.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []entity.AuditLog{}
	for i := len(r.logs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		l := r.logs[i]
		if l.UserEmail != nil && *l.UserEmail == userEmail {
			out = append(out, l)
		}
	}
	return out, nil
}
