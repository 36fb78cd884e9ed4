package repository

import (
	"context"

	"medical-appointment-api/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context) ([]entity.AuditLog, error)
	// FindByUserEmail returns at most limit entries, newest first. A
	// non-positive limit means no limit.
	FindByUserEmail(ctx context.Context, userEmail string, limit int) ([]entity.AuditLog, error)
}
