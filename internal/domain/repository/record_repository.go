package repository

import (
	"context"

	"medical-appointment-api/internal/domain/entity"
)

type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	FindByUserEmail(ctx context.Context, userEmail string) ([]entity.Record, error)
}
