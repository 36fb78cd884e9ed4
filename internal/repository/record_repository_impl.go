package repository

import (
	"context"

	"medical-appointment-api/internal/domain/entity"
	domainRepo "medical-appointment-api/internal/domain/repository"

	"gorm.io/gorm"
)

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) domainRepo.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recordRepository) FindByUserEmail(ctx context.Context, userEmail string) ([]entity.Record, error) {
	records := []entity.Record{}
	err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("uploaded_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
