package usecase

import (
	"context"
	"strings"

	"medical-appointment-api/internal/converter"
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/repository"
	"medical-appointment-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

type RecordUsecase interface {
	ListRecords(ctx context.Context, userEmail string) ([]dto.RecordResponse, error)
}

type recordUsecase struct {
	log        *logrus.Logger
	recordRepo repository.RecordRepository
}

func NewRecordUsecase(log *logrus.Logger, recordRepo repository.RecordRepository) RecordUsecase {
	return &recordUsecase{
		log:        log,
		recordRepo: recordRepo,
	}
}

func (u *recordUsecase) ListRecords(ctx context.Context, userEmail string) ([]dto.RecordResponse, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, ErrUserEmailRequired
	}

	records, err := u.recordRepo.FindByUserEmail(ctx, userEmail)
	if err != nil {
		u.log.Warnf("Failed to find records for %s: %+v", userEmail, err)
		return nil, apperror.Internal(err)
	}
	return converter.RecordsToResponses(records), nil
}
