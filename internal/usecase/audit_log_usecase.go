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

const activityLimit = 50

// AuditLogUsecase exposes a user's own audit trail.
type AuditLogUsecase interface {
	ListActivity(ctx context.Context, userEmail string) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListActivity(ctx context.Context, userEmail string) (*dto.AuditLogListResponse, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, ErrUserEmailRequired
	}

	logs, err := u.auditLogRepo.FindByUserEmail(ctx, userEmail, activityLimit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs for %s: %+v", userEmail, err)
		return nil, apperror.Internal(err)
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}
