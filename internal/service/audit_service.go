package service

import (
	"context"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService writes the audit trail. A failed write is logged and never
// fails the operation being audited.
type AuditService interface {
	Record(ctx context.Context, userEmail string, action string, metadata entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, userEmail string, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		Action:   action,
		Metadata: metadata,
	}
	if userEmail != "" {
		auditLog.UserEmail = &userEmail
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}
