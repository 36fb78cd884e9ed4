package usecase

import (
	"context"
	"strings"

	"medical-appointment-api/internal/converter"
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"
	"medical-appointment-api/internal/service"
	"medical-appointment-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmailRequired = apperror.Validation("Email is required")
	ErrUserNotFound  = apperror.NotFound("User not found")
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, email string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type profileUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewProfileUsecase(log *logrus.Logger, userRepo repository.UserRepository, auditService service.AuditService) ProfileUsecase {
	return &profileUsecase{
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, email string) (*dto.UserResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find profile %s: %+v", email, err)
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// UpdateProfile changes name and phone only. A blank name is ignored; a
// blank phone clears the stored number.
func (u *profileUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	var update entity.ProfileUpdate
	changed := []string{}
	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			update.Name = &name
			changed = append(changed, "name")
		}
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		update.Phone = &phone
		changed = append(changed, "phone")
	}

	user, err := u.userRepo.UpdateProfile(ctx, email, update)
	if err != nil {
		u.log.Warnf("Failed to update profile %s: %+v", email, err)
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if len(changed) > 0 {
		u.auditService.Record(ctx, email, entity.AuditActionProfileUpdate, entity.JSON{"fields": changed})
	}
	return converter.UserToResponse(user), nil
}
