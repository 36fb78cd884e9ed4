package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"medical-appointment-api/internal/converter"
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"
	"medical-appointment-api/internal/service"
	"medical-appointment-api/pkg/apperror"
	"medical-appointment-api/pkg/jwt"
	"medical-appointment-api/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingFields      = apperror.Validation("Required fields are missing")
	ErrEmailAlreadyExists = apperror.Conflict("Email already exists")
	ErrPasswordTooLong    = apperror.Validation("Password must be at most 72 bytes")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so responses cannot be used to probe for accounts.
	ErrInvalidCredentials = apperror.Auth("Invalid credentials")
	ErrInvalidToken       = apperror.Auth("Invalid or expired token")
	ErrTokenRevoked       = apperror.Auth("Token has been revoked")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	tokenRevoker service.TokenRevoker
	auditService service.AuditService
	issueToken   bool
}

// NewAuthUsecase builds the credential service. jwtService may be nil when
// issueToken is false; Authenticate then rejects every token.
func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokenRevoker service.TokenRevoker,
	auditService service.AuditService,
	issueToken bool,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		tokenRevoker: tokenRevoker,
		auditService: auditService,
		issueToken:   issueToken && jwtService != nil,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, ErrMissingFields
	}

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := password.Hash(req.Password)
	if errors.Is(err, password.ErrTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, apperror.Internal(err)
	}

	user := &entity.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	// The unique index settles signups racing past the pre-check.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, apperror.Internal(err)
	}

	u.auditService.Record(ctx, user.Email, entity.AuditActionUserSignup, entity.JSON{"user_id": user.ID.String()})

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, apperror.Internal(err)
	}
	if user == nil {
		password.CheckDummy(req.Password)
		return nil, ErrInvalidCredentials
	}

	if !password.Check(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	result := &dto.LoginResponse{User: converter.UserToResponse(user)}

	if u.issueToken {
		issued, err := u.jwtService.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			u.log.Warnf("Failed to generate access token: %+v", err)
			return nil, apperror.Internal(err)
		}
		result.Token = &dto.TokenResponse{
			AccessToken: issued.Token,
			ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
			ExpiresAt:   issued.ExpiresAt,
		}
	}

	u.auditService.Record(ctx, user.Email, entity.AuditActionUserLogin, entity.JSON{"token_issued": result.Token != nil})

	return result, nil
}

// Logout revokes the presented token. A nil claims value is a no-op.
func (u *authUsecase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return nil
	}

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := u.tokenRevoker.Revoke(ctx, claims.TokenID, expiresAt); err != nil {
		u.log.Warnf("Failed to revoke token %s: %+v", claims.TokenID, err)
		return apperror.Internal(err)
	}

	u.auditService.Record(ctx, claims.Email, entity.AuditActionUserLogout, entity.JSON{"token_id": claims.TokenID})
	return nil
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	if u.jwtService == nil || token == "" {
		return nil, ErrInvalidToken
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperror.Wrap(ErrInvalidToken, err)
	}

	revoked, err := u.tokenRevoker.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check token revocation: %+v", err)
		return nil, apperror.Internal(err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}
