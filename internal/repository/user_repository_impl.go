package repository

import (
	"context"
	"errors"

	"medical-appointment-api/internal/domain/entity"
	domainRepo "medical-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if isDuplicateKeyError(err, "email") {
		return domainRepo.ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// UpdateProfile writes only name and phone. Email and password are never
// part of the update set.
func (r *userRepository) UpdateProfile(ctx context.Context, email string, update entity.ProfileUpdate) (*entity.User, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		if *update.Phone == "" {
			updates["phone"] = nil
		} else {
			updates["phone"] = *update.Phone
		}
	}

	var user entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&entity.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", user.ID).First(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) first(query *gorm.DB) (*entity.User, error) {
	var user entity.User
	err := query.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
