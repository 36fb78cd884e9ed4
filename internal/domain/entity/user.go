package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by its email.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Phone     *string   `gorm:"type:varchar(32)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// ProfileUpdate holds the only user fields that may change after signup.
// A nil field is left untouched.
type ProfileUpdate struct {
	Name  *string
	Phone *string
}
