package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Name         string    `gorm:"not null" json:"name"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type UserUpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
}

type PasswordChangeRequest struct {
	Password string `json:"password" validate:"required"`
}

// UserForm is the create form on the users dashboard.
type UserForm struct {
	Name     string `form:"name" validate:"required"`
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required,min=6"`
}

// UserInfoForm is the general info form on the user detail page.
type UserInfoForm struct {
	Name     string `form:"name" validate:"required"`
	Username string `form:"username" validate:"required"`
}

// PasswordForm is the change password form on the user detail page.
type PasswordForm struct {
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
}
