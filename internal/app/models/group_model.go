package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type GroupCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type GroupUpdateRequest struct {
	Name *string `json:"name,omitempty"`
}

// GroupForm is the create and general info form on the groups dashboard.
type GroupForm struct {
	Name string `form:"name" validate:"required"`
}

// Permission is an entry of the permissions list on the group page.
// Permissions are shown but not enforced.
type Permission struct {
	Label       string
	Value       string
	Description string
}

var GroupPermissions = []Permission{
	{
		Label:       "read:user",
		Value:       "read:user",
		Description: "You can enable or disable notifications at any time.",
	},
}
