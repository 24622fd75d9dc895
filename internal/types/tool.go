package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Tool struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category      `gorm:"constraint:OnDelete:SET NULL;foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Tagline     string         `gorm:"column:tagline" json:"tagline"`
	Description string         `gorm:"column:description" json:"description"`
	Website     string         `gorm:"column:website" json:"website"`
	PricingType string         `gorm:"column:pricing_type;not null;default:'free'" json:"pricing_type"`
	Rating      float64        `gorm:"column:rating;not null;default:0" json:"rating"`
	Upvotes     int            `gorm:"column:upvotes;not null;default:0" json:"upvotes"`
	Views       int64          `gorm:"column:views;not null;default:0" json:"views"`
	Status      string         `gorm:"column:status;not null;default:'pending';index" json:"status"`
	Features    datatypes.JSON `gorm:"column:features;type:jsonb" json:"features"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Tool) TableName() string { return "tool" }
