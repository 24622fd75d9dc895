package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AIModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string         `gorm:"column:name;not null" json:"name"`
	Provider  string         `gorm:"column:provider" json:"provider"`
	ModelType string         `gorm:"column:model_type" json:"model_type"`
	Rating    float64        `gorm:"column:rating;not null;default:0" json:"rating"`
	Upvotes   int            `gorm:"column:upvotes;not null;default:0" json:"upvotes"`
	Views     int64          `gorm:"column:views;not null;default:0" json:"views"`
	Status    string         `gorm:"column:status;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AIModel) TableName() string { return "ai_model" }
