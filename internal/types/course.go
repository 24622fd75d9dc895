package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Title      string         `gorm:"column:title;not null" json:"title"`
	Provider   string         `gorm:"column:provider" json:"provider"`
	URL        string         `gorm:"column:url" json:"url"`
	Rating     float64        `gorm:"column:rating;not null;default:0" json:"rating"`
	Upvotes    int            `gorm:"column:upvotes;not null;default:0" json:"upvotes"`
	Views      int64          `gorm:"column:views;not null;default:0" json:"views"`
	Status     string         `gorm:"column:status;not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Course) TableName() string { return "course" }
