package types

import (
  "time"
  "github.com/google/uuid"
)

type Category struct {
  ID                uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  Name              string          `gorm:"not null;column:name" json:"name"`
  Slug              string          `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
  CreatedAt         time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt         time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Category) TableName() string {
  return "category"
}
