package types

import (
	"time"

	"github.com/google/uuid"
)

// ToolAlternative is a directed edge from a tool to a comparable tool,
// created either by the recommender (auto_suggested) or by a curator.
type ToolAlternative struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ToolID        uuid.UUID `gorm:"type:uuid;not null;index:idx_tool_alternative_pair,unique" json:"tool_id"`
	Tool          *Tool     `gorm:"constraint:OnDelete:CASCADE;foreignKey:ToolID;references:ID" json:"tool,omitempty"`
	AlternativeID uuid.UUID `gorm:"type:uuid;not null;index:idx_tool_alternative_pair,unique" json:"alternative_id"`
	Alternative   *Tool     `gorm:"constraint:OnDelete:CASCADE;foreignKey:AlternativeID;references:ID" json:"alternative,omitempty"`
	AutoSuggested bool      `gorm:"column:auto_suggested;not null;default:false" json:"auto_suggested"`
	Upvotes       int       `gorm:"column:upvotes;not null;default:0" json:"upvotes"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ToolAlternative) TableName() string { return "tool_alternative" }

// ToolAlternativeVote records that a user endorsed a specific edge.
// One row per (edge, user); the edge's upvotes counter is recounted
// from these rows on every toggle.
type ToolAlternativeVote struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ToolAlternativeID uuid.UUID        `gorm:"type:uuid;not null;index:idx_tool_alternative_voter,unique" json:"tool_alternative_id"`
	ToolAlternative   *ToolAlternative `gorm:"constraint:OnDelete:CASCADE;foreignKey:ToolAlternativeID;references:ID" json:"tool_alternative,omitempty"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;index:idx_tool_alternative_voter,unique" json:"user_id"`
	CreatedAt         time.Time        `gorm:"not null;default:now()" json:"created_at"`
}

func (ToolAlternativeVote) TableName() string { return "tool_alternative_vote" }
