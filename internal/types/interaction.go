package types

import (
	"time"

	"github.com/google/uuid"
)

// Interaction holds the current bookmark/vote state per (user, item, kind).
// It is a state table, not a history log: toggling an interaction off
// deletes the row, flipping a vote updates it in place.
type Interaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_interaction_user_item,unique" json:"user_id"`
	User      *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ItemType  ItemType        `gorm:"column:item_type;not null;index:idx_interaction_user_item,unique" json:"item_type"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_interaction_user_item,unique" json:"item_id"`
	Kind      InteractionKind `gorm:"column:kind;not null;index:idx_interaction_user_item,unique" json:"kind"`
	VoteValue int             `gorm:"column:vote_value;not null;default:0" json:"vote_value"`
	CreatedAt time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Interaction) TableName() string { return "interaction" }
