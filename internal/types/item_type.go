package types

// ItemType discriminates which content collection an interaction targets.
type ItemType string

const (
	ItemTypeTool   ItemType = "tool"
	ItemTypePrompt ItemType = "prompt"
	ItemTypeCourse ItemType = "course"
	ItemTypeJob    ItemType = "job"
	ItemTypePost   ItemType = "post"
	ItemTypeModel  ItemType = "model"
)

func (it ItemType) Valid() bool {
	switch it {
	case ItemTypeTool, ItemTypePrompt, ItemTypeCourse, ItemTypeJob, ItemTypePost, ItemTypeModel:
		return true
	}
	return false
}

// InteractionKind discriminates the two interaction ledgers sharing one table.
type InteractionKind string

const (
	KindBookmark InteractionKind = "bookmark"
	KindVote     InteractionKind = "vote"
)

// VoteDirection is the client-facing vote input.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

func (d VoteDirection) Value() int {
	if d == VoteDown {
		return -1
	}
	return 1
}

// Content row statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Pricing tiers for tools.
const (
	PricingFree     = "free"
	PricingFreemium = "freemium"
	PricingPaid     = "paid"
)
