package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/toolvault/toolvault-backend/internal/logger"
  "github.com/toolvault/toolvault-backend/internal/types"
)

type InteractionRepo interface {
  Get(ctx context.Context, tx *gorm.DB, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID, kind types.InteractionKind) (*types.Interaction, error)
  Create(ctx context.Context, tx *gorm.DB, record *types.Interaction) error
  UpdateVoteValue(ctx context.Context, tx *gorm.DB, id uuid.UUID, voteValue int) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  CountVotes(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID) (int64, int64, error)
  ListByUserAndKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind types.InteractionKind, itemType *types.ItemType) ([]*types.Interaction, error)
}

type interactionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewInteractionRepo(db *gorm.DB, baseLog *logger.Logger) InteractionRepo {
  repoLog := baseLog.With("repo", "InteractionRepo")
  return &interactionRepo{db: db, log: repoLog}
}

func (ir *interactionRepo) Get(ctx context.Context, tx *gorm.DB, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID, kind types.InteractionKind) (*types.Interaction, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var record types.Interaction
  err := transaction.WithContext(ctx).
    Where("user_id = ? AND item_type = ? AND item_id = ? AND kind = ?", userID, itemType, itemID, kind).
    First(&record).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &record, nil
}

func (ir *interactionRepo) Create(ctx context.Context, tx *gorm.DB, record *types.Interaction) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }
  return transaction.WithContext(ctx).Create(record).Error
}

func (ir *interactionRepo) UpdateVoteValue(ctx context.Context, tx *gorm.DB, id uuid.UUID, voteValue int) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Interaction{}).
    Where("id = ?", id).
    Update("vote_value", voteValue).Error
}

func (ir *interactionRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }
  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Interaction{}).Error
}

func (ir *interactionRepo) CountVotes(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID) (int64, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  var upvotes int64
  if err := transaction.WithContext(ctx).
    Model(&types.Interaction{}).
    Where("item_type = ? AND item_id = ? AND kind = ? AND vote_value = ?", itemType, itemID, types.KindVote, 1).
    Count(&upvotes).Error; err != nil {
    return 0, 0, err
  }

  var downvotes int64
  if err := transaction.WithContext(ctx).
    Model(&types.Interaction{}).
    Where("item_type = ? AND item_id = ? AND kind = ? AND vote_value = ?", itemType, itemID, types.KindVote, -1).
    Count(&downvotes).Error; err != nil {
    return 0, 0, err
  }

  return upvotes, downvotes, nil
}

func (ir *interactionRepo) ListByUserAndKind(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind types.InteractionKind, itemType *types.ItemType) ([]*types.Interaction, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }

  query := transaction.WithContext(ctx).
    Where("user_id = ? AND kind = ?", userID, kind)
  if itemType != nil {
    query = query.Where("item_type = ?", *itemType)
  }

  var results []*types.Interaction
  if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
