package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/toolvault/toolvault-backend/internal/logger"
  "github.com/toolvault/toolvault-backend/internal/types"
)

type ToolAlternativeRepo interface {
  GetEdge(ctx context.Context, tx *gorm.DB, toolID, alternativeID uuid.UUID) (*types.ToolAlternative, error)
  ListByToolID(ctx context.Context, tx *gorm.DB, toolID uuid.UUID) ([]*types.ToolAlternative, error)
  Create(ctx context.Context, tx *gorm.DB, edge *types.ToolAlternative) error
  DeletePair(ctx context.Context, tx *gorm.DB, toolID, alternativeID uuid.UUID) error
  SetUpvotes(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID, upvotes int) error

  GetVote(ctx context.Context, tx *gorm.DB, edgeID, userID uuid.UUID) (*types.ToolAlternativeVote, error)
  CreateVote(ctx context.Context, tx *gorm.DB, vote *types.ToolAlternativeVote) error
  DeleteVote(ctx context.Context, tx *gorm.DB, voteID uuid.UUID) error
  CountVotes(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) (int64, error)
}

type toolAlternativeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewToolAlternativeRepo(db *gorm.DB, baseLog *logger.Logger) ToolAlternativeRepo {
  repoLog := baseLog.With("repo", "ToolAlternativeRepo")
  return &toolAlternativeRepo{db: db, log: repoLog}
}

func (tr *toolAlternativeRepo) GetEdge(ctx context.Context, tx *gorm.DB, toolID, alternativeID uuid.UUID) (*types.ToolAlternative, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var edge types.ToolAlternative
  err := transaction.WithContext(ctx).
    Where("tool_id = ? AND alternative_id = ?", toolID, alternativeID).
    First(&edge).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &edge, nil
}

func (tr *toolAlternativeRepo) ListByToolID(ctx context.Context, tx *gorm.DB, toolID uuid.UUID) ([]*types.ToolAlternative, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.ToolAlternative
  if err := transaction.WithContext(ctx).
    Preload("Alternative").
    Where("tool_id = ?", toolID).
    Order("upvotes DESC, created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (tr *toolAlternativeRepo) Create(ctx context.Context, tx *gorm.DB, edge *types.ToolAlternative) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).Create(edge).Error
}

func (tr *toolAlternativeRepo) DeletePair(ctx context.Context, tx *gorm.DB, toolID, alternativeID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).
    Where("tool_id = ? AND alternative_id = ?", toolID, alternativeID).
    Delete(&types.ToolAlternative{}).Error
}

func (tr *toolAlternativeRepo) SetUpvotes(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID, upvotes int) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.ToolAlternative{}).
    Where("id = ?", edgeID).
    Update("upvotes", upvotes).Error
}

func (tr *toolAlternativeRepo) GetVote(ctx context.Context, tx *gorm.DB, edgeID, userID uuid.UUID) (*types.ToolAlternativeVote, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var vote types.ToolAlternativeVote
  err := transaction.WithContext(ctx).
    Where("tool_alternative_id = ? AND user_id = ?", edgeID, userID).
    First(&vote).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &vote, nil
}

func (tr *toolAlternativeRepo) CreateVote(ctx context.Context, tx *gorm.DB, vote *types.ToolAlternativeVote) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).Create(vote).Error
}

func (tr *toolAlternativeRepo) DeleteVote(ctx context.Context, tx *gorm.DB, voteID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).
    Where("id = ?", voteID).
    Delete(&types.ToolAlternativeVote{}).Error
}

func (tr *toolAlternativeRepo) CountVotes(ctx context.Context, tx *gorm.DB, edgeID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.ToolAlternativeVote{}).
    Where("tool_alternative_id = ?", edgeID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
