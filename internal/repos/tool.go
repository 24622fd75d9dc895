package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/toolvault/toolvault-backend/internal/logger"
  "github.com/toolvault/toolvault-backend/internal/types"
)

// ToolFilter is the typed query surface for tool listings. Only
// enumerated fields reach the query builder; anything else is rejected
// at the handler boundary.
type ToolFilter struct {
  CategoryID  *uuid.UUID
  PricingType string
  Status      string
}

type ToolRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, toolID uuid.UUID) (*types.Tool, error)
  List(ctx context.Context, tx *gorm.DB, filter ToolFilter) ([]*types.Tool, error)
  ListApprovedExcluding(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) ([]*types.Tool, error)
  Create(ctx context.Context, tx *gorm.DB, tools []*types.Tool) error
  SetUpvotes(ctx context.Context, tx *gorm.DB, toolID uuid.UUID, upvotes int) error
  IncrementViews(ctx context.Context, tx *gorm.DB, toolID uuid.UUID, delta int64) error
}

type toolRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewToolRepo(db *gorm.DB, baseLog *logger.Logger) ToolRepo {
  repoLog := baseLog.With("repo", "ToolRepo")
  return &toolRepo{db: db, log: repoLog}
}

func (tr *toolRepo) GetByID(ctx context.Context, tx *gorm.DB, toolID uuid.UUID) (*types.Tool, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var tool types.Tool
  err := transaction.WithContext(ctx).
    Preload("Category").
    Where("id = ?", toolID).
    First(&tool).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &tool, nil
}

func (tr *toolRepo) List(ctx context.Context, tx *gorm.DB, filter ToolFilter) ([]*types.Tool, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Tool{})
  if filter.CategoryID != nil {
    query = query.Where("category_id = ?", *filter.CategoryID)
  }
  if filter.PricingType != "" {
    query = query.Where("pricing_type = ?", filter.PricingType)
  }
  if filter.Status != "" {
    query = query.Where("status = ?", filter.Status)
  }

  var results []*types.Tool
  if err := query.Order("upvotes DESC, created_at DESC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// ListApprovedExcluding returns the recommender candidate pool. The
// created_at/id ordering keeps the pool deterministic across runs so the
// scorer's stable sort breaks ties the same way every time.
func (tr *toolRepo) ListApprovedExcluding(ctx context.Context, tx *gorm.DB, excludeID uuid.UUID) ([]*types.Tool, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  var results []*types.Tool
  if err := transaction.WithContext(ctx).
    Where("status = ? AND id <> ?", types.StatusApproved, excludeID).
    Order("created_at ASC, id ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (tr *toolRepo) Create(ctx context.Context, tx *gorm.DB, tools []*types.Tool) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  if len(tools) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).Create(&tools).Error
}

func (tr *toolRepo) SetUpvotes(ctx context.Context, tx *gorm.DB, toolID uuid.UUID, upvotes int) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Tool{}).
    Where("id = ?", toolID).
    Update("upvotes", upvotes).Error
}

func (tr *toolRepo) IncrementViews(ctx context.Context, tx *gorm.DB, toolID uuid.UUID, delta int64) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Tool{}).
    Where("id = ?", toolID).
    Update("views", gorm.Expr("views + ?", delta)).Error
}
