package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/toolvault/toolvault-backend/internal/logger"
  "github.com/toolvault/toolvault-backend/internal/types"
)

// ContentRepo is the polymorphic face of the entity tables. The item
// type tag is the dispatch key into the right table; every content row
// shares the id/upvotes/views/status shape this repo touches.
type ContentRepo interface {
  Exists(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID) (bool, error)
  SetUpvotes(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID, upvotes int) error
  IncrementViews(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID, delta int64) error
}

type contentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
  repoLog := baseLog.With("repo", "ContentRepo")
  return &contentRepo{db: db, log: repoLog}
}

func modelFor(itemType types.ItemType) interface{} {
  switch itemType {
  case types.ItemTypeTool:
    return &types.Tool{}
  case types.ItemTypePrompt:
    return &types.Prompt{}
  case types.ItemTypeCourse:
    return &types.Course{}
  case types.ItemTypeJob:
    return &types.Job{}
  case types.ItemTypePost:
    return &types.Post{}
  case types.ItemTypeModel:
    return &types.AIModel{}
  }
  return nil
}

func (cr *contentRepo) Exists(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  model := modelFor(itemType)
  if model == nil {
    return false, nil
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(model).
    Where("id = ?", itemID).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (cr *contentRepo) SetUpvotes(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID, upvotes int) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  model := modelFor(itemType)
  if model == nil {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(model).
    Where("id = ?", itemID).
    Update("upvotes", upvotes).Error
}

func (cr *contentRepo) IncrementViews(ctx context.Context, tx *gorm.DB, itemType types.ItemType, itemID uuid.UUID, delta int64) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  model := modelFor(itemType)
  if model == nil {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(model).
    Where("id = ?", itemID).
    Update("views", gorm.Expr("views + ?", delta)).Error
}
