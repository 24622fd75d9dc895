package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toolvault/toolvault-backend/internal/apperr"
	"github.com/toolvault/toolvault-backend/internal/logger"
	"github.com/toolvault/toolvault-backend/internal/repos"
	"github.com/toolvault/toolvault-backend/internal/types"
)

type ToolService interface {
	GetTool(ctx context.Context, toolID uuid.UUID) (*types.Tool, error)
	ListTools(ctx context.Context, filter repos.ToolFilter) ([]*types.Tool, error)
}

type toolService struct {
	db       *gorm.DB
	log      *logger.Logger
	toolRepo repos.ToolRepo
	views    ViewTracker
}

func NewToolService(db *gorm.DB, log *logger.Logger, toolRepo repos.ToolRepo, views ViewTracker) ToolService {
	serviceLog := log.With("service", "ToolService")
	return &toolService{db: db, log: serviceLog, toolRepo: toolRepo, views: views}
}

func (ts *toolService) GetTool(ctx context.Context, toolID uuid.UUID) (*types.Tool, error) {
	tool, err := ts.toolRepo.GetByID(ctx, nil, toolID)
	if err != nil {
		return nil, fmt.Errorf("fetch tool: %w", err)
	}
	if tool == nil {
		return nil, fmt.Errorf("%w: tool %s", apperr.ErrNotFound, toolID)
	}

	if ts.views != nil {
		if err := ts.views.RecordView(ctx, types.ItemTypeTool, toolID); err != nil {
			// A lost view count never fails the read.
			ts.log.Warn("Failed to record view", "tool_id", toolID, "error", err)
		}
	}
	return tool, nil
}

func (ts *toolService) ListTools(ctx context.Context, filter repos.ToolFilter) ([]*types.Tool, error) {
	if filter.Status == "" {
		filter.Status = types.StatusApproved
	}
	return ts.toolRepo.List(ctx, nil, filter)
}
