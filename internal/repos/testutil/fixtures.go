package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toolvault/toolvault-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: "user",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Category {
	tb.Helper()
	c := &types.Category{
		ID:   uuid.New(),
		Name: name,
		Slug: fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

type ToolSpec struct {
	CategoryID  *uuid.UUID
	Name        string
	Description string
	PricingType string
	Rating      float64
	Status      string
}

func SeedTool(tb testing.TB, ctx context.Context, tx *gorm.DB, spec ToolSpec) *types.Tool {
	tb.Helper()
	if spec.Name == "" {
		spec.Name = "tool"
	}
	if spec.PricingType == "" {
		spec.PricingType = types.PricingFree
	}
	if spec.Status == "" {
		spec.Status = types.StatusApproved
	}
	t := &types.Tool{
		ID:          uuid.New(),
		CategoryID:  spec.CategoryID,
		Name:        spec.Name,
		Description: spec.Description,
		PricingType: spec.PricingType,
		Rating:      spec.Rating,
		Status:      spec.Status,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tool: %v", err)
	}
	return t
}

func SeedPrompt(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.Prompt {
	tb.Helper()
	p := &types.Prompt{
		ID:     uuid.New(),
		Title:  title,
		Status: types.StatusApproved,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed prompt: %v", err)
	}
	return p
}
