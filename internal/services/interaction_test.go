package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toolvault/toolvault-backend/internal/repos"
	"github.com/toolvault/toolvault-backend/internal/repos/testutil"
	"github.com/toolvault/toolvault-backend/internal/types"
)

func newInteractionService(t *testing.T) (InteractionService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	svc := NewInteractionService(tx, log, repos.NewInteractionRepo(tx, log), repos.NewContentRepo(tx, log))
	return svc, tx
}

func TestToggleBookmark_DoubleToggleReturnsToOriginalState(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "bookmark@example.com")
	tool := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "notion"})

	first, err := svc.ToggleBookmark(ctx, user.ID, types.ItemTypeTool, tool.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Bookmarked {
		t.Fatalf("first toggle: bookmarked=false, want true")
	}

	second, err := svc.ToggleBookmark(ctx, user.ID, types.ItemTypeTool, tool.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Bookmarked {
		t.Fatalf("second toggle: bookmarked=true, want false")
	}

	var count int64
	if err := tx.Model(&types.Interaction{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("ledger rows=%d after double toggle, want 0", count)
	}
}

func TestToggleBookmark_MissingTarget(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "missing@example.com")

	_, err := svc.ToggleBookmark(ctx, user.ID, types.ItemTypeTool, uuid.New())
	if err == nil {
		t.Fatalf("expected NotFound for missing target")
	}
}

func TestToggleBookmark_InvalidItemType(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "invalidtype@example.com")

	_, err := svc.ToggleBookmark(ctx, user.ID, types.ItemType("gadget"), uuid.New())
	if err == nil {
		t.Fatalf("expected InvalidOperation for unknown item type")
	}
}

func TestVote_CycleClosure(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "cycle@example.com")
	tool := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "figma"})

	// up, up ends in no-vote with zero counts.
	if _, err := svc.Vote(ctx, user.ID, types.ItemTypeTool, tool.ID, types.VoteUp); err != nil {
		t.Fatalf("vote up: %v", err)
	}
	result, err := svc.Vote(ctx, user.ID, types.ItemTypeTool, tool.ID, types.VoteUp)
	if err != nil {
		t.Fatalf("vote up again: %v", err)
	}
	if result.UserVote != nil || result.Upvotes != 0 || result.Downvotes != 0 {
		t.Fatalf("after up,up got %+v, want no vote and zero counts", result)
	}

	// up, down leaves exactly one downvoted ledger row.
	if _, err := svc.Vote(ctx, user.ID, types.ItemTypeTool, tool.ID, types.VoteUp); err != nil {
		t.Fatalf("vote up: %v", err)
	}
	result, err = svc.Vote(ctx, user.ID, types.ItemTypeTool, tool.ID, types.VoteDown)
	if err != nil {
		t.Fatalf("vote down: %v", err)
	}
	if result.UserVote == nil || *result.UserVote != types.VoteDown {
		t.Fatalf("after up,down user vote=%v, want down", result.UserVote)
	}
	if result.Upvotes != 0 || result.Downvotes != 1 {
		t.Fatalf("after up,down counts=%d/%d, want 0/1", result.Upvotes, result.Downvotes)
	}

	var count int64
	if err := tx.Model(&types.Interaction{}).
		Where("user_id = ? AND item_id = ? AND kind = ?", user.ID, tool.ID, types.KindVote).
		Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("ledger rows=%d, want exactly 1", count)
	}

	// down, down closes the cycle.
	result, err = svc.Vote(ctx, user.ID, types.ItemTypeTool, tool.ID, types.VoteDown)
	if err != nil {
		t.Fatalf("vote down again: %v", err)
	}
	if result.UserVote != nil || result.Downvotes != 0 {
		t.Fatalf("after down,down got %+v, want cleared vote", result)
	}
}

func TestVote_AggregateConsistencyAcrossUsers(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	tool := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "slack"})

	var last *VoteResult
	directions := []types.VoteDirection{types.VoteUp, types.VoteUp, types.VoteDown, types.VoteUp, types.VoteDown}
	for i, direction := range directions {
		user := testutil.SeedUser(t, ctx, tx, fmt.Sprintf("agg%d@example.com", i))
		result, err := svc.Vote(ctx, user.ID, types.ItemTypeTool, tool.ID, direction)
		if err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
		last = result
	}

	if last.Upvotes != 3 || last.Downvotes != 2 {
		t.Fatalf("counts=%d/%d, want 3/2", last.Upvotes, last.Downvotes)
	}

	var rows int64
	if err := tx.Model(&types.Interaction{}).
		Where("item_id = ? AND kind = ?", tool.ID, types.KindVote).
		Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != last.Upvotes+last.Downvotes {
		t.Fatalf("ledger rows=%d, want %d (up+down)", rows, last.Upvotes+last.Downvotes)
	}
}

func TestVote_WritesBackDenormalizedCounter(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "writeback@example.com")
	prompt := testutil.SeedPrompt(t, ctx, tx, "summarize meeting notes")

	if _, err := svc.Vote(ctx, user.ID, types.ItemTypePrompt, prompt.ID, types.VoteUp); err != nil {
		t.Fatalf("vote: %v", err)
	}

	var reloaded types.Prompt
	if err := tx.Where("id = ?", prompt.ID).First(&reloaded).Error; err != nil {
		t.Fatalf("reload prompt: %v", err)
	}
	if reloaded.Upvotes != 1 {
		t.Fatalf("prompt upvotes=%d, want 1", reloaded.Upvotes)
	}
}

func TestVote_InvalidDirection(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "direction@example.com")
	tool := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "linear"})

	_, err := svc.Vote(ctx, user.ID, types.ItemTypeTool, tool.ID, types.VoteDirection("sideways"))
	if err == nil {
		t.Fatalf("expected InvalidOperation for unknown direction")
	}
}

func TestListBookmarks_FiltersByItemType(t *testing.T) {
	svc, tx := newInteractionService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "list@example.com")
	tool := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "obsidian"})
	prompt := testutil.SeedPrompt(t, ctx, tx, "write a changelog")

	if _, err := svc.ToggleBookmark(ctx, user.ID, types.ItemTypeTool, tool.ID); err != nil {
		t.Fatalf("bookmark tool: %v", err)
	}
	if _, err := svc.ToggleBookmark(ctx, user.ID, types.ItemTypePrompt, prompt.ID); err != nil {
		t.Fatalf("bookmark prompt: %v", err)
	}

	all, err := svc.ListBookmarks(ctx, user.ID, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all)=%d, want 2", len(all))
	}

	toolType := types.ItemTypeTool
	onlyTools, err := svc.ListBookmarks(ctx, user.ID, &toolType)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(onlyTools) != 1 || onlyTools[0].ItemID != tool.ID {
		t.Fatalf("tool filter returned %d rows, want the tool bookmark", len(onlyTools))
	}
}
