package repos

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/toolvault/toolvault-backend/internal/repos/testutil"
	"github.com/toolvault/toolvault-backend/internal/types"
)

func TestToolAlternativeRepo_UniquePair(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	repo := NewToolAlternativeRepo(tx, log)
	a := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "a"})
	b := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "b"})

	if err := repo.Create(ctx, tx, &types.ToolAlternative{ToolID: a.ID, AlternativeID: b.ID}); err != nil {
		t.Fatalf("create edge: %v", err)
	}
	// Savepoint keeps the aborted insert from poisoning the test tx.
	err := tx.Transaction(func(inner *gorm.DB) error {
		return repo.Create(ctx, inner, &types.ToolAlternative{ToolID: a.ID, AlternativeID: b.ID})
	})
	if err == nil {
		t.Fatalf("duplicate (tool, alternative) pair accepted, want unique violation")
	}
	// The reverse direction is a distinct edge.
	if err := repo.Create(ctx, tx, &types.ToolAlternative{ToolID: b.ID, AlternativeID: a.ID}); err != nil {
		t.Fatalf("create reverse edge: %v", err)
	}
}

func TestToolAlternativeRepo_UniqueVoterPerEdge(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	repo := NewToolAlternativeRepo(tx, log)
	a := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "a"})
	b := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "b"})
	user := testutil.SeedUser(t, ctx, tx, "voter@example.com")

	edge := &types.ToolAlternative{ToolID: a.ID, AlternativeID: b.ID}
	if err := repo.Create(ctx, tx, edge); err != nil {
		t.Fatalf("create edge: %v", err)
	}

	if err := repo.CreateVote(ctx, tx, &types.ToolAlternativeVote{ToolAlternativeID: edge.ID, UserID: user.ID}); err != nil {
		t.Fatalf("create vote: %v", err)
	}
	err := tx.Transaction(func(inner *gorm.DB) error {
		return repo.CreateVote(ctx, inner, &types.ToolAlternativeVote{ToolAlternativeID: edge.ID, UserID: user.ID})
	})
	if err == nil {
		t.Fatalf("duplicate voter accepted, want unique violation")
	}

	count, err := repo.CountVotes(ctx, tx, edge.ID)
	if err != nil {
		t.Fatalf("count votes: %v", err)
	}
	if count != 1 {
		t.Fatalf("count=%d, want 1", count)
	}
}

func TestToolRepo_ListApprovedExcluding(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()

	repo := NewToolRepo(tx, log)
	target := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "target"})
	approved := testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "approved"})
	testutil.SeedTool(t, ctx, tx, testutil.ToolSpec{Name: "pending", Status: types.StatusPending})

	pool, err := repo.ListApprovedExcluding(ctx, tx, target.ID)
	if err != nil {
		t.Fatalf("list pool: %v", err)
	}
	if len(pool) != 1 || pool[0].ID != approved.ID {
		t.Fatalf("pool has %d tools, want only the approved candidate", len(pool))
	}
}
