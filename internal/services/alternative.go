package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toolvault/toolvault-backend/internal/apperr"
	"github.com/toolvault/toolvault-backend/internal/logger"
	"github.com/toolvault/toolvault-backend/internal/repos"
	"github.com/toolvault/toolvault-backend/internal/types"
)

const (
	// Candidates scoring below this never surface as suggestions.
	suggestionThreshold = 0.3
	defaultSuggestLimit = 5
	previewPageSize     = 10
)

type Suggestion struct {
	ID    uuid.UUID   `json:"id"`
	Score float64     `json:"score"`
	Tool  *types.Tool `json:"tool,omitempty"`
}

type PreviewResult struct {
	Suggestions []Suggestion `json:"suggestions"`
	Remaining   int          `json:"remaining"`
}

type EdgeVoteResult struct {
	Upvotes   int  `json:"upvotes"`
	UserVoted bool `json:"user_voted"`
}

type AlternativeService interface {
	Suggest(ctx context.Context, toolID uuid.UUID, limit int) ([]Suggestion, error)
	Preview(ctx context.Context, toolID uuid.UUID, page int) (*PreviewResult, error)
	Materialize(ctx context.Context, toolID uuid.UUID) (int, error)
	Add(ctx context.Context, toolID, alternativeID uuid.UUID) (*types.ToolAlternative, error)
	Remove(ctx context.Context, toolID, alternativeID uuid.UUID) error
	VoteEdge(ctx context.Context, toolID, alternativeID, userID uuid.UUID) (*EdgeVoteResult, error)
	List(ctx context.Context, toolID uuid.UUID) ([]*types.ToolAlternative, error)
}

type alternativeService struct {
	db       *gorm.DB
	log      *logger.Logger
	toolRepo repos.ToolRepo
	edgeRepo repos.ToolAlternativeRepo
}

func NewAlternativeService(db *gorm.DB, log *logger.Logger, toolRepo repos.ToolRepo, edgeRepo repos.ToolAlternativeRepo) AlternativeService {
	serviceLog := log.With("service", "AlternativeService")
	return &alternativeService{
		db:       db,
		log:      serviceLog,
		toolRepo: toolRepo,
		edgeRepo: edgeRepo,
	}
}

// rank scores every candidate against the target and returns the
// qualifying ones ordered by score. The sort is stable so equal scores
// keep the candidate pool's insertion order.
func (as *alternativeService) rank(target *types.Tool, candidates []*types.Tool) []Suggestion {
	targetInput := ToolSimilarityInput(target)

	ranked := make([]Suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		score := SimilarityScore(targetInput, ToolSimilarityInput(candidate))
		if score < suggestionThreshold {
			continue
		}
		ranked = append(ranked, Suggestion{ID: candidate.ID, Score: score, Tool: candidate})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func (as *alternativeService) rankAll(ctx context.Context, toolID uuid.UUID) ([]Suggestion, error) {
	target, err := as.toolRepo.GetByID(ctx, nil, toolID)
	if err != nil {
		return nil, fmt.Errorf("fetch target tool: %w", err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: tool %s", apperr.ErrNotFound, toolID)
	}

	candidates, err := as.toolRepo.ListApprovedExcluding(ctx, nil, toolID)
	if err != nil {
		return nil, fmt.Errorf("fetch candidate pool: %w", err)
	}
	return as.rank(target, candidates), nil
}

func (as *alternativeService) Suggest(ctx context.Context, toolID uuid.UUID, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	ranked, err := as.rankAll(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Preview is the unbounded variant sliced into pages of 10, with a
// count of how many qualifying candidates remain past the page.
func (as *alternativeService) Preview(ctx context.Context, toolID uuid.UUID, page int) (*PreviewResult, error) {
	if page < 1 {
		page = 1
	}

	ranked, err := as.rankAll(ctx, toolID)
	if err != nil {
		return nil, err
	}

	start := (page - 1) * previewPageSize
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + previewPageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	return &PreviewResult{
		Suggestions: ranked[start:end],
		Remaining:   len(ranked) - end,
	}, nil
}

// Materialize persists the current suggestions as auto-suggested edges.
// Existing pairs are skipped, so re-running it is a no-op for edges
// already on disk.
func (as *alternativeService) Materialize(ctx context.Context, toolID uuid.UUID) (int, error) {
	ranked, err := as.Suggest(ctx, toolID, defaultSuggestLimit)
	if err != nil {
		return 0, err
	}

	created := 0
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, suggestion := range ranked {
			existing, err := as.edgeRepo.GetEdge(ctx, tx, toolID, suggestion.ID)
			if err != nil {
				return fmt.Errorf("check edge: %w", err)
			}
			if existing != nil {
				continue
			}
			if err := as.edgeRepo.Create(ctx, tx, &types.ToolAlternative{
				ToolID:        toolID,
				AlternativeID: suggestion.ID,
				AutoSuggested: true,
			}); err != nil {
				return fmt.Errorf("create edge: %w", err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	as.log.Info("Materialized alternative edges", "tool_id", toolID, "created", created)
	return created, nil
}

func (as *alternativeService) Add(ctx context.Context, toolID, alternativeID uuid.UUID) (*types.ToolAlternative, error) {
	if toolID == alternativeID {
		return nil, fmt.Errorf("%w: a tool cannot be its own alternative", apperr.ErrInvalidOperation)
	}

	for _, id := range []uuid.UUID{toolID, alternativeID} {
		tool, err := as.toolRepo.GetByID(ctx, nil, id)
		if err != nil {
			return nil, fmt.Errorf("fetch tool: %w", err)
		}
		if tool == nil {
			return nil, fmt.Errorf("%w: tool %s", apperr.ErrNotFound, id)
		}
	}

	existing, err := as.edgeRepo.GetEdge(ctx, nil, toolID, alternativeID)
	if err != nil {
		return nil, fmt.Errorf("check edge: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: alternative already exists", apperr.ErrConflict)
	}

	edge := &types.ToolAlternative{
		ToolID:        toolID,
		AlternativeID: alternativeID,
		AutoSuggested: false,
	}
	if err := as.edgeRepo.Create(ctx, nil, edge); err != nil {
		return nil, fmt.Errorf("create edge: %w", err)
	}
	return edge, nil
}

func (as *alternativeService) Remove(ctx context.Context, toolID, alternativeID uuid.UUID) error {
	// Absence is not an error; removal is idempotent.
	return as.edgeRepo.DeletePair(ctx, nil, toolID, alternativeID)
}

// VoteEdge toggles the calling user's endorsement of an edge and
// recounts the edge's upvote counter from the voter rows, all in one
// transaction.
func (as *alternativeService) VoteEdge(ctx context.Context, toolID, alternativeID, userID uuid.UUID) (*EdgeVoteResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", apperr.ErrInvalidOperation)
	}

	var result EdgeVoteResult
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edge, err := as.edgeRepo.GetEdge(ctx, tx, toolID, alternativeID)
		if err != nil {
			return fmt.Errorf("fetch edge: %w", err)
		}
		if edge == nil {
			return fmt.Errorf("%w: alternative edge %s -> %s", apperr.ErrNotFound, toolID, alternativeID)
		}

		vote, err := as.edgeRepo.GetVote(ctx, tx, edge.ID, userID)
		if err != nil {
			return fmt.Errorf("fetch edge vote: %w", err)
		}

		if vote != nil {
			if err := as.edgeRepo.DeleteVote(ctx, tx, vote.ID); err != nil {
				return fmt.Errorf("delete edge vote: %w", err)
			}
			result.UserVoted = false
		} else {
			if err := as.edgeRepo.CreateVote(ctx, tx, &types.ToolAlternativeVote{
				ToolAlternativeID: edge.ID,
				UserID:            userID,
			}); err != nil {
				return fmt.Errorf("create edge vote: %w", err)
			}
			result.UserVoted = true
		}

		count, err := as.edgeRepo.CountVotes(ctx, tx, edge.ID)
		if err != nil {
			return fmt.Errorf("count edge votes: %w", err)
		}
		result.Upvotes = int(count)

		if err := as.edgeRepo.SetUpvotes(ctx, tx, edge.ID, result.Upvotes); err != nil {
			return fmt.Errorf("write back edge upvotes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (as *alternativeService) List(ctx context.Context, toolID uuid.UUID) ([]*types.ToolAlternative, error) {
	tool, err := as.toolRepo.GetByID(ctx, nil, toolID)
	if err != nil {
		return nil, fmt.Errorf("fetch tool: %w", err)
	}
	if tool == nil {
		return nil, fmt.Errorf("%w: tool %s", apperr.ErrNotFound, toolID)
	}
	return as.edgeRepo.ListByToolID(ctx, nil, toolID)
}
