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

// BookmarkResult reflects the state after a toggle, not before.
type BookmarkResult struct {
	Bookmarked bool `json:"bookmarked"`
}

// VoteResult carries the caller's resulting vote state plus ledger-derived
// aggregate counts for the item.
type VoteResult struct {
	UserVote  *types.VoteDirection `json:"user_vote"`
	Upvotes   int64                `json:"upvotes"`
	Downvotes int64                `json:"downvotes"`
}

type InteractionService interface {
	ToggleBookmark(ctx context.Context, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID) (*BookmarkResult, error)
	Vote(ctx context.Context, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID, direction types.VoteDirection) (*VoteResult, error)
	UserVote(ctx context.Context, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID) (*VoteResult, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID, itemType *types.ItemType) ([]*types.Interaction, error)
}

type interactionService struct {
	db              *gorm.DB
	log             *logger.Logger
	interactionRepo repos.InteractionRepo
	contentRepo     repos.ContentRepo
}

func NewInteractionService(db *gorm.DB, log *logger.Logger, interactionRepo repos.InteractionRepo, contentRepo repos.ContentRepo) InteractionService {
	serviceLog := log.With("service", "InteractionService")
	return &interactionService{
		db:              db,
		log:             serviceLog,
		interactionRepo: interactionRepo,
		contentRepo:     contentRepo,
	}
}

func (is *interactionService) ToggleBookmark(ctx context.Context, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID) (*BookmarkResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", apperr.ErrInvalidOperation)
	}
	if !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", apperr.ErrInvalidOperation, itemType)
	}

	var result BookmarkResult
	err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := is.contentRepo.Exists(ctx, tx, itemType, itemID)
		if err != nil {
			return fmt.Errorf("check item exists: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: %s %s", apperr.ErrNotFound, itemType, itemID)
		}

		record, err := is.interactionRepo.Get(ctx, tx, userID, itemType, itemID, types.KindBookmark)
		if err != nil {
			return fmt.Errorf("fetch bookmark: %w", err)
		}

		if record != nil {
			if err := is.interactionRepo.Delete(ctx, tx, record.ID); err != nil {
				return fmt.Errorf("delete bookmark: %w", err)
			}
			result.Bookmarked = false
			return nil
		}

		if err := is.interactionRepo.Create(ctx, tx, &types.Interaction{
			UserID:   userID,
			ItemType: itemType,
			ItemID:   itemID,
			Kind:     types.KindBookmark,
		}); err != nil {
			return fmt.Errorf("create bookmark: %w", err)
		}
		result.Bookmarked = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Vote runs the three-state vote machine for one (user, item) pair:
// no-vote -> direction inserts, same direction again deletes, opposite
// direction updates the row in place. Counts are recounted from the
// ledger inside the same transaction, then written back onto the
// entity row's denormalized upvote counter.
func (is *interactionService) Vote(ctx context.Context, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID, direction types.VoteDirection) (*VoteResult, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", apperr.ErrInvalidOperation)
	}
	if !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", apperr.ErrInvalidOperation, itemType)
	}
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: unknown vote direction %q", apperr.ErrInvalidOperation, direction)
	}

	var result VoteResult
	err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := is.contentRepo.Exists(ctx, tx, itemType, itemID)
		if err != nil {
			return fmt.Errorf("check item exists: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: %s %s", apperr.ErrNotFound, itemType, itemID)
		}

		record, err := is.interactionRepo.Get(ctx, tx, userID, itemType, itemID, types.KindVote)
		if err != nil {
			return fmt.Errorf("fetch vote: %w", err)
		}

		requested := direction.Value()
		switch {
		case record == nil:
			if err := is.interactionRepo.Create(ctx, tx, &types.Interaction{
				UserID:    userID,
				ItemType:  itemType,
				ItemID:    itemID,
				Kind:      types.KindVote,
				VoteValue: requested,
			}); err != nil {
				return fmt.Errorf("create vote: %w", err)
			}
			result.UserVote = &direction
		case record.VoteValue == requested:
			// Same direction again clears the vote.
			if err := is.interactionRepo.Delete(ctx, tx, record.ID); err != nil {
				return fmt.Errorf("delete vote: %w", err)
			}
			result.UserVote = nil
		default:
			if err := is.interactionRepo.UpdateVoteValue(ctx, tx, record.ID, requested); err != nil {
				return fmt.Errorf("flip vote: %w", err)
			}
			result.UserVote = &direction
		}

		upvotes, downvotes, err := is.interactionRepo.CountVotes(ctx, tx, itemType, itemID)
		if err != nil {
			return fmt.Errorf("count votes: %w", err)
		}
		result.Upvotes = upvotes
		result.Downvotes = downvotes

		if err := is.contentRepo.SetUpvotes(ctx, tx, itemType, itemID, int(upvotes)); err != nil {
			return fmt.Errorf("write back upvotes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (is *interactionService) UserVote(ctx context.Context, userID uuid.UUID, itemType types.ItemType, itemID uuid.UUID) (*VoteResult, error) {
	if !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", apperr.ErrInvalidOperation, itemType)
	}

	record, err := is.interactionRepo.Get(ctx, nil, userID, itemType, itemID, types.KindVote)
	if err != nil {
		return nil, fmt.Errorf("fetch vote: %w", err)
	}
	upvotes, downvotes, err := is.interactionRepo.CountVotes(ctx, nil, itemType, itemID)
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}

	result := &VoteResult{Upvotes: upvotes, Downvotes: downvotes}
	if record != nil {
		direction := types.VoteUp
		if record.VoteValue < 0 {
			direction = types.VoteDown
		}
		result.UserVote = &direction
	}
	return result, nil
}

func (is *interactionService) ListBookmarks(ctx context.Context, userID uuid.UUID, itemType *types.ItemType) ([]*types.Interaction, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user id", apperr.ErrInvalidOperation)
	}
	if itemType != nil && !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", apperr.ErrInvalidOperation, *itemType)
	}
	return is.interactionRepo.ListByUserAndKind(ctx, nil, userID, types.KindBookmark, itemType)
}
