package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/toolvault/toolvault-backend/internal/logger"
	"github.com/toolvault/toolvault-backend/internal/repos"
	"github.com/toolvault/toolvault-backend/internal/types"
)

const viewKeyPrefix = "views:"

// ViewTracker batches view-count increments through Redis and folds
// them into the entity rows on Flush. Without a Redis client it writes
// straight to the database.
type ViewTracker interface {
	RecordView(ctx context.Context, itemType types.ItemType, itemID uuid.UUID) error
	Flush(ctx context.Context) (int, error)
}

type viewTracker struct {
	log         *logger.Logger
	rdb         *redis.Client
	contentRepo repos.ContentRepo
}

func NewViewTracker(log *logger.Logger, rdb *redis.Client, contentRepo repos.ContentRepo) ViewTracker {
	serviceLog := log.With("service", "ViewTracker")
	return &viewTracker{log: serviceLog, rdb: rdb, contentRepo: contentRepo}
}

func viewKey(itemType types.ItemType, itemID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", viewKeyPrefix, itemType, itemID)
}

func (vt *viewTracker) RecordView(ctx context.Context, itemType types.ItemType, itemID uuid.UUID) error {
	if !itemType.Valid() {
		return nil
	}
	if vt.rdb == nil {
		return vt.contentRepo.IncrementViews(ctx, nil, itemType, itemID, 1)
	}
	return vt.rdb.Incr(ctx, viewKey(itemType, itemID)).Err()
}

// Flush drains every pending counter. GetDel keeps increments arriving
// mid-flush from being lost: they land on a fresh key picked up by the
// next flush.
func (vt *viewTracker) Flush(ctx context.Context) (int, error) {
	if vt.rdb == nil {
		return 0, nil
	}

	flushed := 0
	var cursor uint64
	for {
		keys, next, err := vt.rdb.Scan(ctx, cursor, viewKeyPrefix+"*", 100).Result()
		if err != nil {
			return flushed, fmt.Errorf("scan view keys: %w", err)
		}

		for _, key := range keys {
			raw, err := vt.rdb.GetDel(ctx, key).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				return flushed, fmt.Errorf("drain view key %s: %w", key, err)
			}

			itemType, itemID, ok := parseViewKey(key)
			if !ok {
				vt.log.Warn("Skipping malformed view key", "key", key)
				continue
			}
			delta, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || delta <= 0 {
				continue
			}

			if err := vt.contentRepo.IncrementViews(ctx, nil, itemType, itemID, delta); err != nil {
				return flushed, fmt.Errorf("apply view delta: %w", err)
			}
			flushed++
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}
	return flushed, nil
}

func parseViewKey(key string) (types.ItemType, uuid.UUID, bool) {
	rest := strings.TrimPrefix(key, viewKeyPrefix)
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return "", uuid.Nil, false
	}
	itemType := types.ItemType(parts[0])
	if !itemType.Valid() {
		return "", uuid.Nil, false
	}
	itemID, err := uuid.Parse(parts[1])
	if err != nil {
		return "", uuid.Nil, false
	}
	return itemType, itemID, true
}
