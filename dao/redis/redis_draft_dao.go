package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"meetgrid/db"
	"meetgrid/models/grid"
)

const DRAFT_KEY_PREFIX_V1 = "grid_draft_v1:"
const DRAFT_KEY_FORMAT_V1 = DRAFT_KEY_PREFIX_V1 + "%s"

// ErrCacheMiss is returned when no draft is cached for a participant.
var ErrCacheMiss = errors.New("draft not cached")

// RedisDraftDAO caches in-progress grid selections using Redis.
type RedisDraftDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisDraftDAO initializes a RedisDraftDAO. Drafts expire after ttl.
func NewRedisDraftDAO(client db.RedisClient, ttl time.Duration) *RedisDraftDAO {
	return &RedisDraftDAO{client: client, ttl: ttl}
}

// SaveDraft stores the draft under its user ID, refreshing the expiry.
func (dao *RedisDraftDAO) SaveDraft(ctx context.Context, d grid.Draft) error {
	if d.UserID == "" {
		return fmt.Errorf("[RedisDraftDAO] draft has no user id")
	}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal draft for user %s: %w", d.UserID, err)
	}
	key := fmt.Sprintf(DRAFT_KEY_FORMAT_V1, d.UserID)
	if err := dao.client.Set(ctx, key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set draft in redis: %w", err)
	}
	return nil
}

// GetDraft retrieves the cached draft, or ErrCacheMiss.
func (dao *RedisDraftDAO) GetDraft(ctx context.Context, userID string) (*grid.Draft, error) {
	key := fmt.Sprintf(DRAFT_KEY_FORMAT_V1, userID)
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from redis: %w", err)
	}
	var d grid.Draft
	if err := json.Unmarshal([]byte(str), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft JSON: %w", err)
	}
	return &d, nil
}

// DeleteDraft drops a participant's draft. Deleting a missing draft is not an error.
func (dao *RedisDraftDAO) DeleteDraft(ctx context.Context, userID string) error {
	key := fmt.Sprintf(DRAFT_KEY_FORMAT_V1, userID)
	if err := dao.client.Del(ctx, key); err != nil {
		return fmt.Errorf("failed to delete draft key %s: %w", key, err)
	}
	log.Printf("[RedisDraftDAO] Deleted draft for %s", userID)
	return nil
}

// ListDraftUserIDs returns the user IDs that currently have a draft.
func (dao *RedisDraftDAO) ListDraftUserIDs(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, DRAFT_KEY_PREFIX_V1+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to list draft keys: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, DRAFT_KEY_PREFIX_V1))
	}
	return ids, nil
}
