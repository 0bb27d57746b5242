// File: /services/follow_cache.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ryanneekidev/rline-backend/models"
)

// FollowCacheService keeps follow counts in Redis so the hot follow-counts
// endpoint does not hit the primary store on every read. A nil client
// disables caching entirely.
type FollowCacheService struct {
	cache *redis.Client
	ttl   time.Duration
}

func NewFollowCacheService(cache *redis.Client, ttl time.Duration) *FollowCacheService {
	return &FollowCacheService{cache: cache, ttl: ttl}
}

func (s *FollowCacheService) key(userID string) string {
	return fmt.Sprintf("followcounts:%s", userID)
}

// GetCounts returns the cached counts for a user, or (nil, false) on a miss.
func (s *FollowCacheService) GetCounts(ctx context.Context, userID string) (*models.FollowCounts, bool) {
	if s == nil || s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		return nil, false
	}

	var counts models.FollowCounts
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, false
	}
	return &counts, true
}

// SetCounts stores counts for a user. Cache write failures are ignored; the
// store remains the source of truth.
func (s *FollowCacheService) SetCounts(ctx context.Context, userID string, counts *models.FollowCounts) {
	if s == nil || s.cache == nil {
		return
	}

	payload, err := json.Marshal(counts)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, s.key(userID), payload, s.ttl).Err()
}

// Invalidate drops the cached counts for the given users. Called after
// follow/unfollow mutations, which change counts on both sides of the edge.
func (s *FollowCacheService) Invalidate(ctx context.Context, userIDs ...string) {
	if s == nil || s.cache == nil || len(userIDs) == 0 {
		return
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = s.key(id)
	}
	_ = s.cache.Del(ctx, keys...).Err()
}
