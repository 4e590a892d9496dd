package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openmfi/loancore/internal/domain"
)

const ruleSnapshotKey = "rules:snapshot"

// RuleSnapshotCache implements usecase.RuleSnapshotCache using Redis. The
// whole active rule table is stored as one JSON value so every reader sees
// a single consistent snapshot.
type RuleSnapshotCache struct {
	client *redis.Client
}

// NewRuleSnapshotCache creates a new RuleSnapshotCache.
func NewRuleSnapshotCache(client *redis.Client) *RuleSnapshotCache {
	return &RuleSnapshotCache{client: client}
}

// Get retrieves the cached rule snapshot. The second return value reports
// whether a snapshot was present.
func (c *RuleSnapshotCache) Get(ctx context.Context) ([]*domain.AccountingRule, bool, error) {
	data, err := c.client.Get(ctx, ruleSnapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rules []*domain.AccountingRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, false, err
	}

	return rules, true, nil
}

// Set stores the rule snapshot with a TTL.
func (c *RuleSnapshotCache) Set(ctx context.Context, rules []*domain.AccountingRule, ttl time.Duration) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, ruleSnapshotKey, data, ttl).Err()
}

// Invalidate drops the snapshot. Called after every rule edit so the next
// resolution rebuilds from storage.
func (c *RuleSnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, ruleSnapshotKey).Err()
}
