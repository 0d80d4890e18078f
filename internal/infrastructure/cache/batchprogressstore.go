package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lexdoc-ai/lexdoc/internal/domain/organization"
)

const batchKeyPrefix = "lexdoc:organize:batch:"

// RedisBatchStore keeps organization batch progress. Keys are scoped by
// tenant so one office cannot poll another's batch.
type RedisBatchStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ organization.BatchStore = (*RedisBatchStore)(nil)

func NewRedisBatchStore(client *redis.Client, ttl time.Duration) *RedisBatchStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisBatchStore{client: client, prefix: batchKeyPrefix, ttl: ttl}
}

func (s *RedisBatchStore) Save(ctx context.Context, b *organization.Batch) error {
	if b == nil || b.ID == "" || b.TenantCNPJ == "" {
		return errors.New("batch ID and tenant are required")
	}
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}
	if err := s.client.Set(ctx, s.buildKey(b.TenantCNPJ, b.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store batch progress: %w", err)
	}
	return nil
}

// Get returns (nil, nil) when the batch is unknown or has expired.
func (s *RedisBatchStore) Get(ctx context.Context, tenantCNPJ, batchID string) (*organization.Batch, error) {
	data, err := s.client.Get(ctx, s.buildKey(tenantCNPJ, batchID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read batch progress: %w", err)
	}

	var b organization.Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch: %w", err)
	}
	return &b, nil
}

func (s *RedisBatchStore) buildKey(tenantCNPJ, batchID string) string {
	return s.prefix + tenantCNPJ + ":" + batchID
}
