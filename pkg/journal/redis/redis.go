package redis

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Layr-Labs/multisig-stager-go/pkg/journal"
)

// Key prefixes for namespacing in Redis
const (
	keyPrefixRecord      = "stager:record:"
	keySchemaVersion     = "stager:metadata:schema_version"
	currentSchemaVersion = "v1"

	// Index set for listing (Redis doesn't support prefix iteration natively)
	keySetRecords = "stager:records:index"
)

// RedisJournal is a Redis-backed journal, for teams that want staging
// history shared across operator machines.
type RedisJournal struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string // Custom prefix for all keys
	mu        sync.RWMutex
	closed    bool
}

// Compile-time check to ensure RedisJournal implements IJournal
var _ journal.IJournal = (*RedisJournal)(nil)

// RedisConfig holds the configuration for connecting to Redis
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string
	// Password is the optional Redis password
	Password string
	// DB is the Redis database number (0-15)
	DB int
	// KeyPrefix is an optional custom prefix for all keys (for multi-tenant
	// setups). If set, keys become e.g. "myteam:stager:record:<id>".
	KeyPrefix string
}

// NewRedisJournal creates a new Redis-backed journal.
func NewRedisJournal(cfg *RedisConfig, logger *zap.Logger) (*RedisJournal, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	rj := &RedisJournal{
		client:    client,
		logger:    logger,
		keyPrefix: cfg.KeyPrefix,
	}

	if err := rj.initSchema(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Sugar().Infow("Redis journal initialized", "address", cfg.Address, "db", cfg.DB)

	return rj, nil
}

// prefixKey adds the custom key prefix (if configured) to a key
func (r *RedisJournal) prefixKey(key string) string {
	if r.keyPrefix == "" {
		return key
	}
	return r.keyPrefix + key
}

// initSchema initializes or validates the schema version
func (r *RedisJournal) initSchema(ctx context.Context) error {
	schemaKey := r.prefixKey(keySchemaVersion)

	existingVersion, err := r.client.Get(ctx, schemaKey).Result()
	if err == redis.Nil {
		// First time setup - set schema version
		return r.client.Set(ctx, schemaKey, currentSchemaVersion, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if existingVersion != currentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %s (expected: %s)", existingVersion, currentSchemaVersion)
	}

	return nil
}

// Append stores one record
func (r *RedisJournal) Append(record *journal.Record) error {
	stored, err := journal.PrepareRecord(record)
	if err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("journal is closed")
	}

	ctx := context.Background()

	data, err := journal.MarshalRecord(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal Record: %w", err)
	}

	// Store record and index membership in one pipeline
	key := r.prefixKey(keyPrefixRecord + stored.Id)
	indexKey := r.prefixKey(keySetRecords)
	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, stored.Id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save Record: %w", err)
	}

	return nil
}

// Get retrieves a record by id
func (r *RedisJournal) Get(id string) (*journal.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("journal is closed")
	}

	ctx := context.Background()
	key := r.prefixKey(keyPrefixRecord + id)

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Not found is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load Record: %w", err)
	}

	return journal.UnmarshalRecord(data)
}

// List returns all records sorted by staging time
func (r *RedisJournal) List() ([]*journal.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("journal is closed")
	}

	ctx := context.Background()
	indexKey := r.prefixKey(keySetRecords)

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list Record ids: %w", err)
	}

	records := make([]*journal.Record, 0, len(ids))
	for _, id := range ids {
		key := r.prefixKey(keyPrefixRecord + id)

		data, err := r.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			// Index entry without a record; skip it
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load Record %s: %w", id, err)
		}

		record, err := journal.UnmarshalRecord(data)
		if err != nil {
			r.logger.Sugar().Warnw("Failed to unmarshal Record, skipping", "id", id, "error", err)
			continue
		}

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].StagedAt != records[j].StagedAt {
			return records[i].StagedAt < records[j].StagedAt
		}
		return records[i].Id < records[j].Id
	})

	return records, nil
}

// Close shuts down the journal
func (r *RedisJournal) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil // Already closed, idempotent
	}
	r.closed = true

	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	r.logger.Sugar().Info("Redis journal closed")
	return nil
}

// HealthCheck verifies the journal is operational
func (r *RedisJournal) HealthCheck() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("journal is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}
