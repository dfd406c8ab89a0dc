package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const resetTokenTTL = 3600 * time.Second

// EmbeddingCache stores student embedding vectors in Redis, keyed by student
// id with no expiry. The same client backs short-lived password-reset tokens
// under a separate key namespace.
type EmbeddingCache struct {
	client *redis.Client
}

func NewEmbeddingCache(cfg *config.RedisConfig) (*EmbeddingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &EmbeddingCache{client: client}, nil
}

func embeddingKey(studentID uuid.UUID) string {
	return "embedding:" + studentID.String()
}

// StoreEmbedding caches a student's vector. An empty vector is a no-op so a
// failed recompute never wipes out a previously valid cached vector.
func (c *EmbeddingCache) StoreEmbedding(ctx context.Context, studentID uuid.UUID, embedding []float32) error {
	if len(embedding) == 0 {
		return nil
	}
	data, err := json.Marshal(embedding)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, embeddingKey(studentID), data, 0).Err()
}

// GetEmbedding returns the cached vector, or nil on a miss. A miss is a
// normal condition (new student, provider unconfigured), not an error.
func (c *EmbeddingCache) GetEmbedding(ctx context.Context, studentID uuid.UUID) ([]float32, error) {
	data, err := c.client.Get(ctx, embeddingKey(studentID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var embedding []float32
	if err := json.Unmarshal(data, &embedding); err != nil {
		return nil, err
	}
	return embedding, nil
}

// DeleteEmbedding removes the cached vector. Called when the student row is
// deleted; an orphaned vector is a defect.
func (c *EmbeddingCache) DeleteEmbedding(ctx context.Context, studentID uuid.UUID) error {
	return c.client.Del(ctx, embeddingKey(studentID)).Err()
}

// StoreResetToken maps a password-reset token to a staff id for one hour.
func (c *EmbeddingCache) StoreResetToken(ctx context.Context, token string, staffID uuid.UUID) error {
	return c.client.Set(ctx, "reset:"+token, staffID.String(), resetTokenTTL).Err()
}

// ConsumeResetToken resolves and invalidates a reset token. Returns uuid.Nil
// when the token is unknown or expired.
func (c *EmbeddingCache) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	key := "reset:" + token
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *EmbeddingCache) Close() error {
	return c.client.Close()
}
