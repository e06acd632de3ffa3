// Copyright (c) 2026 Kreeda. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/kreeda/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// The slot expires together with the token it mirrors, so stale sessions
// vanish without any cleanup job.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Set stores the issued token under the principal's session slot with TTL.

Parameters:
  - context: context.Context
  - principalID: string
  - token: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Set(context context.Context, principalID string, token string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + principalID

	if err := repository.client.Set(context, key, token, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

/*
Delete removes the session slot for a principal.

Parameters:
  - context: context.Context
  - principalID: string

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Delete(context context.Context, principalID string) error {
	key := constants.RedisPrefixSession + principalID

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
