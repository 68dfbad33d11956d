package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
	"github.com/yigit/cgpatracker/internal/pkg/logger"
)

// maxUpdateAttempts bounds the optimistic retries of Update
const maxUpdateAttempts = 10

// ErrUpdateConflict is returned when Update keeps losing the race for a key.
var ErrUpdateConflict = errors.New("session changed concurrently")

// RedisSessionRepository keeps each session as a JSON value under
// prefix+sessionID with the session TTL as key expiry.
type RedisSessionRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository
func NewRedisSessionRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisSessionRepository) key(sessionID string) string {
	return r.prefix + sessionID
}

// Load returns the gradebook for sessionID and slides its expiry.
func (r *RedisSessionRepository) Load(ctx context.Context, sessionID string) (grading.Gradebook, error) {
	raw, err := r.client.GetEx(ctx, r.key(sessionID), r.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return grading.Gradebook{}, apperrors.ErrSessionNotFound
		}
		logger.Error().Err(err).Str("session", sessionID).Msg("Error loading session from redis")
		return grading.Gradebook{}, fmt.Errorf("error loading session: %w", err)
	}

	var gb grading.Gradebook
	if err := json.Unmarshal(raw, &gb); err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("Corrupt session payload in redis")
		return grading.Gradebook{}, fmt.Errorf("error decoding session: %w", err)
	}
	return gb, nil
}

// Save replaces the gradebook stored for sessionID.
func (r *RedisSessionRepository) Save(ctx context.Context, sessionID string, gb grading.Gradebook) error {
	raw, err := json.Marshal(gb)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err := r.client.Set(ctx, r.key(sessionID), raw, r.ttl).Err(); err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("Error saving session to redis")
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

// Update watches the session key, applies fn and writes the result in a
// MULTI/EXEC block. A write to the key by anyone else aborts the transaction
// and the whole read-modify-write is retried.
func (r *RedisSessionRepository) Update(ctx context.Context, sessionID string, fn UpdateFunc) (grading.Gradebook, error) {
	key := r.key(sessionID)
	var next grading.Gradebook

	txf := func(tx *redis.Tx) error {
		var current grading.Gradebook
		found := true

		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			found = false
		case err != nil:
			return fmt.Errorf("error loading session: %w", err)
		default:
			if err := json.Unmarshal(raw, &current); err != nil {
				return fmt.Errorf("error decoding session: %w", err)
			}
		}

		if next, err = fn(current, found); err != nil {
			return err
		}

		payload, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("error encoding session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return grading.Gradebook{}, err
		}
		logger.Debug().Str("session", sessionID).Int("attempt", attempt).Msg("Session update raced, retrying")
	}

	logger.Warn().Str("session", sessionID).Msg("Giving up on contended session update")
	return grading.Gradebook{}, ErrUpdateConflict
}

// Delete drops the session key.
func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("Error deleting session from redis")
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
