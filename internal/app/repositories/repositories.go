package repositories

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Repositories holds all the repository instances
type Repositories struct {
	SessionRepository SessionRepository
}

// NewMemoryRepositories initializes repositories backed by process memory
func NewMemoryRepositories(ttl time.Duration) *Repositories {
	return &Repositories{
		SessionRepository: NewMemorySessionRepository(ttl),
	}
}

// NewRedisRepositories initializes repositories backed by redis
func NewRedisRepositories(client *redis.Client, prefix string, ttl time.Duration) *Repositories {
	return &Repositories{
		SessionRepository: NewRedisSessionRepository(client, prefix, ttl),
	}
}
