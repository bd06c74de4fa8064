package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/florett/florett-backend/models"
)

// CartStore is the durable home of session carts. Load returns (nil, nil)
// for an unknown session and for unreadable stored state: a corrupt cart is
// discarded and treated as empty, never surfaced as an error.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisCartStore keeps carts as JSON values with a TTL.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore creates a new RedisCartStore.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// Corrupt state: drop it and start over with an empty cart.
		_ = s.client.Del(ctx, s.key(sessionID)).Err()
		return nil, nil
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(cart.SessionID), data, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// MemoryCartStore is a process-local CartStore for tests and redis-less
// development runs.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemoryCartStore creates a new MemoryCartStore.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]byte)}
}

func (s *MemoryCartStore) Load(_ context.Context, sessionID string) (*models.Cart, error) {
	s.mu.RLock()
	data, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.mu.Lock()
		delete(s.carts, sessionID)
		s.mu.Unlock()
		return nil, nil
	}
	return &cart, nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[cart.SessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}

// Corrupt injects raw bytes for a session, used by tests to simulate a
// damaged stored cart.
func (s *MemoryCartStore) Corrupt(sessionID string, data []byte) {
	s.mu.Lock()
	s.carts[sessionID] = data
	s.mu.Unlock()
}
