package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/amborella-organics/storefront-backend/pkg/redis"
)

// Persistence is the single key-value slot a cart session writes its full
// items slice into after every mutation. Load reports found=false when the
// slot has never been written.
type Persistence interface {
	Load(ctx context.Context) (payload []byte, found bool, err error)
	Save(ctx context.Context, payload []byte) error
}

// PersistenceFactory binds a Persistence to a cart session id.
type PersistenceFactory func(sessionID string) Persistence

func encodeItems(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}

// decodeItems tolerantly restores a persisted items slice. Unknown fields
// are ignored, absent numeric fields read as zero, and zero-quantity
// entries are dropped rather than stored. A payload that does not parse at
// all is reported as an error so the caller can fall back to an empty cart.
func decodeItems(payload []byte) ([]LineItem, error) {
	var raw []LineItem
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	items := make([]LineItem, 0, len(raw))
	for _, item := range raw {
		if item.Quantity <= 0 {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// RedisPersistence stores the serialized cart under a namespaced key with a
// session TTL, refreshed on every write.
type RedisPersistence struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisPersistence(client *redis.Client, sessionID string, ttl time.Duration) *RedisPersistence {
	return &RedisPersistence{
		client: client,
		key:    client.CartKey(sessionID),
		ttl:    ttl,
	}
}

// RedisPersistenceFactory returns a factory producing per-session redis
// slots using the shared client.
func RedisPersistenceFactory(client *redis.Client, ttl time.Duration) PersistenceFactory {
	return func(sessionID string) Persistence {
		return NewRedisPersistence(client, sessionID, ttl)
	}
}

func (p *RedisPersistence) Load(ctx context.Context) ([]byte, bool, error) {
	value, err := p.client.Get(ctx, p.key)
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (p *RedisPersistence) Save(ctx context.Context, payload []byte) error {
	return p.client.Set(ctx, p.key, string(payload), p.ttl)
}

// MemoryPersistence keeps the serialized cart in process memory. It backs
// tests and local runs without a redis target.
type MemoryPersistence struct {
	mu      sync.Mutex
	payload []byte
	written bool
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{}
}

// MemoryPersistenceFactory returns a factory producing independent
// in-memory slots per session.
func MemoryPersistenceFactory() PersistenceFactory {
	return func(string) Persistence {
		return NewMemoryPersistence()
	}
}

func (p *MemoryPersistence) Load(context.Context) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.written {
		return nil, false, nil
	}
	payload := make([]byte, len(p.payload))
	copy(payload, p.payload)
	return payload, true, nil
}

func (p *MemoryPersistence) Save(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payload = make([]byte, len(payload))
	copy(p.payload, payload)
	p.written = true
	return nil
}
