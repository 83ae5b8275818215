package cart

import (
	"context"
	"sync"

	"github.com/amborella-organics/storefront-backend/pkg/config"
	"github.com/amborella-organics/storefront-backend/pkg/logger"
)

// Sessions hands out one Store per cart session token. Stores are built
// lazily on first use and cached for the life of the process; the
// persisted slot is what survives restarts.
type Sessions struct {
	mu      sync.Mutex
	stores  map[string]*Store
	factory PersistenceFactory
	cfg     config.CartConfig
	logg    *logger.Logger
}

func NewSessions(factory PersistenceFactory, cfg config.CartConfig, logg *logger.Logger) *Sessions {
	return &Sessions{
		stores:  make(map[string]*Store),
		factory: factory,
		cfg:     cfg,
		logg:    logg,
	}
}

// Get returns the store for the session token, restoring persisted state
// on first access.
func (s *Sessions) Get(ctx context.Context, sessionID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[sessionID]; ok {
		return store
	}
	store := NewStore(ctx, s.factory(sessionID), s.cfg, s.logg)
	s.stores[sessionID] = store
	return store
}
