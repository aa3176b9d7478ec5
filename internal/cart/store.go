package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StoreConfig holds configuration for the session cart store.
type StoreConfig struct {
	// TTL is how long an untouched cart is kept.
	TTL time.Duration

	// SweepInterval is how often expired carts are evicted.
	// Default: TTL / 4, at least one second.
	SweepInterval time.Duration
}

// DefaultStoreConfig returns the default store configuration.
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		TTL:           2 * time.Hour,
		SweepInterval: 30 * time.Minute,
	}
}

type entry struct {
	cart    *Cart
	touched time.Time
}

// Store keeps one cart per session in memory. Carts are lost on restart.
type Store struct {
	mu       sync.Mutex
	carts    map[uuid.UUID]*entry
	ttl      time.Duration
	now      func() time.Time
	logger   zerolog.Logger
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewStore creates a store and starts its eviction loop. Call Close to stop it.
func NewStore(config *StoreConfig, logger zerolog.Logger) *Store {
	if config == nil {
		config = DefaultStoreConfig()
	}

	interval := config.SweepInterval
	if interval <= 0 {
		interval = config.TTL / 4
	}
	if interval < time.Second {
		interval = time.Second
	}

	s := &Store{
		carts:  make(map[uuid.UUID]*entry),
		ttl:    config.TTL,
		now:    time.Now,
		logger: logger.With().Str("component", "cart-store").Logger(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	s.logger.Info().
		Dur("ttl", config.TTL).
		Dur("sweep_interval", interval).
		Msg("cart store started")

	go s.sweepLoop(interval)

	return s
}

// Get returns a snapshot of the session's cart. Unknown sessions yield an
// empty cart; nothing is stored until the first update.
func (s *Store) Get(sessionID uuid.UUID) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[sessionID]
	if !ok || s.expired(e) {
		return New()
	}
	e.touched = s.now()
	return e.cart.Clone()
}

// Update applies fn to the session's cart under the store lock and returns
// a snapshot of the result. A session without a cart gets one only if fn
// leaves it non-empty.
func (s *Store) Update(sessionID uuid.UUID, fn func(c *Cart)) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[sessionID]
	if !ok || s.expired(e) {
		c := New()
		fn(c)
		if c.Len() == 0 {
			delete(s.carts, sessionID)
			return c
		}
		s.carts[sessionID] = &entry{cart: c, touched: s.now()}
		return c.Clone()
	}

	fn(e.cart)
	e.touched = s.now()

	return e.cart.Clone()
}

// Len returns the number of carts held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Close stops the eviction loop.
func (s *Store) Close() error {
	s.stopOnce.Do(func() {
		close(s.stop)
		<-s.done
		s.logger.Info().Msg("cart store stopped")
	})
	return nil
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.touched) > s.ttl
}

func (s *Store) sweepLoop(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep evicts expired carts.
func (s *Store) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.carts {
		if s.expired(e) {
			delete(s.carts, id)
			evicted++
		}
	}

	if evicted > 0 {
		s.logger.Debug().
			Int("evicted", evicted).
			Int("remaining", len(s.carts)).
			Msg("evicted idle carts")
	}
	return evicted
}
