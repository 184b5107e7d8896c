// Package memory runs an in-process Redis server for the memory driver, so
// local runs and tests go through the same rueidis-backed store as production.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/kailas-cloud/tripdex/internal/db"
	dbRedis "github.com/kailas-cloud/tripdex/internal/db/redis"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// defaultClockStep is how often key TTLs are advanced. miniredis only
// expires keys when its clock is moved forward.
const defaultClockStep = time.Second

// Store is a redis.Store connected to an embedded miniredis server.
type Store struct {
	*dbRedis.Store
	srv *miniredis.Miniredis

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewStore starts an embedded server on a free local port and connects to it.
func NewStore() (*Store, error) {
	return newStore(defaultClockStep)
}

func newStore(step time.Duration) (*Store, error) {
	srv := miniredis.NewMiniRedis()
	if err := srv.Start(); err != nil {
		return nil, fmt.Errorf("start embedded redis: %w", err)
	}

	client, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      []string{srv.Addr()},
		SingleNode: true,
	})
	if err != nil {
		srv.Close()
		return nil, fmt.Errorf("connect embedded redis: %w", err)
	}

	s := &Store{
		Store: client,
		srv:   srv,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go s.advanceClock(step)
	return s, nil
}

// Close stops the clock, the client and the embedded server.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
		<-s.done
		s.Store.Close()
		s.srv.Close()
	})
}

func (s *Store) advanceClock(step time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.srv.FastForward(step)
		}
	}
}
