package memory

import "testing"

// NewTestStore starts a Store for tests and closes it on cleanup.
func NewTestStore(tb testing.TB) *Store {
	tb.Helper()
	s, err := NewStore()
	if err != nil {
		tb.Fatalf("memory store: %v", err)
	}
	tb.Cleanup(s.Close)
	return s
}
