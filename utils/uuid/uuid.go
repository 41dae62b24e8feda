// Package uuid generates workflow run instance IDs.
package uuid

import (
	"sync"

	"github.com/google/uuid"
)

// IDers hand out a new identifier on every call.
// The engine asks for one ID per workflow run.
type IDer interface {
	ID() string
}

// UUID hands out random (version 4) UUID strings.
type UUID struct{}

// NewUUID creates a new random UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// ID returns a new random UUID string.
func (u *UUID) ID() string {
	return uuid.NewString()
}

// StaticIDs hands out a fixed list of IDs, wrapping around at the end.
// It makes run IDs predictable in tests and may be shared by processors.
type StaticIDs struct {
	mu   sync.Mutex
	ids  []string
	next int
}

// NewStaticIDs creates a new generator cycling through ids.
// It panics if ids is empty.
func NewStaticIDs(ids ...string) *StaticIDs {
	if len(ids) < 1 {
		panic("no static IDs")
	}
	return &StaticIDs{ids: append([]string(nil), ids...)}
}

// ID returns the next ID in the list.
func (s *StaticIDs) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids[s.next]
	s.next = (s.next + 1) % len(s.ids)
	return id
}
