package service

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator assigns identifiers to new sessions.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// TimestampIDGenerator issues millisecond Unix timestamps as decimal strings.
// IDs are strictly increasing even when the clock stalls or steps back.
type TimestampIDGenerator struct {
	now  func() time.Time
	mu   sync.Mutex
	last int64
}

func NewTimestampIDGenerator(now func() time.Time) *TimestampIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDGenerator{now: now}
}

func (g *TimestampIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

const (
	IDStrategyUUID      = "uuid"
	IDStrategyTimestamp = "timestamp"
)

// NewIDGenerator returns the generator for a configured strategy name.
func NewIDGenerator(strategy string, now func() time.Time) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategyUUID:
		return UUIDGenerator{}, nil
	case IDStrategyTimestamp:
		return NewTimestampIDGenerator(now), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (want %s or %s)", strategy, IDStrategyUUID, IDStrategyTimestamp)
	}
}
