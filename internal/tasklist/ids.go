package tasklist

import (
	"fmt"
	"time"

	"todo/internal/service"
)

// ID generation strategies accepted by NewIDGenerator.
const (
	StrategyCounter = "counter"
	StrategyClock   = "clock"
)

// IDGenerator hands out task ids. Generators are not required to be
// collision free; the manager never stores a duplicate.
type IDGenerator interface {
	NextID() service.ID
}

// Counter issues 1, 2, 3, ...
type Counter struct {
	next service.ID
}

// NewCounter returns a counter whose first id is start.
// A start below 1 is treated as 1.
func NewCounter(start service.ID) *Counter {
	if start < 1 {
		start = 1
	}
	return &Counter{next: start}
}

// NextID implements IDGenerator.
func (c *Counter) NextID() service.ID {
	if c.next < 1 {
		c.next = 1
	}
	id := c.next
	c.next++
	return id
}

// Clock derives ids from a millisecond timestamp.
// If the clock stalls or moves backwards, the previous id plus one is used.
type Clock struct {
	now  func() time.Time
	last service.ID
}

// NewClock returns a clock generator reading now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// NextID implements IDGenerator.
func (c *Clock) NextID() service.ID {
	id := service.ID(c.now().UnixMilli())
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// NewIDGenerator returns the generator for a configured strategy.
// An empty strategy selects the counter.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", StrategyCounter:
		return NewCounter(1), nil
	case StrategyClock:
		return NewClock(nil), nil
	default:
		return nil, fmt.Errorf("unknown id strategy: %s", strategy)
	}
}
