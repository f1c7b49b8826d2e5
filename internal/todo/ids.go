package todo

import (
	"fmt"

	"github.com/google/uuid"
)

type IDStrategy string

const (
	IDStrategyCounter IDStrategy = "counter"
	IDStrategyUUID    IDStrategy = "uuid"
)

// IDSource hands out ids for new items.
type IDSource interface {
	Next() string
}

// CounterIDs yields prefix-1, prefix-2, ...
type CounterIDs struct {
	Prefix string
	next   int
}

func NewCounterIDs(prefix string) *CounterIDs {
	return &CounterIDs{Prefix: prefix, next: 1}
}

func (c *CounterIDs) Next() string {
	if c.next <= 0 {
		c.next = 1
	}
	id := fmt.Sprintf("%s-%d", c.Prefix, c.next)
	c.next++
	return id
}

type UUIDIDs struct{}

func (UUIDIDs) Next() string { return uuid.NewString() }

func NewIDSource(strategy IDStrategy) (IDSource, error) {
	switch strategy {
	case IDStrategyCounter, "":
		return NewCounterIDs("todo"), nil
	case IDStrategyUUID:
		return UUIDIDs{}, nil
	default:
		return nil, fmt.Errorf("todo: unknown id strategy %q", strategy)
	}
}
