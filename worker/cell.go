package worker

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Cell is an int shared between workers. Access goes through a binary
// semaphore.
type Cell struct {
	sem   *semaphore.Weighted
	value int
}

func NewCell(initial int) *Cell {
	return &Cell{sem: semaphore.NewWeighted(1), value: initial}
}

// Update replaces the value with fn(old) while holding the semaphore.
func (c *Cell) Update(ctx context.Context, fn func(old int) int) (old, updated int, err error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return 0, 0, err
	}
	defer c.sem.Release(1)

	old = c.value
	c.value = fn(old)
	return old, c.value, nil
}

func (c *Cell) Value(ctx context.Context) (int, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer c.sem.Release(1)
	return c.value, nil
}
