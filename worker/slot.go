// Package worker runs the producer/consumer and shared-data demos.
package worker

import (
	"context"
	"io"
	"log"
)

// Slot holds at most one value. Producers wait while it is full and
// consumers wait while it is empty.
type Slot[T any] struct {
	ch     chan T
	logger *log.Logger
}

// NewSlot returns an empty slot. A nil logger discards wait messages.
func NewSlot[T any](logger *log.Logger) *Slot[T] {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Slot[T]{ch: make(chan T, 1), logger: logger}
}

// Produce fills the slot, waiting for a consumer to empty it first.
func (s *Slot[T]) Produce(ctx context.Context, v T) error {
	select {
	case s.ch <- v:
		return nil
	default:
	}

	s.logger.Printf("producer encountered full buffer, waiting for consumer to empty buffer")
	select {
	case s.ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume empties the slot, waiting for a producer to fill it first.
func (s *Slot[T]) Consume(ctx context.Context) (T, error) {
	select {
	case v := <-s.ch:
		return v, nil
	default:
	}

	s.logger.Printf("consumer encountered empty buffer, waiting for producer to fill buffer")
	select {
	case v := <-s.ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Full reports whether a value is waiting to be consumed.
func (s *Slot[T]) Full() bool {
	return len(s.ch) == 1
}
