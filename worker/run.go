package worker

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Delay is a uniformly random wait in [Min, Max].
type Delay struct {
	Min time.Duration
	Max time.Duration
}

// Config drives both demos.
type Config struct {
	Iterations int

	// StartJitter separates the launch of the second goroutine.
	StartJitter Delay
	// ProduceDelay is the wait before each produce or consume.
	ProduceDelay Delay
	// WorkDelay is the wait before each semaphore acquire.
	WorkDelay Delay
	// IdleDelay is the wait after each semaphore release.
	IdleDelay Delay

	Rand   *rand.Rand
	Sleep  func(ctx context.Context, d time.Duration) error
	Logger *log.Logger
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runner shares one random source between goroutines.
type runner struct {
	cfg Config
	mu  sync.Mutex
}

func newRunner(cfg Config) (*runner, error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("worker: iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if cfg.Sleep == nil {
		cfg.Sleep = Sleep
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return &runner{cfg: cfg}, nil
}

func (r *runner) intN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.Rand.IntN(n)
}

func (r *runner) wait(ctx context.Context, d Delay) error {
	span := d.Max - d.Min
	pause := d.Min
	if span > 0 {
		r.mu.Lock()
		pause += time.Duration(r.cfg.Rand.Int64N(int64(span) + 1))
		r.mu.Unlock()
	}
	return r.cfg.Sleep(ctx, pause)
}

// RunProducerConsumer passes Iterations random values through a Slot and
// returns them in the order they were consumed.
func RunProducerConsumer(ctx context.Context, cfg Config) ([]int, error) {
	r, err := newRunner(cfg)
	if err != nil {
		return nil, err
	}
	logger := r.cfg.Logger
	slot := NewSlot[int](logger)
	consumed := make([]int, 0, r.cfg.Iterations)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Printf("producer started")
		for i := 0; i < r.cfg.Iterations; i++ {
			if err := r.wait(ctx, r.cfg.ProduceDelay); err != nil {
				return err
			}
			v := r.intN(255)
			if err := slot.Produce(ctx, v); err != nil {
				return err
			}
			logger.Printf("produced %d", v)
		}
		logger.Printf("producer finished")
		return nil
	})

	if err := r.wait(ctx, r.cfg.StartJitter); err != nil {
		_ = g.Wait()
		return nil, err
	}

	g.Go(func() error {
		logger.Printf("consumer started")
		for i := 0; i < r.cfg.Iterations; i++ {
			if err := r.wait(ctx, r.cfg.ProduceDelay); err != nil {
				return err
			}
			v, err := slot.Consume(ctx)
			if err != nil {
				return err
			}
			logger.Printf("consumed %d", v)
			consumed = append(consumed, v)
		}
		logger.Printf("consumer finished")
		return nil
	})

	if err := g.Wait(); err != nil {
		return consumed, err
	}
	return consumed, nil
}

// Step is one semaphore-guarded update made by a worker.
type Step struct {
	Worker string
	Got    int
	Set    int
}

// RunSemaphoreWorkers has each named worker update a shared Cell
// Iterations times. Steps are returned in the order the updates happened.
func RunSemaphoreWorkers(ctx context.Context, cfg Config, names ...string) ([]Step, error) {
	r, err := newRunner(cfg)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = []string{"Thread A", "Thread B"}
	}
	logger := r.cfg.Logger
	cell := NewCell(-1)

	var (
		stepsMu sync.Mutex
		steps   []Step
	)

	var launchErr error
	parent := ctx
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		if i > 0 {
			if launchErr = r.wait(ctx, r.cfg.StartJitter); launchErr != nil {
				break
			}
		}
		g.Go(func() error {
			logger.Printf("%s starting", name)
			for j := 0; j < r.cfg.Iterations; j++ {
				if err := r.wait(ctx, r.cfg.WorkDelay); err != nil {
					return err
				}
				next := r.intN(256)
				got, set, err := cell.Update(ctx, func(old int) int {
					logger.Printf("%s gets %d", name, old)
					stepsMu.Lock()
					steps = append(steps, Step{Worker: name, Got: old, Set: next})
					stepsMu.Unlock()
					return next
				})
				if err != nil {
					return err
				}
				logger.Printf("%s sets %d (was %d)", name, set, got)
				if err := r.wait(ctx, r.cfg.IdleDelay); err != nil {
					return err
				}
			}
			logger.Printf("%s finished", name)
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = launchErr
	}
	if err == nil {
		// g's context is done once Wait returns
		final, verr := cell.Value(parent)
		if verr != nil {
			err = verr
		} else {
			logger.Printf("shared value settled at %d", final)
		}
	}
	stepsMu.Lock()
	defer stepsMu.Unlock()
	return steps, err
}
