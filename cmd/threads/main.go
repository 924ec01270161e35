package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/milk9111/tiledot/prefabs"
	"github.com/milk9111/tiledot/timer"
	"github.com/milk9111/tiledot/worker"
)

func delay(d prefabs.DelaySpec) worker.Delay {
	lo, hi := d.Range()
	return worker.Delay{Min: lo, Max: hi}
}

func main() {
	mode := flag.String("mode", "prodcons", "demo to run: prodcons or semaphore")
	iterations := flag.Int("n", 0, "iterations per goroutine (0 uses threads.yaml)")
	flag.Parse()

	spec, err := prefabs.LoadThreadsSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *iterations > 0 {
		spec.Iterations = *iterations
	}

	cfg := worker.Config{
		Iterations:   spec.Iterations,
		StartJitter:  delay(spec.StartJitter),
		ProduceDelay: delay(spec.ProduceDelay),
		WorkDelay:    delay(spec.WorkDelay),
		IdleDelay:    delay(spec.IdleDelay),
		Logger:       log.New(os.Stdout, "", log.Lmicroseconds),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clock := timer.New(nil)
	clock.Start()

	switch *mode {
	case "prodcons":
		values, err := worker.RunProducerConsumer(ctx, cfg)
		if err != nil {
			log.Fatalf("producer/consumer: %v", err)
		}
		log.Printf("consumed %v", values)
	case "semaphore":
		steps, err := worker.RunSemaphoreWorkers(ctx, cfg)
		if err != nil {
			log.Fatalf("semaphore: %v", err)
		}
		log.Printf("%d updates", len(steps))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	log.Printf("finished in %v", clock.Ticks().Round(time.Millisecond))
}
