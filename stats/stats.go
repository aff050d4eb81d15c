// Package stats counts shaped elements and reports progress while a
// run is active.
package stats

import (
	"fmt"
	"time"

	"github.com/osmtools/osmwrangle/logging"
)

type counter struct {
	start   time.Time
	nodes   int64
	ways    int64
	skipped int64
}

func (c *counter) count() int64 {
	return c.nodes + c.ways + c.skipped
}

// Statistics accumulates element counts. All Add methods are safe to
// call from multiple goroutines, counting happens in a single
// background goroutine.
type Statistics struct {
	nodes   chan int
	ways    chan int
	skipped chan int
	done    chan chan counter
}

func (s *Statistics) AddNodes(n int)   { s.nodes <- n }
func (s *Statistics) AddWays(n int)    { s.ways <- n }
func (s *Statistics) AddSkipped(n int) { s.skipped <- n }

// Stop finishes the reporter and logs the final counts.
func (s *Statistics) Stop() {
	resp := make(chan counter)
	s.done <- resp
	c := <-resp
	log.Printf("shaped %d nodes, %d ways (%d elements skipped)",
		c.nodes, c.ways, c.skipped)
}

var log = logging.NewLogger("stats")

// NewReporter starts a Statistics reporter that prints a progress
// line once per second.
func NewReporter() *Statistics {
	c := counter{start: time.Now()}
	s := Statistics{
		nodes:   make(chan int),
		ways:    make(chan int),
		skipped: make(chan int),
		done:    make(chan chan counter),
	}

	go func() {
		tick := time.Tick(time.Second)
		for {
			select {
			case n := <-s.nodes:
				c.nodes += int64(n)
			case n := <-s.ways:
				c.ways += int64(n)
			case n := <-s.skipped:
				c.skipped += int64(n)
			case <-tick:
				c.print()
			case resp := <-s.done:
				resp <- c
				return
			}
		}
	}()

	return &s
}

func (c *counter) print() {
	elapsed := time.Since(c.start)
	rate := float64(c.count()) / elapsed.Seconds()
	logging.Progress(fmt.Sprintf(
		"[%6s] E: %9d (%6.0f/s) N: %9d W: %9d skipped: %9d",
		elapsed.Truncate(time.Second), c.count(), rate, c.nodes, c.ways, c.skipped))
}
