// Package generator builds random workloads for demos and property tests.
package generator

import (
	"fmt"
	"math/rand"

	"cpu-scheduling-simulator/internal/core"
)

type Options struct {
	MinProcesses   int
	MaxProcesses   int
	MaxArrivalTime int // exclusive
	MaxBurstTime   int // inclusive, bursts start at 1
	MaxPriority    int // inclusive, priorities start at 1
}

func DefaultOptions() Options {
	return Options{
		MinProcesses:   3,
		MaxProcesses:   6,
		MaxArrivalTime: 8,
		MaxBurstTime:   8,
		MaxPriority:    5,
	}
}

// Validate rejects empty or inverted ranges.
func (o Options) Validate() error {
	switch {
	case o.MinProcesses < 0 || o.MaxProcesses < o.MinProcesses:
		return fmt.Errorf("%w: process count range [%d,%d]", core.ErrInvalidParameter, o.MinProcesses, o.MaxProcesses)
	case o.MaxArrivalTime < 1:
		return fmt.Errorf("%w: max arrival time %d", core.ErrInvalidParameter, o.MaxArrivalTime)
	case o.MaxBurstTime < 1:
		return fmt.Errorf("%w: max burst time %d", core.ErrInvalidParameter, o.MaxBurstTime)
	case o.MaxPriority < 1:
		return fmt.Errorf("%w: max priority %d", core.ErrInvalidParameter, o.MaxPriority)
	}
	return nil
}

type Generator struct {
	rng     *rand.Rand
	options Options
	counter int
}

func New(seed int64, options Options) (*Generator, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), options: options}, nil
}

// Count draws a process count from the configured range.
func (g *Generator) Count() int {
	return g.options.MinProcesses + g.rng.Intn(g.options.MaxProcesses-g.options.MinProcesses+1)
}

// Processes generates n processes. Ids continue P1, P2, ... across calls.
func (g *Generator) Processes(n int) []core.Process {
	processes := make([]core.Process, 0, n)
	for i := 0; i < n; i++ {
		g.counter++
		id := fmt.Sprintf("P%d", g.counter)
		processes = append(processes, core.Process{
			Id:          id,
			Name:        id,
			ArrivalTime: g.rng.Intn(g.options.MaxArrivalTime),
			BurstTime:   g.rng.Intn(g.options.MaxBurstTime) + 1,
			Priority:    core.IntPtr(g.rng.Intn(g.options.MaxPriority) + 1),
		})
	}
	return processes
}

// Workload generates a workload of Count() processes.
func (g *Generator) Workload() (core.Workload, error) {
	return core.NewWorkload(g.Processes(g.Count())...)
}
