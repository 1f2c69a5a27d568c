// Package schedulers simulates CPU scheduling disciplines over an immutable
// workload. Every run allocates its own working state, so runs over the same
// workload may execute concurrently.
package schedulers

import (
	"fmt"
	"log"
	"sync"

	"cpu-scheduling-simulator/internal/core"
)

// Run dispatches to the scheduler for algorithm. timeQuantum is only used by
// round-robin.
func Run(algorithm core.Algorithm, workload core.Workload, timeQuantum int) (core.SimulationResult, error) {
	switch algorithm {
	case core.FirstComeFirstServe:
		log.Println("running fcfs algorithm ...")
		return ScheduleFirstComeFirstServe(workload)
	case core.ShortestJobFirst:
		log.Println("running sjf algorithm ...")
		return ScheduleShortestJobFirst(workload)
	case core.Priority:
		log.Println("running priority algorithm ...")
		return SchedulePriority(workload)
	case core.RoundRobin:
		log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
		return ScheduleRoundRobin(workload, timeQuantum)
	}
	return core.SimulationResult{}, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, string(algorithm))
}

// RunAll simulates every algorithm over the same workload in parallel. Results
// follow core.Algorithms order. The first error, in that order, is returned.
func RunAll(workload core.Workload, timeQuantum int) ([]core.SimulationResult, error) {
	results := make([]core.SimulationResult, len(core.Algorithms))
	errs := make([]error, len(core.Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(core.Algorithms))
	for i, algorithm := range core.Algorithms {
		go func(i int, algorithm core.Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Run(algorithm, workload, timeQuantum)
		}(i, algorithm)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
