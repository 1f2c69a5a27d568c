package schedulers

import (
	"sort"

	"cpu-scheduling-simulator/internal/core"
)

// selectionKey orders ready processes for a non-preemptive dispatch. Lower wins.
type selectionKey func(p core.Process) int

// scheduleNonPreemptive repeatedly dispatches the ready process with the
// smallest key and runs it to completion. Ties go to the earliest arrival,
// then to input order. When nothing is ready the clock jumps to the next
// arrival.
func scheduleNonPreemptive(algorithm core.Algorithm, workload core.Workload, key selectionKey) (core.SimulationResult, error) {
	if err := workload.Validate(); err != nil {
		return core.SimulationResult{}, err
	}

	remaining := workload.Processes()
	cpu := core.NewCPU()
	processDetails := make([]core.ProcessMetrics, 0, len(remaining))

	for len(remaining) > 0 {
		readyQueue := readyIndexes(remaining, cpu.Now())
		if len(readyQueue) == 0 {
			cpu.IdleUntil(nextArrival(remaining))
			continue
		}

		sort.SliceStable(readyQueue, func(i, j int) bool {
			a, b := remaining[readyQueue[i]], remaining[readyQueue[j]]
			if key(a) != key(b) {
				return key(a) < key(b)
			}
			return a.ArrivalTime < b.ArrivalTime
		})

		selected := readyQueue[0]
		job := remaining[selected]
		responseTime := cpu.Now() - job.ArrivalTime
		interval := cpu.Execute(job, job.BurstTime)
		processDetails = append(processDetails, core.NewProcessMetrics(job, interval.EndTime, responseTime))

		remaining = append(remaining[:selected], remaining[selected+1:]...)
	}

	return Aggregate(algorithm, cpu.Timeline(), processDetails), nil
}

// readyIndexes returns, in input order, the indexes of processes that have
// arrived by now.
func readyIndexes(processes []core.Process, now int) []int {
	ready := make([]int, 0, len(processes))
	for i, p := range processes {
		if p.ArrivalTime <= now {
			ready = append(ready, i)
		}
	}
	return ready
}

func nextArrival(processes []core.Process) int {
	next := processes[0].ArrivalTime
	for _, p := range processes[1:] {
		if p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next
}
