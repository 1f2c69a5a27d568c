package schedulers

import (
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

// rrProcess is the per-run working state of one process.
type rrProcess struct {
	core.Process
	remainingTime int
	firstResponse int
	responded     bool
	queued        bool
}

type readyQueue struct {
	items []int
}

func (q *readyQueue) push(i int) {
	q.items = append(q.items, i)
}

func (q *readyQueue) pop() int {
	item := q.items[0]
	q.items = q.items[1:]
	return item
}

func (q *readyQueue) empty() bool {
	return len(q.items) == 0
}

// ScheduleRoundRobin time-slices the CPU with a fixed quantum. Processes that
// arrive during a slice are queued ahead of the preempted process.
func ScheduleRoundRobin(workload core.Workload, timeQuantum int) (core.SimulationResult, error) {
	if timeQuantum < 1 {
		return core.SimulationResult{}, fmt.Errorf("%w: time quantum %d, must be >= 1", core.ErrInvalidParameter, timeQuantum)
	}
	if err := workload.Validate(); err != nil {
		return core.SimulationResult{}, err
	}

	jobs := workload.Processes()
	processes := make([]rrProcess, len(jobs))
	for i, job := range jobs {
		processes[i] = rrProcess{Process: job, remainingTime: job.BurstTime}
	}

	cpu := core.NewCPU()
	queue := &readyQueue{}
	processDetails := make([]core.ProcessMetrics, 0, len(processes))

	// admit enqueues, in input order, arrived processes that are neither
	// queued nor complete. skip is excluded; -1 excludes nothing.
	admit := func(skip int) {
		for i := range processes {
			p := &processes[i]
			if i == skip || p.queued || p.remainingTime == 0 || p.ArrivalTime > cpu.Now() {
				continue
			}
			p.queued = true
			queue.push(i)
		}
	}

	for len(processDetails) < len(processes) {
		admit(-1)
		if queue.empty() {
			cpu.IdleUntil(nextPendingArrival(processes))
			continue
		}

		current := queue.pop()
		p := &processes[current]
		p.queued = false
		if !p.responded {
			p.firstResponse = cpu.Now() - p.ArrivalTime
			p.responded = true
		}

		execTime := timeQuantum
		if p.remainingTime < execTime {
			execTime = p.remainingTime
		}
		cpu.Execute(p.Process, execTime)
		p.remainingTime -= execTime

		if p.remainingTime == 0 {
			processDetails = append(processDetails, core.NewProcessMetrics(p.Process, cpu.Now(), p.firstResponse))
			continue
		}

		// context switch: arrivals during the slice go ahead of the preempted process
		admit(current)
		p.queued = true
		queue.push(current)
	}

	return Aggregate(core.RoundRobin, cpu.Timeline(), processDetails), nil
}

func nextPendingArrival(processes []rrProcess) int {
	next := -1
	for _, p := range processes {
		if p.remainingTime > 0 && (next == -1 || p.ArrivalTime < next) {
			next = p.ArrivalTime
		}
	}
	return next
}
