package core

import (
	"fmt"
	"math"
)

// DefaultPriority is used for processes created without an explicit priority.
// Lower values win, so such processes are scheduled first.
const DefaultPriority = 0

type Process struct {
	Id          string
	Name        string
	ArrivalTime int
	BurstTime   int
	Priority    *int
}

func (p Process) EffectivePriority() int {
	if p.Priority == nil {
		return DefaultPriority
	}
	return *p.Priority
}

func IntPtr(v int) *int {
	return &v
}

// Workload is the immutable input of a simulation run. The zero value is an
// empty workload.
type Workload struct {
	processes []Process
}

// NewWorkload validates processes and freezes them in input order. Names
// default to the id. Burst times are checked by the schedulers, not here.
func NewWorkload(processes ...Process) (Workload, error) {
	seen := make(map[string]struct{}, len(processes))
	frozen := make([]Process, 0, len(processes))
	for i, p := range processes {
		if p.Id == "" {
			return Workload{}, fmt.Errorf("%w: process #%d has no id", ErrMalformedProcess, i+1)
		}
		if _, ok := seen[p.Id]; ok {
			return Workload{}, fmt.Errorf("%w: duplicate process id %q", ErrMalformedProcess, p.Id)
		}
		if p.ArrivalTime < 0 {
			return Workload{}, fmt.Errorf("%w: process %q has negative arrival time %d", ErrMalformedProcess, p.Id, p.ArrivalTime)
		}
		seen[p.Id] = struct{}{}
		if p.Name == "" {
			p.Name = p.Id
		}
		if p.Priority != nil {
			p.Priority = IntPtr(*p.Priority)
		}
		frozen = append(frozen, p)
	}
	return Workload{processes: frozen}, nil
}

func (w Workload) Len() int {
	return len(w.processes)
}

// Processes returns a copy of the processes in input order.
func (w Workload) Processes() []Process {
	processes := make([]Process, len(w.processes))
	copy(processes, w.processes)
	return processes
}

// Validate rejects burst times below 1 and workloads whose schedule could run
// past math.MaxInt. No schedule ends later than the last arrival plus the sum
// of all bursts.
func (w Workload) Validate() error {
	horizon := 0
	for _, p := range w.processes {
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: process %q has burst time %d, must be >= 1", ErrInvalidParameter, p.Id, p.BurstTime)
		}
		if p.ArrivalTime > horizon {
			horizon = p.ArrivalTime
		}
	}
	for _, p := range w.processes {
		if horizon > math.MaxInt-p.BurstTime {
			return fmt.Errorf("%w: schedule of process %q would end past the time limit %d", ErrInvalidParameter, p.Id, math.MaxInt)
		}
		horizon += p.BurstTime
	}
	return nil
}

// TotalBurstTime sums the burst times. Call Validate first to rule out overflow.
func (w Workload) TotalBurstTime() int {
	total := 0
	for _, p := range w.processes {
		total += p.BurstTime
	}
	return total
}
