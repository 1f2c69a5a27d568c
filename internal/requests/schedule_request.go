package requests

import (
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

type Job struct {
	ProcessId   string `json:"id"`
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    *int   `json:"priority,omitempty"`
}

type ScheduleRequests struct {
	TimeQuantum *int  `json:"time_quantum,omitempty"`
	Jobs        []Job `json:"processes"`
}

// Workload converts the request into a validated workload. Jobs without an
// id are numbered P1, P2, ... by position. Workloads whose burst times sum to
// more than maxTotalBurstTime are rejected; a limit below 1 disables the check.
func (r ScheduleRequests) Workload(maxTotalBurstTime int) (core.Workload, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if id == "" {
			id = fmt.Sprintf("P%d", i+1)
		}
		processes = append(processes, core.Process{
			Id:          id,
			Name:        job.Name,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	workload, err := core.NewWorkload(processes...)
	if err != nil {
		return core.Workload{}, err
	}
	if maxTotalBurstTime < 1 {
		return workload, nil
	}
	if err := workload.Validate(); err != nil {
		return core.Workload{}, err
	}
	if total := workload.TotalBurstTime(); total > maxTotalBurstTime {
		return core.Workload{}, fmt.Errorf("%w: total burst time %d exceeds limit %d", core.ErrInvalidParameter, total, maxTotalBurstTime)
	}
	return workload, nil
}

// Quantum returns the requested time quantum or fallback when none was sent.
func (r ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}

// JobsFromProcesses is the inverse of Workload, used to hand generated
// workloads back to clients.
func JobsFromProcesses(processes []core.Process) []Job {
	jobs := make([]Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, Job{
			ProcessId:   p.Id,
			Name:        p.Name,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		})
	}
	return jobs
}
