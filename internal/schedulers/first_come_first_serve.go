package schedulers

import (
	"sort"

	"cpu-scheduling-simulator/internal/core"
)

// ScheduleFirstComeFirstServe runs processes in arrival order, each to
// completion. Simultaneous arrivals keep their input order.
func ScheduleFirstComeFirstServe(workload core.Workload) (core.SimulationResult, error) {
	if err := workload.Validate(); err != nil {
		return core.SimulationResult{}, err
	}

	// sort jobs by arrival time
	jobs := workload.Processes()
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	cpu := core.NewCPU()
	processDetails := make([]core.ProcessMetrics, 0, len(jobs))
	for _, job := range jobs {
		cpu.IdleUntil(job.ArrivalTime)
		responseTime := cpu.Now() - job.ArrivalTime
		interval := cpu.Execute(job, job.BurstTime)
		processDetails = append(processDetails, core.NewProcessMetrics(job, interval.EndTime, responseTime))
	}

	return Aggregate(core.FirstComeFirstServe, cpu.Timeline(), processDetails), nil
}
