package schedulers

import "cpu-scheduling-simulator/internal/core"

// ScheduleShortestJobFirst is non-preemptive: a shorter job arriving while
// another runs waits for the next decision point.
func ScheduleShortestJobFirst(workload core.Workload) (core.SimulationResult, error) {
	return scheduleNonPreemptive(core.ShortestJobFirst, workload, func(p core.Process) int {
		return p.BurstTime
	})
}
