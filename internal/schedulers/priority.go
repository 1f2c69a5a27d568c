package schedulers

import "cpu-scheduling-simulator/internal/core"

// SchedulePriority dispatches the ready process with the lowest priority
// value. Processes without a priority count as core.DefaultPriority.
func SchedulePriority(workload core.Workload) (core.SimulationResult, error) {
	return scheduleNonPreemptive(core.Priority, workload, core.Process.EffectivePriority)
}
