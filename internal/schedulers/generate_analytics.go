package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/util"
)

// Aggregate builds a SimulationResult from a scheduler's timeline and
// per-process metrics. An empty workload yields zero for every aggregate.
func Aggregate(algorithm core.Algorithm, timeline []core.ExecutionInterval, processDetails []core.ProcessMetrics) core.SimulationResult {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)
	cpuMetric := core.MeasureTimeline(timeline)

	var throughput float64
	if cpuMetric.TotalTime > 0 {
		throughput = float64(len(processDetails)) / float64(cpuMetric.TotalTime)
	}

	return core.SimulationResult{
		Algorithm:             algorithm,
		Timeline:              timeline,
		Metrics:               processDetails,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization(),
		Throughput:            throughput,
	}
}
