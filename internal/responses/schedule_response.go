package responses

import "cpu-scheduling-simulator/internal/core"

type IntervalResponse struct {
	ProcessId   string `json:"process_id"`
	ProcessName string `json:"process_name"`
	StartTime   int    `json:"start_time"`
	EndTime     int    `json:"end_time"`
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ProcessName    string `json:"process_name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type ScheduleResponse struct {
	SimulationId          string             `json:"simulation_id,omitempty"`
	Algorithm             string             `json:"algorithm"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Timeline              []IntervalResponse `json:"timeline"`
	Details               []ProcessResponse  `json:"details"`
}

type CompareResponse struct {
	SimulationId string             `json:"simulation_id"`
	Results      []ScheduleResponse `json:"results"`
}

func NewScheduleResponse(simulationId string, result core.SimulationResult) ScheduleResponse {
	timeline := make([]IntervalResponse, 0, len(result.Timeline))
	for _, interval := range result.Timeline {
		timeline = append(timeline, IntervalResponse{
			ProcessId:   interval.ProcessId,
			ProcessName: interval.ProcessName,
			StartTime:   interval.StartTime,
			EndTime:     interval.EndTime,
		})
	}

	details := make([]ProcessResponse, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		details = append(details, ProcessResponse{
			ProcessId:      m.ProcessId,
			ProcessName:    m.ProcessName,
			ArrivalTime:    m.ArrivalTime,
			BurstTime:      m.BurstTime,
			CompletionTime: m.CompletionTime,
			ResponseTime:   m.ResponseTime,
			TurnAroundTime: m.TurnaroundTime,
			WaitingTime:    m.WaitingTime,
		})
	}

	return ScheduleResponse{
		SimulationId:          simulationId,
		Algorithm:             string(result.Algorithm),
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnaroundTime,
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.Throughput,
		Timeline:              timeline,
		Details:               details,
	}
}
