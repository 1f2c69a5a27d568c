package core

import "fmt"

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
	RoundRobin          Algorithm = "rr"
)

// Algorithms lists every supported algorithm in comparison order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}

func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case Priority:
		return "Priority"
	case RoundRobin:
		return "Round-robin"
	}
	return string(a)
}

type ProcessMetrics struct {
	ProcessId      string
	ProcessName    string
	ArrivalTime    int
	BurstTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// NewProcessMetrics derives the per-process times from a completion time and
// the time from arrival to first dispatch.
func NewProcessMetrics(p Process, completionTime, responseTime int) ProcessMetrics {
	turnaroundTime := completionTime - p.ArrivalTime
	return ProcessMetrics{
		ProcessId:      p.Id,
		ProcessName:    p.Name,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: completionTime,
		WaitingTime:    turnaroundTime - p.BurstTime,
		TurnaroundTime: turnaroundTime,
		ResponseTime:   responseTime,
	}
}

type SimulationResult struct {
	Algorithm             Algorithm
	Timeline              []ExecutionInterval
	Metrics               []ProcessMetrics
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
	TotalTime             int
	IdleTime              int
	CpuUtilization        float64
	Throughput            float64
}

// MetricsFor returns the metrics of the process with the given id.
func (r SimulationResult) MetricsFor(processId string) (ProcessMetrics, bool) {
	for _, m := range r.Metrics {
		if m.ProcessId == processId {
			return m, true
		}
	}
	return ProcessMetrics{}, false
}
