package core

// ExecutionInterval is a half-open span [StartTime, EndTime) during which one
// process held the CPU.
type ExecutionInterval struct {
	ProcessId   string
	ProcessName string
	StartTime   int
	EndTime     int
}

func (i ExecutionInterval) Duration() int {
	return i.EndTime - i.StartTime
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a single simulated core. It owns the simulation clock and records
// every dispatch as an ExecutionInterval in start order.
type CPU struct {
	currentTime int
	timeline    []ExecutionInterval
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]ExecutionInterval, 0)}
}

func (c *CPU) Now() int {
	return c.currentTime
}

// IdleUntil jumps the clock forward to t. Idle gaps produce no interval.
func (c *CPU) IdleUntil(t int) {
	if t > c.currentTime {
		c.currentTime = t
	}
}

// Execute runs process for duration time units starting at the current clock.
func (c *CPU) Execute(process Process, duration int) ExecutionInterval {
	interval := ExecutionInterval{
		ProcessId:   process.Id,
		ProcessName: process.Name,
		StartTime:   c.currentTime,
		EndTime:     c.currentTime + duration,
	}
	c.timeline = append(c.timeline, interval)
	c.currentTime = interval.EndTime
	return interval
}

func (c *CPU) Timeline() []ExecutionInterval {
	timeline := make([]ExecutionInterval, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}

// MeasureTimeline derives CPU accounting from a timeline. TotalTime is the
// latest end time, idle time is everything before it that no interval covers.
func MeasureTimeline(timeline []ExecutionInterval) CpuMetric {
	var metric CpuMetric
	for _, interval := range timeline {
		metric.UtilizationTime += interval.Duration()
		if interval.EndTime > metric.TotalTime {
			metric.TotalTime = interval.EndTime
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}
