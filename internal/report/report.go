// Package report renders simulation results as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"cpu-scheduling-simulator/internal/core"
)

// Render writes the title, Gantt chart and schedule table of result.
func Render(w io.Writer, result core.SimulationResult) {
	_, _ = fmt.Fprintf(w, "%s\n", result.Algorithm)
	OutputGantt(w, result.Timeline)
	OutputSchedule(w, result)
}

func OutputGantt(w io.Writer, timeline []core.ExecutionInterval) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var bars, ticks strings.Builder
	bars.WriteString("|")
	last := 0
	for _, interval := range timeline {
		if interval.StartTime > last {
			// idle gap
			bars.WriteString(center("-", 6) + "|")
			ticks.WriteString(pad(fmt.Sprint(last), 7))
		}
		bars.WriteString(center(interval.ProcessName, 6) + "|")
		ticks.WriteString(pad(fmt.Sprint(interval.StartTime), 7))
		last = interval.EndTime
	}
	ticks.WriteString(fmt.Sprint(last))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", ticks.String())
}

func OutputSchedule(w io.Writer, result core.SimulationResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		rows = append(rows, []string{
			m.ProcessName,
			fmt.Sprint(m.ArrivalTime),
			fmt.Sprint(m.BurstTime),
			fmt.Sprint(m.WaitingTime),
			fmt.Sprint(m.TurnaroundTime),
			fmt.Sprint(m.ResponseTime),
			fmt.Sprint(m.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", result.AverageResponseTime),
		fmt.Sprintf("Total\n%d", result.TotalTime)})
	table.Render()
}

// OutputComparison writes one row of aggregates per algorithm.
func OutputComparison(w io.Writer, results []core.SimulationResult) {
	_, _ = fmt.Fprintln(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Avg response", "Total", "Idle", "Utilization", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm.String(),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.TotalTime),
			fmt.Sprint(r.IdleTime),
			fmt.Sprintf("%.2f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.Throughput),
		})
	}
	table.Render()
}

// center and pad measure display columns, so wide runes keep bars aligned.
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}
