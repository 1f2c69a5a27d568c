package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/generator"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	Register(app.Group("/api/v1"), NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		MaxTotalBurstTime:     1000,
		Generator:             generator.DefaultOptions(),
	}))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

const twoProcesses = `{"processes":[
	{"id":"P1","arrival_time":0,"burst_time":5},
	{"id":"P2","arrival_time":1,"burst_time":3}
]}`

func TestScheduleEndpoints(t *testing.T) {
	app := newTestApp()
	tests := []struct {
		path      string
		algorithm string
		intervals int
		totalTime int
	}{
		{"/api/v1/fcfs", "fcfs", 2, 8},
		{"/api/v1/sjf", "sjf", 2, 8},
		{"/api/v1/priority", "priority", 2, 8},
		{"/api/v1/rr", "rr", 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			resp := post(t, app, tt.path, twoProcesses)
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status %d", resp.StatusCode)
			}
			var got responses.ScheduleResponse
			decode(t, resp, &got)
			if got.Algorithm != tt.algorithm || got.SimulationId == "" {
				t.Errorf("unexpected header fields %+v", got)
			}
			if len(got.Timeline) != tt.intervals || got.TotalTime != tt.totalTime || len(got.Details) != 2 {
				t.Errorf("unexpected result %+v", got)
			}
		})
	}
}

func TestRoundRobinQuantumFromRequest(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/rr", `{"time_quantum":5,"processes":[
		{"id":"P1","arrival_time":0,"burst_time":5},
		{"id":"P2","arrival_time":1,"burst_time":3}
	]}`)
	var got responses.ScheduleResponse
	decode(t, resp, &got)
	if len(got.Timeline) != 2 {
		t.Errorf("quantum 5 should not preempt, got %d intervals", len(got.Timeline))
	}
}

func TestScheduleErrors(t *testing.T) {
	app := newTestApp()
	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/api/v1/fcfs", `{"processes":`},
		{"zero burst", "/api/v1/sjf", `{"processes":[{"id":"P1","burst_time":0}]}`},
		{"duplicate id", "/api/v1/priority", `{"processes":[{"id":"P1","burst_time":1},{"id":"P1","burst_time":2}]}`},
		{"negative arrival", "/api/v1/fcfs", `{"processes":[{"id":"P1","arrival_time":-1,"burst_time":1}]}`},
		{"zero quantum", "/api/v1/rr", `{"time_quantum":0,"processes":[{"id":"P1","burst_time":1}]}`},
		{"zero quantum compare", "/api/v1/all", `{"time_quantum":0,"processes":[{"id":"P1","burst_time":1}]}`},
		{"end time past max int", "/api/v1/fcfs", `{"processes":[{"id":"P1","arrival_time":9223372036854775800,"burst_time":100}]}`},
		{"total burst over limit", "/api/v1/rr", `{"time_quantum":1,"processes":[{"id":"P1","burst_time":600},{"id":"P2","burst_time":401}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.path, tt.body)
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("status %d, want 400", resp.StatusCode)
			}
			var got map[string]string
			decode(t, resp, &got)
			if got["error"] == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestEmptyWorkload(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/fcfs", `{"processes":[]}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var got responses.ScheduleResponse
	decode(t, resp, &got)
	if got.TotalTime != 0 || got.AverageWaitingTime != 0 || len(got.Details) != 0 {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestAllAlgorithms(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/all", twoProcesses)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var got responses.CompareResponse
	decode(t, resp, &got)
	if got.SimulationId == "" || len(got.Results) != 4 {
		t.Fatalf("unexpected comparison %+v", got)
	}
	for i, want := range []string{"fcfs", "sjf", "priority", "rr"} {
		if got.Results[i].Algorithm != want {
			t.Errorf("result %d is %s, want %s", i, got.Results[i].Algorithm, want)
		}
	}
}

func TestTableFormat(t *testing.T) {
	resp := post(t, newTestApp(), "/api/v1/all?format=table", twoProcesses)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{"Algorithm comparison", "Round-robin", "Gantt schedule"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRandomWorkload(t *testing.T) {
	app := newTestApp()
	get := func(path string) *http.Response {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	var first, second requests.ScheduleRequests
	decode(t, get("/api/v1/random?seed=7&count=4"), &first)
	decode(t, get("/api/v1/random?seed=7&count=4"), &second)
	if len(first.Jobs) != 4 {
		t.Fatalf("got %d jobs, want 4", len(first.Jobs))
	}
	for i := range first.Jobs {
		if first.Jobs[i].ProcessId != second.Jobs[i].ProcessId || first.Jobs[i].BurstTime != second.Jobs[i].BurstTime {
			t.Errorf("seeded generation is not reproducible at %d", i)
		}
	}

	for _, query := range []string{"count=abc", "count=-1", "count=7", "count=9223372036854775807"} {
		if resp := get("/api/v1/random?" + query); resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", query, resp.StatusCode)
		}
	}

	var largest requests.ScheduleRequests
	decode(t, get("/api/v1/random?seed=1&count=6"), &largest)
	if len(largest.Jobs) != 6 {
		t.Errorf("got %d jobs, want 6", len(largest.Jobs))
	}
	if resp := get("/api/v1/random?seed=x"); resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status %d, want 400", resp.StatusCode)
	}
}
