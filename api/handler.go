package api

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduling-simulator/config"
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/generator"
	"cpu-scheduling-simulator/internal/report"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/schedulers"
	"cpu-scheduling-simulator/internal/util"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	RandomWorkload(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the handler routes on router.
func Register(router fiber.Router, handler SchedulerHandler) {
	router.Post("/fcfs", handler.FirstComeFirstServe)
	router.Post("/sjf", handler.ShortestJobFirst)
	router.Post("/priority", handler.Priority)
	router.Post("/rr", handler.RoundRobin)
	router.Post("/all", handler.AllAlgorithms)
	router.Get("/random", handler.RandomWorkload)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, workload, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := schedulers.RunAll(workload, request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return writeError(ctx, err)
	}

	if wantsTable(ctx) {
		var b bytes.Buffer
		report.OutputComparison(&b, results)
		for _, result := range results {
			b.WriteString("\n")
			report.Render(&b, result)
		}
		return sendText(ctx, b.String())
	}

	response := responses.CompareResponse{
		SimulationId: uuid.NewString(),
		Results:      make([]responses.ScheduleResponse, 0, len(results)),
	}
	for _, result := range results {
		response.Results = append(response.Results, responses.NewScheduleResponse("", result))
	}
	log.Printf("response is: %s", util.Pretty(response))
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RandomWorkload(ctx *fiber.Ctx) error {
	seed := time.Now().UnixNano()
	if raw := ctx.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "seed must be an integer"})
		}
		seed = parsed
	}

	gen, err := generator.New(seed, s.config.Generator)
	if err != nil {
		return writeError(ctx, err)
	}

	count := gen.Count()
	if raw := ctx.Query("count"); raw != "" {
		maxCount := s.config.Generator.MaxProcesses
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > maxCount {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("count must be an integer in [0,%d]", maxCount)})
		}
		count = parsed
	}

	return ctx.JSON(requests.ScheduleRequests{
		Jobs: requests.JobsFromProcesses(gen.Processes(count)),
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm core.Algorithm) error {
	request, workload, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := schedulers.Run(algorithm, workload, request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return writeError(ctx, err)
	}

	if wantsTable(ctx) {
		var b bytes.Buffer
		report.Render(&b, result)
		return sendText(ctx, b.String())
	}

	response := responses.NewScheduleResponse(uuid.NewString(), result)
	log.Printf("response is: %s", util.Pretty(response))
	return ctx.JSON(response)
}

var errInvalidRequestFormat = errors.New("invalid request format")

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, core.Workload, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, core.Workload{}, errInvalidRequestFormat
	}
	workload, err := request.Workload(s.config.MaxTotalBurstTime)
	return request, workload, err
}

func writeError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errInvalidRequestFormat),
		errors.Is(err, core.ErrInvalidParameter),
		errors.Is(err, core.ErrMalformedProcess),
		errors.Is(err, core.ErrUnknownAlgorithm):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Println("can not process request:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

func wantsTable(ctx *fiber.Ctx) bool {
	return ctx.Query("format") == "table"
}

func sendText(ctx *fiber.Ctx, body string) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.SendString(body)
}
