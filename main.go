package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduling-simulator/api"
	"cpu-scheduling-simulator/config"
)

func main() {
	cfg := config.GetSchedulerConfig()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	v1 := app.Group("/api").Group("/v1")
	api.Register(v1, api.NewSchedulerHandlerImpl(cfg))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
