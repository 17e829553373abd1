package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr/screening/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Candidates *handlers.CandidatesHandler
	Screening  *handlers.ScreeningHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	cg := v1.Group("/candidates", authMW)
	cg.Post("/", h.Candidates.Upload)
	cg.Get("/", h.Candidates.List)
	cg.Get("/:id", h.Candidates.Get)
	cg.Get("/:id/file", h.Candidates.Download)
	cg.Delete("/:id", h.Candidates.Delete)

	sg := v1.Group("/screening", authMW)
	sg.Post("/filter", h.Screening.Filter)
	sg.Post("/rank", h.Screening.Rank)
}
