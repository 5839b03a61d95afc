// handlers/routes.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func SetupPartidaRoutes(app *fiber.App, h *PartidaHandler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/partidas", h.CreatePartida)
	api.Get("/partidas", h.GetAllPartidas)
	// registered before /:id so "count" is not taken for an id
	api.Get("/partidas/count", h.CountPartidas)
	api.Get("/partidas/:id", h.GetPartida)
	api.Put("/partidas/:id", h.UpdatePartida)
	api.Patch("/partidas/:id", h.PartialUpdatePartida)
	api.Delete("/partidas/:id", h.DeletePartida)

	app.Get("/ganadoresDeJuego", h.GanadoresDeJuego)
	app.Get("/partidasGanadas", h.PartidasGanadas)
}
