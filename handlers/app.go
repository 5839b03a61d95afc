// handlers/app.go
package handlers

import (
	"partidas-service/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type AppOptions struct {
	AppName        string
	AllowedOrigins string
	GatewayToken   string
}

// NewApp builds the fiber app with the middleware chain and partida routes.
func NewApp(opts AppOptions, h *PartidaHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		ErrorHandler:          ErrorHandler(opts.AppName),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.CallerContext())
	app.Use(middleware.AccessLog())
	// inside AccessLog so panics still get an access line
	app.Use(recover.New())
	if opts.AllowedOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
			AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-User-ID, X-User-Roles",
			ExposeHeaders: "Link, X-Total-Count, X-Request-ID, X-" + opts.AppName + "-alert, X-" + opts.AppName + "-error, X-" + opts.AppName + "-params",
			MaxAge:        86400,
		}))
	}
	app.Use(middleware.GatewayAuthMiddleware(opts.GatewayToken, "/health"))

	SetupPartidaRoutes(app, h)
	return app
}
