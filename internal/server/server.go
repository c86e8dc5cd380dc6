package server

import (
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"witt-interpreter-be/internal/bootstrap"
	"witt-interpreter-be/internal/config"
	"witt-interpreter-be/internal/pkg/serverutils"
	"witt-interpreter-be/internal/websocket"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	registerRoutes(app, container)
	registerWebSocket(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.SearchController.RegisterRoutes(api)
	c.InterpretController.RegisterRoutes(api)
	c.InterpretationController.RegisterRoutes(api)
	c.FrameworkController.RegisterRoutes(api)
	c.QuestionController.RegisterRoutes(api)
}

func registerWebSocket(app *fiber.App, c *bootstrap.Container) {
	ws := app.Group("/ws")

	ws.Use(func(ctx *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	ws.Get("/interpretation/:id", fiberws.New(func(conn *fiberws.Conn) {
		runId, err := uuid.Parse(conn.Params("id"))
		if err != nil {
			conn.Close()
			return
		}
		websocket.ServeWs(c.WebSocketHub, conn, runId)
	}))
}
