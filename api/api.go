package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/luggagemoose/factbot/pkg/discord"
	"github.com/luggagemoose/factbot/pkg/router"
)

// Server is the webhook server: one POST route, signature verification
// in front, the interaction router behind.
type Server struct {
	config   Config
	verifier discord.Verifier
	router   *router.Router
	logger   *slog.Logger
	app      *fiber.App
}

// NewServer creates a new webhook server.
// The verifier and router are injected so tests can substitute an
// always-allow verifier and an in-memory store.
func NewServer(config Config, verifier discord.Verifier, rtr *router.Router, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:   config,
		verifier: verifier,
		router:   rtr,
		logger:   logger,
		app:      app,
	}

	app.Post("/", s.handleInteraction)
	app.Use(s.handleNotFound)

	return s
}

// Run starts the webhook server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting webhook server",
		"listen", s.config.ListenAddr,
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the webhook server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
