// Package server exposes the HTTP API consumed by the survey frontend.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gym-planner/internal/config"
	"gym-planner/internal/mailer"
	"gym-planner/internal/planner"
	"gym-planner/internal/survey"
)

// PlanGenerator runs the plan-generation pipeline.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, answers survey.Answers) (planner.WeeklyPlan, error)
}

// ChatForwarder forwards raw chat messages to an LLM provider.
type ChatForwarder interface {
	Forward(ctx context.Context, messages json.RawMessage) (int, []byte, error)
}

// Geocoder resolves location autocomplete queries.
type Geocoder interface {
	Autocomplete(ctx context.Context, text string) ([]byte, error)
}

// MailSender relays transactional mail.
type MailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// PlanNotifier pushes a plan to a Telegram chat.
type PlanNotifier interface {
	SendPlan(chatID int64, plan planner.WeeklyPlan) error
}

// Deps are the collaborators wired into the server. Optional integrations
// (geocoder, mailer, notifier) may be left nil; their endpoints then answer
// 503.
type Deps struct {
	Planner  PlanGenerator
	OpenAI   ChatForwarder
	Mistral  ChatForwarder
	Geocoder Geocoder
	Mailer   MailSender
	Notifier PlanNotifier
}

// Server is the echo application.
type Server struct {
	echo *echo.Echo
	deps Deps
}

// New builds the server with routing and middleware configured.
func New(cfg *config.Config, deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("200K"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	s := &Server{echo: e, deps: deps}

	e.GET("/health", s.handleHealth)
	e.POST("/api/plan", s.handleGeneratePlan)
	e.POST("/api/openai", s.handleOpenAIProxy)
	e.POST("/api/mistral", s.handleMistralProxy)
	e.GET("/api/geoapify/autocomplete", s.handleGeocodeAutocomplete)
	e.POST("/api/email", s.handleSendEmail)
	e.POST("/api/notify/telegram", s.handleTelegramNotify)

	return s
}

// Handler exposes the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks serving HTTP on the given port.
func (s *Server) Start(port string) error {
	return s.echo.Start(":" + port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
