package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"gym-planner/internal/mailer"
	"gym-planner/internal/planner"
	"gym-planner/internal/survey"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleGeneratePlan runs the full pipeline: survey answers in, WeeklyPlan
// out. A gateway failure (all providers down) maps to 502.
func (s *Server) handleGeneratePlan(c echo.Context) error {
	var answers survey.Answers
	if err := c.Bind(&answers); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	plan, err := s.deps.Planner.GeneratePlan(c.Request().Context(), answers)
	if err != nil {
		log.Printf("[server] plan generation failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to generate plan"})
	}

	return c.JSON(http.StatusOK, plan)
}

type proxyRequest struct {
	Messages json.RawMessage `json:"messages"`
}

func (s *Server) handleOpenAIProxy(c echo.Context) error {
	return s.forwardChat(c, s.deps.OpenAI)
}

func (s *Server) handleMistralProxy(c echo.Context) error {
	return s.forwardChat(c, s.deps.Mistral)
}

// forwardChat proxies a raw messages array to a provider and returns the
// provider response unmodified, status included.
func (s *Server) forwardChat(c echo.Context, forwarder ChatForwarder) error {
	var req proxyRequest
	if err := c.Bind(&req); err != nil || len(req.Messages) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing messages in body"})
	}

	status, body, err := forwarder.Forward(c.Request().Context(), req.Messages)
	if err != nil {
		log.Printf("[server] chat forward failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error"})
	}

	return c.JSONBlob(status, body)
}

func (s *Server) handleGeocodeAutocomplete(c echo.Context) error {
	if s.deps.Geocoder == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Geocoding is not configured"})
	}

	text := c.QueryParam("text")
	if text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing 'text' query param"})
	}

	body, err := s.deps.Geocoder.Autocomplete(c.Request().Context(), text)
	if err != nil {
		log.Printf("[server] geocode failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch location suggestions"})
	}

	return c.JSONBlob(http.StatusOK, body)
}

type emailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleSendEmail(c echo.Context) error {
	if s.deps.Mailer == nil {
		return c.JSON(http.StatusServiceUnavailable, emailResponse{Success: false, Message: "Email is not configured"})
	}

	var msg mailer.Message
	if err := c.Bind(&msg); err != nil {
		return c.JSON(http.StatusBadRequest, emailResponse{Success: false, Message: "Invalid request body"})
	}
	if msg.To == "" || msg.Subject == "" || (msg.HTML == "" && msg.Text == "") {
		return c.JSON(http.StatusBadRequest, emailResponse{Success: false, Message: "Missing required fields: to, subject, and html or text"})
	}

	if err := s.deps.Mailer.Send(c.Request().Context(), msg); err != nil {
		log.Printf("[server] email send failed: %v", err)
		return c.JSON(http.StatusInternalServerError, emailResponse{Success: false, Message: "Failed to send email"})
	}

	return c.JSON(http.StatusOK, emailResponse{Success: true, Message: "Email sent successfully"})
}

type notifyRequest struct {
	ChatID int64              `json:"chatId"`
	Plan   planner.WeeklyPlan `json:"plan"`
}

func (s *Server) handleTelegramNotify(c echo.Context) error {
	if s.deps.Notifier == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Telegram delivery is not configured"})
	}

	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.ChatID == 0 || len(req.Plan) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing chatId or plan"})
	}

	if err := s.deps.Notifier.SendPlan(req.ChatID, req.Plan); err != nil {
		log.Printf("[server] telegram notify failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to deliver plan"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
