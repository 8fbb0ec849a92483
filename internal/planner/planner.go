package planner

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"gym-planner/internal/llm"
	"gym-planner/internal/survey"
	"gym-planner/internal/weather"
)

//go:embed system_prompt.md
var systemPrompt string

// WeatherSource provides the per-weekday forecast summary. An empty summary
// means enrichment was skipped or degraded.
type WeatherSource interface {
	Summary(ctx context.Context, latitude, longitude float64, workoutDays []string) weather.Summary
}

// ChatGateway generates text from a system prompt and user payload.
type ChatGateway interface {
	Complete(ctx context.Context, systemPrompt, userPayload string) (llm.Completion, error)
}

// Planner runs the plan-generation pipeline: weather enrichment, prompt
// assembly, LLM call with fallback, and markdown parsing.
type Planner struct {
	weather WeatherSource
	gateway ChatGateway
}

// NewPlanner creates a new Planner instance.
func NewPlanner(weatherSrc WeatherSource, gateway ChatGateway) *Planner {
	return &Planner{
		weather: weatherSrc,
		gateway: gateway,
	}
}

// GeneratePlan creates a weekly plan from the survey answers. Weather
// enrichment runs first and may degrade to empty; a gateway failure is
// terminal for the request.
func (p *Planner) GeneratePlan(ctx context.Context, answers survey.Answers) (WeeklyPlan, error) {
	summary := weather.Summary{}
	if answers.WantsWeather() && len(answers.WorkoutDays) > 0 {
		summary = p.weather.Summary(ctx, *answers.Latitude, *answers.Longitude, answers.WorkoutDays)
	}

	payload := survey.BuildPromptPayload(answers, summary)
	userMsg, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prompt payload: %w", err)
	}

	resp, err := p.gateway.Complete(ctx, systemPrompt, string(userMsg))
	if err != nil {
		return nil, fmt.Errorf("failed to generate weekly plan: %w", err)
	}

	return ParsePlan(resp.Content), nil
}
