package main

import (
	"context"
	"log"

	"gym-planner/internal/config"
	"gym-planner/internal/geocode"
	"gym-planner/internal/llm"
	"gym-planner/internal/mailer"
	"gym-planner/internal/notify"
	"gym-planner/internal/planner"
	"gym-planner/internal/server"
	"gym-planner/internal/weather"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	openaiClient := llm.NewOpenAIClient(cfg)
	mistralClient := llm.NewMistralClient(cfg)

	providers := []llm.ChatProvider{openaiClient, mistralClient}
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiClient.Close()
		providers = append(providers, geminiClient)
	}
	gateway := llm.NewGateway(providers...)

	weatherClient := weather.NewClient(cfg.OpenMeteoBaseURL)
	plannerSvc := planner.NewPlanner(weatherClient, gateway)

	deps := server.Deps{
		Planner: plannerSvc,
		OpenAI:  openaiClient,
		Mistral: mistralClient,
	}

	if cfg.GeoapifyKey != "" {
		deps.Geocoder = geocode.NewClient(cfg)
	} else {
		log.Printf("GEOAPIFY_KEY not set, geocoding disabled")
	}

	if cfg.MailRelayURL != "" && cfg.MailRelayKey != "" {
		deps.Mailer = mailer.New(cfg)
	} else {
		log.Printf("Mail relay not configured, email disabled")
	}

	if cfg.TelegramBotToken != "" {
		notifier, err := notify.NewNotifier(cfg.TelegramBotToken)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram notifier: %v", err)
		}
		deps.Notifier = notifier
	}

	srv := server.New(cfg, deps)
	log.Printf("Backend listening on http://localhost:%s", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
