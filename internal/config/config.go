package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the application.
type Config struct {
	Port           string
	AllowedOrigins []string

	// LLM providers
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	MistralAPIKey  string
	MistralBaseURL string
	GeminiAPIKey   string

	// Weather forecast (Open-Meteo)
	OpenMeteoBaseURL string

	// Geocoding (Geoapify)
	GeoapifyKey     string
	GeoapifyBaseURL string

	// Mail relay
	MailRelayURL string
	MailRelayKey string
	MailFrom     string

	// Telegram delivery (optional)
	TelegramBotToken string
}

// NewFromEnv creates a new Config object from environment variables.
// A .env file in the working directory is loaded first if present.
func NewFromEnv() (*Config, error) {
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	mistralKey := os.Getenv("MISTRAL_API_KEY")
	if mistralKey == "" {
		return nil, fmt.Errorf("MISTRAL_API_KEY environment variable not set")
	}

	origins := strings.Split(get("ALLOWED_ORIGINS", "http://localhost:5173"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Port:             get("PORT", "3000"),
		AllowedOrigins:   origins,
		OpenAIAPIKey:     openAIKey,
		OpenAIBaseURL:    get("OPENAI_BASE_URL", "https://api.openai.com"),
		MistralAPIKey:    mistralKey,
		MistralBaseURL:   get("MISTRAL_BASE_URL", "https://api.mistral.ai"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OpenMeteoBaseURL: get("OPEN_METEO_BASE_URL", "https://api.open-meteo.com"),
		GeoapifyKey:      os.Getenv("GEOAPIFY_KEY"),
		GeoapifyBaseURL:  get("GEOAPIFY_BASE_URL", "https://api.geoapify.com"),
		MailRelayURL:     os.Getenv("MAIL_RELAY_URL"),
		MailRelayKey:     os.Getenv("MAIL_RELAY_KEY"),
		MailFrom:         get("MAIL_FROM", "no-reply@gym-planner.app"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}, nil
}
