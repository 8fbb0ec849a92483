package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	setEnv := func(key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	t.Run("Success", func(t *testing.T) {
		setEnv("OPENAI_API_KEY", "openai_key")
		setEnv("MISTRAL_API_KEY", "mistral_key")
		setEnv("GEOAPIFY_KEY", "geo_key")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.OpenAIAPIKey != "openai_key" {
			t.Errorf("Expected OpenAIAPIKey to be 'openai_key', got '%s'", cfg.OpenAIAPIKey)
		}
		if cfg.MistralAPIKey != "mistral_key" {
			t.Errorf("Expected MistralAPIKey to be 'mistral_key', got '%s'", cfg.MistralAPIKey)
		}
		if cfg.GeoapifyKey != "geo_key" {
			t.Errorf("Expected GeoapifyKey to be 'geo_key', got '%s'", cfg.GeoapifyKey)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		setEnv("OPENAI_API_KEY", "openai_key")
		setEnv("MISTRAL_API_KEY", "mistral_key")
		os.Unsetenv("PORT")
		os.Unsetenv("OPENAI_BASE_URL")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Port != "3000" {
			t.Errorf("Expected default port '3000', got '%s'", cfg.Port)
		}
		if cfg.OpenAIBaseURL != "https://api.openai.com" {
			t.Errorf("Unexpected default OpenAI base URL: '%s'", cfg.OpenAIBaseURL)
		}
		if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
			t.Errorf("Unexpected default allowed origins: %v", cfg.AllowedOrigins)
		}
	})

	t.Run("OriginsSplitAndTrimmed", func(t *testing.T) {
		setEnv("OPENAI_API_KEY", "openai_key")
		setEnv("MISTRAL_API_KEY", "mistral_key")
		setEnv("ALLOWED_ORIGINS", "http://localhost:5173, https://gym-planner.app")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(cfg.AllowedOrigins) != 2 {
			t.Fatalf("Expected 2 origins, got %d", len(cfg.AllowedOrigins))
		}
		if cfg.AllowedOrigins[1] != "https://gym-planner.app" {
			t.Errorf("Expected trimmed origin, got '%s'", cfg.AllowedOrigins[1])
		}
	})

	t.Run("MissingOpenAIKey", func(t *testing.T) {
		setEnv("MISTRAL_API_KEY", "mistral_key")
		os.Unsetenv("OPENAI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing OPENAI_API_KEY, got nil")
		}
		expectedError := "OPENAI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("MissingMistralKey", func(t *testing.T) {
		setEnv("OPENAI_API_KEY", "openai_key")
		os.Unsetenv("MISTRAL_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing MISTRAL_API_KEY, got nil")
		}
	})
}
