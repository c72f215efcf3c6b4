package shared

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the API credentials and LLM settings shared by the server
// and the agent demo. All fields come from the environment; a .env file in
// the working directory is loaded first when present.
type Config struct {
	TavilyAPIKey      string `env:"TAVILY_API_KEY"`
	OpenWeatherAPIKey string `env:"OPENWEATHER_API_KEY"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	Model         string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
