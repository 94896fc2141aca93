/**
 * @description
 * This package handles configuration management for the voice-agent-service.
 * It uses the Viper library to read configuration from environment variables
 * and an optional .env file, providing a centralized way to manage settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Placeholder credential values shipped in deployment templates. Leaving
// either in place keeps the service in mock mode: no outbound provider calls
// are attempted.
const (
	PlaceholderAPIKey  = "your_api_key_here"
	PlaceholderAgentID = "your_agent_id_here"
)

// Config holds all the configuration variables for the voice-agent-service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	ElevenLabsAPIKey  string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsAgentID string `mapstructure:"ELEVENLABS_AGENT_ID"`
	ElevenLabsBaseURL string `mapstructure:"ELEVENLABS_BASE_URL"`
	AgentAuthToken    string `mapstructure:"AGENT_AUTH_TOKEN"`
	StaticDir         string `mapstructure:"STATIC_DIR"`
	LogDebug          bool   `mapstructure:"LOG_DEBUG"`
	LogPretty         bool   `mapstructure:"LOG_PRETTY"`
}

// LoadConfig reads configuration from environment variables and an optional
// .env file in the given path.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ELEVENLABS_API_KEY", PlaceholderAPIKey)
	viper.SetDefault("ELEVENLABS_AGENT_ID", PlaceholderAgentID)
	viper.SetDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io")
	viper.SetDefault("AGENT_AUTH_TOKEN", "banking_agent_secure_token_2025")
	viper.SetDefault("STATIC_DIR", "static")
	viper.SetDefault("LOG_DEBUG", false)
	viper.SetDefault("LOG_PRETTY", false)

	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("ELEVENLABS_API_KEY")
	_ = viper.BindEnv("ELEVENLABS_AGENT_ID")
	_ = viper.BindEnv("ELEVENLABS_BASE_URL")
	_ = viper.BindEnv("AGENT_AUTH_TOKEN")
	_ = viper.BindEnv("STATIC_DIR")
	_ = viper.BindEnv("LOG_DEBUG")
	_ = viper.BindEnv("LOG_PRETTY")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("component", "config").Msg("failed to read .env file; using environment values")
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// PaaS platforms inject the listen port as PORT.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}

	return
}

// VoiceProviderConfigured reports whether both provider credentials are set to
// real values. False means call initiation runs in mock mode.
func (c Config) VoiceProviderConfigured() bool {
	key := strings.TrimSpace(c.ElevenLabsAPIKey)
	agent := strings.TrimSpace(c.ElevenLabsAgentID)
	if key == "" || key == PlaceholderAPIKey {
		return false
	}
	if agent == "" || agent == PlaceholderAgentID {
		return false
	}
	return true
}
