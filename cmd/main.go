/**
 * @description
 * This is the main entry point for the voice-agent-service. It initializes
 * configuration, logging, the in-memory customer directory, the ElevenLabs
 * client and the application service, wires up the HTTP router and runs the
 * server with graceful shutdown.
 */

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/meridianbank/voice-agent-service/internal/api"
	"github.com/meridianbank/voice-agent-service/internal/app"
	"github.com/meridianbank/voice-agent-service/internal/config"
	"github.com/meridianbank/voice-agent-service/internal/store"
	"github.com/meridianbank/voice-agent-service/pkg/elevenlabs"
	"github.com/meridianbank/voice-agent-service/pkg/logger"
)

func main() {
	// A missing .env is fine; production injects real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Str("component", "bootstrap").Err(err).Msg("config load failed")
	}

	logger.Init(cfg.LogDebug, cfg.LogPretty)

	mockMode := !cfg.VoiceProviderConfigured()
	log.Info().
		Str("component", "bootstrap").
		Str("port", cfg.ServerPort).
		Bool("elevenlabs_api_key_set", cfg.ElevenLabsAPIKey != config.PlaceholderAPIKey && cfg.ElevenLabsAPIKey != "").
		Bool("elevenlabs_agent_id_set", cfg.ElevenLabsAgentID != config.PlaceholderAgentID && cfg.ElevenLabsAgentID != "").
		Bool("mock_mode", mockMode).
		Msg("starting voice-agent-service")

	repo := store.NewMemoryRepository(store.SeedCustomers(), store.SeedKnowledge())
	voiceClient := elevenlabs.NewClient(cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey, cfg.ElevenLabsAgentID)
	service := app.NewService(repo, voiceClient, mockMode)

	handlers := api.NewHandlers(service, cfg.StaticDir)
	verifier := api.NewStaticTokenVerifier(cfg.AgentAuthToken)
	router := api.Routes(handlers, verifier, cfg.StaticDir)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		log.Info().Str("component", "http").Str("addr", serverAddr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Str("component", "http").Err(err).Msg("server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Str("component", "http").Msg("shutdown started")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Str("component", "http").Err(err).Msg("shutdown failed")
	}

	log.Info().Str("component", "http").Msg("shutdown complete")
}
