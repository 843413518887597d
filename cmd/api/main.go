package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"imagestudio/internal/http/handlers"
	httpapi "imagestudio/internal/http/httpapi"
	"imagestudio/internal/infra"
	"imagestudio/internal/providers/gemini"
	"imagestudio/internal/studio"
)

func main() {
	// Optional .env
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	remote, err := gemini.NewClient(ctx, gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		EditModel:  cfg.GeminiEditModel,
		ImageModel: cfg.GeminiImageModel,
		TextModel:  cfg.GeminiTextModel,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create gemini client")
	}

	dispatcher, err := studio.NewDispatcher(remote, studio.DispatcherOptions{
		OutputMIMEType: cfg.OutputMIMEType,
		Logger:         &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create dispatcher")
	}
	translator, err := studio.NewTranslator(remote, studio.TranslatorOptions{
		TargetLanguage: cfg.TranslateTarget,
		Logger:         &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create translator")
	}

	sessions := handlers.NewSessionStore(cfg.SessionIdleTTL)
	go sessions.Run(ctx, time.Minute)

	app, err := handlers.NewApp(sessions, dispatcher, translator, studio.NewEncoder(cfg.MaxUploadBytes))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to assemble handlers")
	}

	router := httpapi.NewRouter(app, logger, httpapi.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigin,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("target_lang", translator.Target().String()).Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Error().Err(err).Msg("http server failed")
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
