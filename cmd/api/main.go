package main

import (
	"context"
	"log"
	"time"

	"styleapi/config"
	"styleapi/controllers"
	"styleapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "styleapi@1.0.0",
			Debug:            false,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Recover()
		defer sentry.Flush(2 * time.Second)
	}

	llm, err := services.NewGoogleLLMProcessor(context.Background(), cfg.GoogleAPIKey)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}

	e := controllers.SetupServer(cfg, llm, services.NewSyntheticSuggestions())
	e.Debug = cfg.Environment == "local"

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	log.Printf("listening on %s (text model %s, image model %s)", cfg.Address(), cfg.TextModel, cfg.ImageModel)
	e.Logger.Fatal(e.Start(cfg.Address()))
}
