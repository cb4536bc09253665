package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dondeestakoko/easemyday/config"
	_ "github.com/dondeestakoko/easemyday/docs" // Swagger docs
	extractionHTTP "github.com/dondeestakoko/easemyday/internal/extraction/delivery/http"
	extractionUC "github.com/dondeestakoko/easemyday/internal/extraction/usecase"
	"github.com/dondeestakoko/easemyday/internal/httpserver"
	"github.com/dondeestakoko/easemyday/pkg/datemath"
	"github.com/dondeestakoko/easemyday/pkg/gcalendar"
	"github.com/dondeestakoko/easemyday/pkg/groq"
	"github.com/dondeestakoko/easemyday/pkg/gtasks"
	"github.com/dondeestakoko/easemyday/pkg/llmprovider"
	"github.com/dondeestakoko/easemyday/pkg/log"
)

// @title       EaseMyDay API
// @description Assistant backend that classifies free-form notes into agenda events, tasks and notes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EaseMyDay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 4. Transcription (optional, needs a Groq key)
	var transcriber extractionHTTP.Transcriber
	if key := groqAPIKey(cfg); key != "" {
		groqClient, gErr := groq.New(groq.Config{
			APIKey:       key,
			WhisperModel: cfg.Groq.WhisperModel,
		})
		if gErr != nil {
			logger.Warnf(ctx, "Transcription not available: %v", gErr)
		} else {
			transcriber = groqClient
		}
	} else {
		logger.Warn(ctx, "No Groq API key configured, /transcribe disabled")
	}

	// 5. DateMath parser
	timezone := cfg.GoogleCalendar.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Google Calendar and Tasks clients (optional)
	var calendarClient extractionUC.Calendar
	var tasksClient extractionUC.TaskWriter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, cErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if cErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = gcal
			logger.Info(ctx, "✅ Google Calendar initialized")
		}

		gt, tErr := gtasks.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if tErr != nil {
			logger.Warnf(ctx, "Google Tasks not available (optional): %v", tErr)
		} else {
			tasksClient = gt
			logger.Info(ctx, "✅ Google Tasks initialized")
		}
	} else {
		logger.Warn(ctx, "No Google credentials configured, agenda and to_do items will be stored only")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		LLM:         llm,
		Calendar:    calendarClient,
		Tasks:       tasksClient,
		Transcriber: transcriber,
		DateMath:    dateMathParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// groqAPIKey returns the key of the configured groq provider, if any.
func groqAPIKey(cfg *config.Config) string {
	for _, p := range cfg.LLM.Providers {
		if p.Name == "groq" && p.Enabled {
			return p.APIKey
		}
	}
	return ""
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
