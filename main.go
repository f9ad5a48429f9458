package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmunro/gigpitch/internal/claude"
	"github.com/dmunro/gigpitch/internal/config"
	"github.com/dmunro/gigpitch/internal/database"
	"github.com/dmunro/gigpitch/internal/dispatch"
	"github.com/dmunro/gigpitch/internal/generator"
	"github.com/dmunro/gigpitch/internal/mailer"
	"github.com/dmunro/gigpitch/internal/server"
)

func main() {
	cfg := config.LoadFromEnv()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		fatal("creating database", err)
	}
	defer db.Close()

	writer := claude.NewClient(cfg.AnthropicAPIKey, cfg.ClaudeModel, cfg.ClaudeTemperature)
	if !writer.IsConfigured() {
		fmt.Fprintln(os.Stderr, "Warning: ANTHROPIC_API_KEY not set, email generation disabled")
	}

	mail := initMailerService(cfg)
	gen := generator.New(db, writer)

	srv := server.New(server.Config{
		DB:        db,
		Generator: gen,
		Mail:      mail,
		Port:      cfg.HTTPPort,
	})
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "HTTP server error: %v\n", err)
		}
	}()

	worker := dispatch.NewWorker(db, mail, dispatch.Config{
		PollIntervalMinutes: cfg.PollIntervalMinutes,
	})
	if err := worker.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: dispatch worker not started: %v\n", err)
		fmt.Fprintln(os.Stderr, "Drafts will be generated but nothing will be sent")
	}

	fmt.Println("GigPitch is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "HTTP server shutdown error: %v\n", err)
	}

	fmt.Println("Goodbye!")
}

func initMailerService(cfg *config.Config) *mailer.Service {
	var mailers []mailer.Mailer

	gm, err := mailer.NewGmailMailer(cfg.GoogleCredentialsFile, cfg.GoogleTokenFile, cfg.EmailFrom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gmail mailer unavailable: %v\n", err)
	} else {
		mailers = append(mailers, gm)
	}

	if cfg.ResendAPIKey != "" {
		mailers = append(mailers, mailer.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom))
	}

	return mailer.NewService(mailers...)
}

func fatal(action string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	os.Exit(1)
}
