package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"teamreg-bot/internal/bot"
	"teamreg-bot/internal/config"
	"teamreg-bot/internal/registration"
	"teamreg-bot/internal/server"
	"teamreg-bot/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := sheets.New(cfg.GoogleCredentialsPath, cfg.SpreadsheetID, cfg.SheetName)
	if err != nil {
		log.Fatalf("sheets: %v", err)
	}

	cache := registration.NewCache()

	botApp, err := bot.New(cfg, store, cache)
	if err != nil {
		log.Fatalf("discord: %v", err)
	}

	httpSrv := server.New(cfg, store)

	// Start HTTP server
	go func() {
		log.Printf("HTTP listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	// Start Discord
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := botApp.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("bot stopped: %v", err)
			cancel()
		}
	}()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	cancel()
	ctxTimeout, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = httpSrv.Shutdown(ctxTimeout)

	log.Println("bye")
}
