package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockChat/internal/bot"
	"StockChat/internal/chatbot"
	"StockChat/internal/config"
	"StockChat/internal/provider"
	"StockChat/internal/recorder"
	"StockChat/internal/resolver"
	"StockChat/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockChat starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and resolver
	fetcher := provider.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	res := resolver.New(fetcher, nil)

	// Init chatbot
	cb := chatbot.New(res, cfg.Market.Tickers, nil)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram bot
	tb, err := bot.New(cfg.Telegram.BotToken, cb, res, rec,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		cfg.Market.ChartPeriod, cfg.Market.ChartInterval)
	if err != nil {
		log.Fatalf("[FATAL] init telegram bot: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init digest scheduler (needs a chat to broadcast to)
	var sched *scheduler.Scheduler
	if cfg.Telegram.ChatID != 0 {
		sched = scheduler.NewScheduler(res, tb, rec, cfg.Market.Tickers, cfg.Telegram.ChatID)
		if err := sched.RegisterDigest(cfg.Schedule.DigestCron); err != nil {
			log.Fatalf("[FATAL] register digest cron: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	} else {
		log.Println("[WARN] telegram.chat_id not set, digest disabled")
	}

	// Start Telegram polling
	go tb.Run(ctx)
	log.Println("[INFO] Telegram polling started")

	// Optional: run digest immediately on start
	if os.Getenv("RUN_ON_START") == "true" && sched != nil {
		log.Println("[INFO] RUN_ON_START enabled, executing digest now")
		go sched.RunDigestNow()
	}

	log.Println("[INFO] StockChat is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockChat stopped")
}
