package scheduler

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"

	"StockChat/internal/model"
	"StockChat/internal/recorder"
	"StockChat/internal/resolver"
)

// Sender delivers digest messages to a chat.
type Sender interface {
	SendText(chatID int64, text string) error
}

// Scheduler broadcasts a daily snapshot digest of the curated tickers.
type Scheduler struct {
	Cron     *cron.Cron
	Resolver *resolver.Resolver
	Sender   Sender
	Recorder recorder.Recorder
	Tickers  []string
	ChatID   int64
}

// NewScheduler creates a new Scheduler.
func NewScheduler(res *resolver.Resolver, sender Sender, rec recorder.Recorder, tickers []string, chatID int64) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Resolver: res,
		Sender:   sender,
		Recorder: rec,
		Tickers:  tickers,
		ChatID:   chatID,
	}
}

// RegisterDigest registers the digest cron task.
func (s *Scheduler) RegisterDigest(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.RunDigestNow); err != nil {
		return fmt.Errorf("register digest cron %q: %w", cronSpec, err)
	}
	return nil
}

// Start begins cron scheduling.
func (s *Scheduler) Start() { s.Cron.Start() }

// Stop halts cron scheduling.
func (s *Scheduler) Stop() { s.Cron.Stop() }

// RunDigestNow resolves a snapshot per curated ticker and sends the digest.
func (s *Scheduler) RunDigestNow() {
	log.Println("[INFO] running daily digest")

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Market digest | %s\n\n", time.Now().Format("2006-01-02")))

	sent := 0
	for _, t := range s.Tickers {
		snap := s.Resolver.Snapshot(t)
		if snap == nil {
			log.Printf("[WARN] digest: no data for %s", t)
			continue
		}
		if err := s.Recorder.RecordSnapshot(snap); err != nil {
			log.Printf("[WARN] record snapshot: %v", err)
		}
		b.WriteString(FormatSnapshotLine(snap))
		b.WriteString("\n")
		sent++
	}
	if sent == 0 {
		log.Println("[WARN] digest: nothing to send")
		return
	}

	if err := s.Sender.SendText(s.ChatID, b.String()); err != nil {
		log.Printf("[ERROR] send digest: %v", err)
	}
}

// FormatSnapshotLine renders one compact digest line for a snapshot.
func FormatSnapshotLine(snap *model.Snapshot) string {
	arrow := "▲"
	if snap.DayChange < 0 {
		arrow = "▼"
	}
	line := fmt.Sprintf("%s %.2f %s %s %.2f (%.2f%%) | vol %s",
		snap.Ticker, snap.LastPrice, snap.Currency,
		arrow, math.Abs(snap.DayChange), math.Abs(snap.DayChangePct),
		humanize.Comma(snap.Volume))
	if snap.DataSource == model.SourceDemo {
		line += " [demo data]"
	}
	return line
}
