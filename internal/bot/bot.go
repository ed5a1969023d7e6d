package bot

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"StockChat/internal/cache"
	"StockChat/internal/chart"
	"StockChat/internal/chatbot"
	"StockChat/internal/recorder"
	"StockChat/internal/resolver"
)

// Bot is the Telegram shell: it owns the session surface, chart rendering
// and caching, and delegates every message to the chatbot.
type Bot struct {
	api      *tgbotapi.BotAPI
	chat     *chatbot.Chatbot
	res      *resolver.Resolver
	rec      recorder.Recorder
	charts   *cache.Cache[[]byte]
	period   string
	interval string
}

// New connects to the Telegram Bot API.
func New(token string, cb *chatbot.Chatbot, res *resolver.Resolver, rec recorder.Recorder, cacheTTL time.Duration, period, interval string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] telegram: authorized as @%s", api.Self.UserName)

	return &Bot{
		api:      api,
		chat:     cb,
		res:      res,
		rec:      rec,
		charts:   cache.New[[]byte](cacheTTL),
		period:   period,
		interval: interval,
	}, nil
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Println("[INFO] telegram polling stopped")
			return
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) handleMessage(m *tgbotapi.Message) {
	text := strings.TrimSpace(m.Text)
	log.Printf("[INFO] message from %d: %s", m.Chat.ID, text)

	if text == "/start" || text == "/help" {
		// Same capability message the chatbot gives for non-price text.
		resp := b.chat.Answer("")
		b.reply(m.Chat.ID, resp.Text)
		return
	}

	resp := b.chat.Answer(text)
	if err := b.rec.RecordQuery(&recorder.QueryEvent{
		Message: text,
		Reply:   resp.Text,
		Ticker:  resp.Ticker,
	}); err != nil {
		log.Printf("[WARN] record query: %v", err)
	}

	b.reply(m.Chat.ID, resp.Text)

	if resp.Ticker != "" {
		b.sendChart(m.Chat.ID, resp.Ticker)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("[ERROR] send reply: %v", err)
	}
}

// sendChart renders and sends the ticker's history chart, cache-first. An
// empty history series means the ticker has no data anywhere, so no chart
// is attempted.
func (b *Bot) sendChart(chatID int64, ticker string) {
	key := ticker + "|" + b.period + "|" + b.interval
	img, ok := b.charts.Get(key)
	if !ok {
		series := b.res.History(ticker, b.period, b.interval)
		if series.Empty() {
			return
		}
		var err error
		img, err = chart.Render(series)
		if err != nil {
			log.Printf("[WARN] render chart for %s: %v", ticker, err)
			return
		}
		b.charts.Set(key, img)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: ticker + ".png", Bytes: img})
	photo.Caption = ticker + " • " + b.period + " • " + b.interval
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("[ERROR] send chart: %v", err)
	}
}

// SendText pushes a message to an arbitrary chat. Used by the scheduler
// for digest broadcasts.
func (b *Bot) SendText(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
