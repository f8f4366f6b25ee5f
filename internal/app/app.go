// Package app wires Telegram updates to the emote search pipeline.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	tele "gopkg.in/telebot.v4"

	"emotebot/internal/emote"
)

const (
	welcomeText  = "Welcome"
	noResultText = ":("

	handlerTimeout = 30 * time.Second
	inlineCacheSec = 60
)

// Config groups startup parameters for the bot runtime.
type Config struct {
	TelegramToken string
}

// Validate ensures the configuration includes mandatory values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TelegramToken) == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	return nil
}

// Searcher is the aggregation pipeline the handlers call into.
type Searcher interface {
	Search(ctx context.Context, rawQuery string) []emote.Emote
}

// App wires Telegram updates to the emote aggregator.
type App struct {
	bot      *tele.Bot
	searcher Searcher
	logger   *log.Logger
}

// New initialises the Telegram bot.
func New(cfg Config, searcher Searcher, logger *log.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.TelegramToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("create telebot: %w", err)
	}

	app := &App{bot: bot, searcher: searcher, logger: logger}
	app.registerHandlers()
	return app, nil
}

// Run starts the Telegram polling loop and stops it when ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		a.logger.Info("shutting down poller")
		a.bot.Stop()
	}()
	a.bot.Start()
	return nil
}

func (a *App) registerHandlers() {
	a.bot.Handle("/start", func(c tele.Context) error {
		return c.Send(welcomeText)
	})
	a.bot.Handle(tele.OnText, a.handleText)
	a.bot.Handle(tele.OnQuery, a.handleInlineQuery)
}

// handleText replies with the first match as a photo, or a fixed text
// when nothing matched.
func (a *App) handleText(c tele.Context) error {
	msg := c.Message()
	if msg == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	result := a.searcher.Search(ctx, msg.Text)
	if len(result) == 0 {
		return c.Send(noResultText)
	}
	photo := &tele.Photo{File: tele.FromURL(emote.BTTVImageURL(result[0].ID))}
	return c.Send(photo)
}

// handleInlineQuery answers with one inline result per match, or the
// single "no results" article when the mapped list is empty.
func (a *App) handleInlineQuery(c tele.Context) error {
	query := c.Query()
	if query == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	result := a.searcher.Search(ctx, query.Text)
	return c.Answer(&tele.QueryResponse{
		Results:   buildInlineResults(result),
		CacheTime: inlineCacheSec,
	})
}
