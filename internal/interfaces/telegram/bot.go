package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/panjf2000/ants/v2"

	"github.com/prasetyowira/matchday/internal/domain/upcoming"
	"github.com/prasetyowira/matchday/internal/platform/logging"
	"github.com/prasetyowira/matchday/internal/usecase"
)

const callbackReportPrefix = "r:"

const helpText = "Commands: /upcoming, /report <match_id>"

// botAPI is the slice of the Telegram client the bot uses. It exists so
// handlers can be exercised without a live connection.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Config struct {
	UpdateTimeout     int
	WorkerPoolSize    int
	MatchesPerMessage int
	ButtonsPerRow     int
}

// Bot handles chat commands. Update handling runs on a bounded worker pool
// so one slow report fetch does not stall the polling loop.
type Bot struct {
	api      botAPI
	cfg      Config
	matches  *usecase.MatchService
	upcoming *usecase.UpcomingService
	logger   *logging.Logger
}

func New(token string, cfg Config, matches *usecase.MatchService, upcoming *usecase.UpcomingService, logger *logging.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	api.Debug = false

	bot := newWithAPI(api, cfg, matches, upcoming, logger)

	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "upcoming", Description: "Upcoming matches (filtered)"},
		tgbotapi.BotCommand{Command: "report", Description: "Text report for a match id"},
		tgbotapi.BotCommand{Command: "start", Description: "Help"},
	)
	if _, err := api.Request(commands); err != nil {
		bot.logger.Warn("set bot commands failed", "error", err)
	}

	return bot, nil
}

func newWithAPI(api botAPI, cfg Config, matches *usecase.MatchService, upcoming *usecase.UpcomingService, logger *logging.Logger) *Bot {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.UpdateTimeout <= 0 {
		cfg.UpdateTimeout = 30
	}
	if cfg.WorkerPoolSize < 1 {
		cfg.WorkerPoolSize = 1
	}
	if cfg.MatchesPerMessage < 1 {
		cfg.MatchesPerMessage = 10
	}
	if cfg.ButtonsPerRow < 1 {
		cfg.ButtonsPerRow = 2
	}
	return &Bot{
		api:      api,
		cfg:      cfg,
		matches:  matches,
		upcoming: upcoming,
		logger:   logger,
	}
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	pool, err := ants.NewPool(b.cfg.WorkerPoolSize)
	if err != nil {
		return fmt.Errorf("create bot worker pool: %w", err)
	}
	defer pool.Release()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.cfg.UpdateTimeout
	updates := b.api.GetUpdatesChan(updateConfig)

	b.logger.Info("telegram bot started", "workers", b.cfg.WorkerPoolSize)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			u := update
			if err := pool.Submit(func() { b.handleUpdate(ctx, u) }); err != nil {
				b.logger.WarnContext(ctx, "dispatch update failed", "error", err)
			}
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	chatID := update.Message.Chat.ID
	switch update.Message.Command() {
	case "start":
		b.send(tgbotapi.NewMessage(chatID, helpText))
	case "upcoming":
		b.handleUpcoming(ctx, chatID)
	case "report":
		b.handleReportCommand(ctx, chatID, update.Message.CommandArguments())
	}
}

func (b *Bot) handleUpcoming(ctx context.Context, chatID int64) {
	groups, err := b.upcoming.Groups(ctx)
	if err != nil {
		b.logger.ErrorContext(ctx, "upcoming fetch failed", "error", err)
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("API error: %v", err)))
		return
	}
	if len(groups) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "No upcoming matches for configured leagues."))
		return
	}

	for _, group := range groups {
		for _, batch := range upcoming.Paginate(group, b.cfg.MatchesPerMessage, b.cfg.ButtonsPerRow) {
			markup := inlineKeyboard(batch.Buttons)
			b.sendChunks(chatID, batch.Text, ListChunkLimit, &markup)
		}
	}
}

func (b *Bot) handleReportCommand(ctx context.Context, chatID int64, args string) {
	matchID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil || matchID <= 0 {
		b.send(tgbotapi.NewMessage(chatID, "Usage: /report <match_id>"))
		return
	}
	b.sendReport(ctx, chatID, matchID)
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	data := strings.TrimSpace(query.Data)
	if !strings.HasPrefix(data, callbackReportPrefix) {
		return
	}

	matchID, err := strconv.ParseInt(strings.TrimPrefix(data, callbackReportPrefix), 10, 64)
	if err != nil || matchID <= 0 {
		callback := tgbotapi.NewCallbackWithAlert(query.ID, "Invalid match id")
		if _, err := b.api.Request(callback); err != nil {
			b.logger.WarnContext(ctx, "answer callback failed", "error", err)
		}
		return
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "Building report...")); err != nil {
		b.logger.WarnContext(ctx, "answer callback failed", "error", err)
	}

	if query.Message == nil {
		return
	}
	b.sendReport(ctx, query.Message.Chat.ID, matchID)
}

func (b *Bot) sendReport(ctx context.Context, chatID, matchID int64) {
	text, err := b.matches.ReportText(ctx, matchID)
	if err != nil {
		b.logger.ErrorContext(ctx, "build report failed", "match_id", matchID, "error", err)
		b.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Report error for %d: %v", matchID, err)))
		return
	}
	b.sendChunks(chatID, text, ReportChunkLimit, nil)
}

// sendChunks delivers text in line-boundary chunks; the keyboard, when
// present, rides only on the last chunk.
func (b *Bot) sendChunks(chatID int64, text string, limit int, markup *tgbotapi.InlineKeyboardMarkup) {
	chunks := ChunkText(text, limit)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if markup != nil && i == len(chunks)-1 {
			msg.ReplyMarkup = *markup
		}
		b.send(msg)
	}
}

func (b *Bot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("send message failed", "chat_id", msg.ChatID, "error", err)
	}
}
