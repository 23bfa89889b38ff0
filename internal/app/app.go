package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prasetyowira/matchday/external/soccerdata"
	"github.com/prasetyowira/matchday/internal/config"
	"github.com/prasetyowira/matchday/internal/interfaces/httpapi"
	"github.com/prasetyowira/matchday/internal/interfaces/telegram"
	"github.com/prasetyowira/matchday/internal/platform/logging"
	"github.com/prasetyowira/matchday/internal/usecase"
)

type services struct {
	raw      *usecase.RawDataService
	matches  *usecase.MatchService
	upcoming *usecase.UpcomingService
}

func buildServices(cfg config.Config, logger *logging.Logger) (services, error) {
	if cfg.SoccerDataToken == "" {
		return services{}, fmt.Errorf("SOCCERDATA_TOKEN is required")
	}

	client := soccerdata.NewClient(soccerdata.ClientConfig{
		BaseURL: cfg.SoccerDataBaseURL,
		Token:   cfg.SoccerDataToken,
		Timeout: cfg.SoccerDataTimeout,
		Logger:  logger,
	})

	return services{
		raw:      usecase.NewRawDataService(client),
		matches:  usecase.NewMatchService(client, logger),
		upcoming: usecase.NewUpcomingService(client, cfg.AllowedLeagueIDs, cfg.UpcomingPerLeague, logger),
	}, nil
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	svcs, err := buildServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	requestLogger := newSlogLogger(cfg.LogLevel)
	handler := httpapi.NewHandler(svcs.raw, svcs.matches, svcs.upcoming, requestLogger)
	router := httpapi.NewRouter(handler, requestLogger)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func NewBot(cfg config.Config, logger *logging.Logger) (*telegram.Bot, error) {
	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	svcs, err := buildServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	return telegram.New(cfg.TelegramBotToken, telegram.Config{
		UpdateTimeout:     cfg.BotUpdateTimeout,
		WorkerPoolSize:    cfg.BotWorkerPool,
		MatchesPerMessage: cfg.MatchesPerMessage,
		ButtonsPerRow:     cfg.ButtonsPerRow,
	}, svcs.matches, svcs.upcoming, logger)
}

// newSlogLogger backs the HTTP request log. The rest of the service logs
// through the zap wrapper; the middleware stack speaks slog.
func newSlogLogger(level logging.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(level),
	}))
}

func slogLevel(level logging.Level) slog.Level {
	switch {
	case level <= logging.LevelDebug:
		return slog.LevelDebug
	case level == logging.LevelInfo:
		return slog.LevelInfo
	case level == logging.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
