package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prasetyowira/matchday/internal/domain/upcoming"
	"github.com/prasetyowira/matchday/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	defaultMatchesPerMessage = 10
	minMatchesPerMessage     = 1
	maxMatchesPerMessage     = 25

	defaultButtonsPerRow = 2
	minButtonsPerRow     = 1
	maxButtonsPerRow     = 4
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	SoccerDataBaseURL string
	SoccerDataToken   string
	SoccerDataTimeout time.Duration

	TelegramBotToken string
	BotUpdateTimeout int
	BotWorkerPool    int

	AllowedLeagueIDs  []int64
	UpcomingPerLeague int
	MatchesPerMessage int
	ButtonsPerRow     int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	soccerDataTimeout, err := getEnvAsDuration("SOCCERDATA_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOCCERDATA_TIMEOUT: %w", err)
	}

	allowedLeagueIDs, err := parseLeagueIDs(getEnv("ALLOWED_LEAGUE_IDS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse ALLOWED_LEAGUE_IDS: %w", err)
	}
	if len(allowedLeagueIDs) == 0 {
		allowedLeagueIDs = upcoming.DefaultAllowedLeagueIDs
	}

	upcomingPerLeague, err := getEnvAsInt("UPCOMING_MAX_PER_LEAGUE", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPCOMING_MAX_PER_LEAGUE: %w", err)
	}
	if upcomingPerLeague < 0 {
		upcomingPerLeague = 0
	}

	matchesPerMessage, err := getEnvAsInt("MATCHES_PER_MESSAGE", defaultMatchesPerMessage)
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCHES_PER_MESSAGE: %w", err)
	}
	buttonsPerRow, err := getEnvAsInt("BUTTONS_PER_ROW", defaultButtonsPerRow)
	if err != nil {
		return Config{}, fmt.Errorf("parse BUTTONS_PER_ROW: %w", err)
	}

	botUpdateTimeout, err := getEnvAsInt("BOT_UPDATE_TIMEOUT", 30)
	if err != nil {
		return Config{}, fmt.Errorf("parse BOT_UPDATE_TIMEOUT: %w", err)
	}
	botWorkerPool, err := getEnvAsInt("BOT_WORKER_POOL_SIZE", 16)
	if err != nil {
		return Config{}, fmt.Errorf("parse BOT_WORKER_POOL_SIZE: %w", err)
	}
	if botWorkerPool < 1 {
		botWorkerPool = 1
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("SERVICE_NAME", "matchday"),
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		SoccerDataBaseURL: getEnv("SOCCERDATA_BASE_URL", "https://api.soccerdataapi.com/"),
		SoccerDataToken:   strings.TrimSpace(getEnv("SOCCERDATA_TOKEN", "")),
		SoccerDataTimeout: soccerDataTimeout,

		TelegramBotToken: strings.TrimSpace(getEnv("TELEGRAM_BOT_TOKEN", "")),
		BotUpdateTimeout: botUpdateTimeout,
		BotWorkerPool:    botWorkerPool,

		AllowedLeagueIDs:  allowedLeagueIDs,
		UpcomingPerLeague: upcomingPerLeague,
		MatchesPerMessage: clamp(matchesPerMessage, minMatchesPerMessage, maxMatchesPerMessage),
		ButtonsPerRow:     clamp(buttonsPerRow, minButtonsPerRow, maxButtonsPerRow),
	}, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLeagueIDs(raw string) ([]int64, error) {
	parts := splitCSV(raw)
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid league id %q: %w", part, err)
		}
		if id <= 0 {
			return nil, fmt.Errorf("league id must be > 0, got %q", part)
		}
		out = append(out, id)
	}
	return out, nil
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
