package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DataDir      string
	AdminKeySalt string

	// Daily schedule. EpochDate anchors the day index; PostTime is the
	// local wall-clock publish time in "15:04" form. The offsets drive the
	// rest of the cycle relative to PostTime. Shortened offsets give the
	// admin test sequence without a second code path.
	EpochDate         string
	PostTime          string
	PurgeBefore       time.Duration
	PreAnnounceBefore time.Duration
	WarnAfter         time.Duration
	CloseAfter        time.Duration
	VoteOpenAfter     time.Duration
	VoteCloseAfter    time.Duration

	// Telegram delivery. Empty token means announcements go to the log only.
	TelegramToken       string
	TelegramChatID      int64
	TelegramAdminChatID int64
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("qotd", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres DSN or sqlite path)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Storage backend (sqlite, postgres, or file)")
	fs.StringVar(&cfg.DataDir, "data", "", "Data directory for the file backend")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	// Schedule
	fs.StringVar(&cfg.EpochDate, "epoch", "", "Catalog epoch date (YYYY-MM-DD)")
	fs.StringVar(&cfg.PostTime, "post-time", "", "Daily post time (HH:MM)")
	fs.DurationVar(&cfg.PurgeBefore, "purge-before", 10*time.Minute, "Purge lead time before post")
	fs.DurationVar(&cfg.PreAnnounceBefore, "preannounce-before", 5*time.Minute, "Pre-announce lead time before post")
	fs.DurationVar(&cfg.WarnAfter, "warn-after", 4*time.Hour+50*time.Minute, "Closing warning offset after post")
	fs.DurationVar(&cfg.CloseAfter, "close-after", 5*time.Hour, "Submission close offset after post")
	fs.DurationVar(&cfg.VoteOpenAfter, "vote-open-after", 5*time.Hour+5*time.Minute, "Vote open offset after post")
	fs.DurationVar(&cfg.VoteCloseAfter, "vote-close-after", 6*time.Hour+10*time.Minute, "Vote close offset after post")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case "file":
		if cfg.DataDir == "" {
			cfg.DataDir = os.Getenv("DATA_DIR")
		}
		if cfg.DataDir == "" {
			cfg.DataDir = "./data"
		}
	default:
		return Config{}, errors.New("database type must be sqlite, postgres, or file")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	// Schedule anchors
	if cfg.EpochDate == "" {
		cfg.EpochDate = os.Getenv("EPOCH_DATE")
	}
	if cfg.EpochDate == "" {
		cfg.EpochDate = "2025-06-25"
	}
	if _, err := time.Parse("2006-01-02", cfg.EpochDate); err != nil {
		return Config{}, errors.New("invalid epoch date, want YYYY-MM-DD")
	}

	if cfg.PostTime == "" {
		cfg.PostTime = os.Getenv("POST_TIME")
	}
	if cfg.PostTime == "" {
		cfg.PostTime = "12:00"
	}
	if _, err := time.Parse("15:04", cfg.PostTime); err != nil {
		return Config{}, errors.New("invalid post time, want HH:MM")
	}

	// Offsets must keep the phases in order
	if cfg.WarnAfter >= cfg.CloseAfter || cfg.CloseAfter >= cfg.VoteOpenAfter || cfg.VoteOpenAfter >= cfg.VoteCloseAfter {
		return Config{}, errors.New("schedule offsets out of order (want warn < close < vote-open < vote-close)")
	}

	// Telegram is optional; all three come from env only
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if chatStr := os.Getenv("TELEGRAM_CHAT_ID"); chatStr != "" {
		chatID, err := strconv.ParseInt(chatStr, 10, 64)
		if err != nil {
			return Config{}, errors.New("invalid TELEGRAM_CHAT_ID env variable")
		}
		cfg.TelegramChatID = chatID
	}
	if chatStr := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); chatStr != "" {
		chatID, err := strconv.ParseInt(chatStr, 10, 64)
		if err != nil {
			return Config{}, errors.New("invalid TELEGRAM_ADMIN_CHAT_ID env variable")
		}
		cfg.TelegramAdminChatID = chatID
	} else {
		cfg.TelegramAdminChatID = cfg.TelegramChatID
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return Config{}, errors.New("TELEGRAM_CHAT_ID required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}
