package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/qotd/catalog"
	"github.com/danielhkuo/qotd/cliparse"
	"github.com/danielhkuo/qotd/cycle"
	"github.com/danielhkuo/qotd/db"
	"github.com/danielhkuo/qotd/jsonfile"
	"github.com/danielhkuo/qotd/ledger"
	"github.com/danielhkuo/qotd/models"
	"github.com/danielhkuo/qotd/notify"
	"github.com/danielhkuo/qotd/router"
)

func main() {
	// Load .env if present, then parse configuration
	_ = godotenv.Load()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Wire the storage backend
	var (
		catalogStore catalog.Store
		ledgerStore  ledger.Store
		resultStore  cycle.ResultStore
	)
	switch cfg.DatabaseType {
	case "file":
		catalogStore = jsonfile.NewCatalogStore(cfg.DataDir)
		ledgerStore = jsonfile.NewLedgerStore(cfg.DataDir)
		resultStore = jsonfile.NewResultStore(cfg.DataDir)
		slog.Info("Using file storage", "dir", cfg.DataDir)
	default:
		driver := "sqlite"
		if cfg.DatabaseType == "postgres" {
			driver = "postgres"
		}
		dbConn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "driver", driver)

		catalogStore = db.NewCatalogStore(dbConn)
		ledgerStore = db.NewLedgerStore(dbConn)
		resultStore = db.NewResultStore(dbConn)
	}

	// Domain wiring
	epoch, _ := time.Parse(models.DateLayout, cfg.EpochDate)
	led := ledger.New(ledgerStore)
	cat := catalog.New(catalogStore, epoch)

	var notifier notify.Notifier = notify.Log{}
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, cfg.TelegramAdminChatID)
		if err != nil {
			slog.Error("telegram setup failed", "error", err)
			os.Exit(1)
		}
		notifier = tg
		slog.Info("Telegram notifier ready", "chat_id", cfg.TelegramChatID)
	}

	dayCycle := cycle.New(cat, led, notifier, resultStore)
	schedule, err := cycle.ScheduleFromConfig(cfg)
	if err != nil {
		slog.Error("invalid schedule", "error", err)
		os.Exit(1)
	}
	scheduler := cycle.NewScheduler(dayCycle, schedule, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Run(ctx)
	slog.Info("Scheduler running", "post_time", cfg.PostTime, "epoch", cfg.EpochDate)

	// Create router and server
	mux := router.NewRouter(dayCycle, scheduler, led, cat, cfg)
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
