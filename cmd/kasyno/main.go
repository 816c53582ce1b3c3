package main

import (
	"log"
	"os"

	"github.com/marczelloo/kasyno/internal/config"
	"github.com/marczelloo/kasyno/internal/logging"
	"github.com/marczelloo/kasyno/pkg/casino"
	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/games/blackjack"
	"github.com/marczelloo/kasyno/pkg/games/roulette"
	"github.com/marczelloo/kasyno/pkg/games/slots"
	"github.com/marczelloo/kasyno/pkg/repositories/history"
	"github.com/marczelloo/kasyno/pkg/repositories/leaderboard"
	"github.com/marczelloo/kasyno/pkg/rng"
	"github.com/marczelloo/kasyno/pkg/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	// The terminal belongs to the game screens, so logs go to a file
	logger, err := logging.NewFileLogger(cfg.LogPath, logLevel(cfg))
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
		return 1
	}
	defer logger.Close()

	leaderboardRepo, err := leaderboard.NewFileRepository(cfg.LeaderboardPath)
	if err != nil {
		logger.Error("failed to open leaderboard file: %v", err)
		log.Printf("Failed to open leaderboard file: %v", err)
		return 1
	}

	// Round history is best effort: fall back to the in-memory store
	// when sqlite cannot be opened, so the casino still runs.
	var historyRepo history.Repository
	sqliteRepo, err := history.NewSQLiteRepository(cfg.HistoryDBPath)
	if err != nil {
		logger.Warn("failed to open history database, using in-memory store: %v", err)
		historyRepo = history.NewMemoryRepository()
	} else {
		historyRepo = sqliteRepo
	}
	defer historyRepo.Close()

	var random *rng.Rng
	if cfg.Seed != 0 {
		logger.Info("using fixed RNG seed %d", cfg.Seed)
		random = rng.NewSeeded(cfg.Seed)
	} else {
		random = rng.New()
	}

	terminal := ui.NewTerminal()

	c := casino.New(terminal, random, logger, leaderboardRepo, historyRepo)
	c.Register(entities.GameSlots, slots.New(random, terminal, c, c))
	c.Register(entities.GameRoulette, roulette.New(random, terminal, c, c))
	c.Register(entities.GameBlackjack, blackjack.New(random, terminal, c, c))

	logger.Info("casino started")
	c.Run()
	logger.Info("casino stopped")

	return 0
}

func logLevel(cfg *config.Config) logging.Level {
	if cfg.IsDevelopment() {
		return logging.DEBUG
	}
	return logging.INFO
}
