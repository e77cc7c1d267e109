package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/pedrobarros/ironlog/internal/cli"
	"github.com/pedrobarros/ironlog/internal/db"
	"github.com/pedrobarros/ironlog/internal/logger"
	"github.com/pedrobarros/ironlog/internal/repository"
	"github.com/pedrobarros/ironlog/internal/service"
	"github.com/pedrobarros/ironlog/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	debug := os.Getenv("IRONLOG_DEBUG") != ""

	// Determine DB path: env var or default ~/.ironlog/ironlog.db
	dbPath := os.Getenv("IRONLOG_DB")
	dataDir := filepath.Dir(dbPath)
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ironlog")
		dbPath = filepath.Join(dataDir, "ironlog.db")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	if err := logger.Init(logger.Config{Debug: debug, DataDir: dataDir}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	owner := os.Getenv("IRONLOG_USER")
	if owner == "" {
		owner = "local"
	}

	// IRONLOG_STORE=memory runs fully in-memory, useful for dry runs.
	var kv store.Store
	if os.Getenv("IRONLOG_STORE") == "memory" {
		kv = store.NewMemoryStore()
	} else {
		database, err := db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		kv = store.NewSQLiteStore(database)
	}
	ctx := context.Background()

	workoutRepo, err := repository.NewWorkoutRepo(ctx, kv, owner)
	if err != nil {
		return fmt.Errorf("loading workouts: %w", err)
	}
	progressRepo := repository.NewProgressRepo(kv, workoutRepo)
	recordRepo := repository.NewRecordRepo(kv, owner)
	achievementRepo := repository.NewAchievementRepo(kv, owner)

	var listener service.UnlockListener = service.NoopUnlockListener{}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		listener = cli.NewUnlockPrinter(os.Stdout)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if debug {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	achievementSvc := service.NewAchievementService(achievementRepo, workoutRepo, progressRepo, recordRepo, listener)

	app := &cli.App{
		Workouts:     service.NewWorkoutService(workoutRepo, observer),
		Progress:     service.NewProgressService(progressRepo, workoutRepo, achievementSvc, observer),
		Stats:        service.NewStatsService(workoutRepo, progressRepo),
		Records:      service.NewRecordService(recordRepo, achievementSvc, observer),
		Achievements: achievementSvc,
	}

	root := cli.NewRootCmd(app)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}
