// Package factory wires application components together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/clock"
	"github.com/JunFolioGame/API-BackEnd/internal/dependencies/random"
	"github.com/JunFolioGame/API-BackEnd/internal/services/directory"
	"github.com/JunFolioGame/API-BackEnd/internal/services/partition"
	"github.com/JunFolioGame/API-BackEnd/internal/services/session"
	"github.com/JunFolioGame/API-BackEnd/internal/storage"
	"github.com/JunFolioGame/API-BackEnd/internal/storage/memory"
	redisstorage "github.com/JunFolioGame/API-BackEnd/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PartitionService  *partition.Service
	SessionController *session.Controller
	Directory         *directory.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DirectoryConfig holds configuration for the player directory (optional)
	// If zero value, defaults to directory.DefaultConfig()
	DirectoryConfig directory.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	dirCfg := cfg.DirectoryConfig
	if dirCfg.TokenDuration == 0 {
		dirCfg = directory.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, dirCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, dirCfg directory.Config, logger *slog.Logger) *App {
	dir := directory.New(store, clk, dirCfg, logger)
	partitionService := partition.New()
	sessionController := session.NewController(store, partitionService, dir, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		PartitionService:  partitionService,
		SessionController: sessionController,
		Directory:         dir,
	}
}
