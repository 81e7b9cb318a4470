package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-mintgate/internal/adapter"
	"github.com/feral-file/ff-mintgate/internal/config"
	"github.com/feral-file/ff-mintgate/internal/domain"
	"github.com/feral-file/ff-mintgate/internal/genesis"
	"github.com/feral-file/ff-mintgate/internal/logger"
	"github.com/feral-file/ff-mintgate/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadDeployConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx := context.Background()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "deploy",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if cfg.GenesisPath == "" {
		logger.FatalCtx(ctx, "No genesis input configured, set genesis_path")
	}

	// Load and validate the deployment parameters
	loader := genesis.NewLoader(adapter.NewFileSystem(), adapter.NewJSON())
	input, err := loader.Load(cfg.GenesisPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load genesis input", zap.Error(err), zap.String("path", cfg.GenesisPath))
	}
	plan, err := genesis.PlanGenesis(input)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid genesis input", zap.Error(err), zap.String("path", cfg.GenesisPath))
	}
	for _, warning := range plan.Warnings {
		logger.WarnCtx(ctx, warning)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Refuse to deploy over an initialized journal
	existing, err := dataStore.GetGenesis(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to check for an existing genesis", zap.Error(err))
	}
	if len(existing) > 0 {
		logger.FatalCtx(ctx, "Genesis is already deployed, refusing to overwrite")
	}
	lastSeq, err := dataStore.GetLastSeq(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to check the journal", zap.Error(err))
	}
	if lastSeq > 0 {
		logger.FatalCtx(ctx, "Journal is not empty, refusing to deploy", zap.Uint64("last_seq", lastSeq))
	}

	if err := dataStore.InitGenesis(ctx, plan.Commit); err != nil {
		if errors.Is(err, domain.ErrGenesisExists) {
			logger.FatalCtx(ctx, "Genesis was deployed concurrently, refusing to overwrite")
		}
		logger.FatalCtx(ctx, "Failed to write genesis", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Genesis deployed",
		zap.Int("contracts", len(plan.Contracts)),
		zap.Int("allocations", len(input.Allocations)),
	)
	for _, c := range plan.Contracts {
		fmt.Printf("%-12s %s  %s (%s)\n", c.Kind, c.Address, c.Name, c.Symbol)
	}
}
