package main

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/config/env"
	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/config/file"
	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/storage/mongo"
	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driving/cli"
	"github.com/custodia-labs/discrepancy-finder/internal/connectors/filesystem"
	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/core/services"
	"github.com/custodia-labs/discrepancy-finder/internal/logger"
	"github.com/custodia-labs/discrepancy-finder/internal/normalisers/table"
	"github.com/custodia-labs/discrepancy-finder/internal/rules"
)

// defaultRulesSource names the rule set used when no file exists.
const defaultRulesSource = "built-in defaults"

// closeTimeout bounds how long disconnecting from MongoDB may take.
const closeTimeout = 5 * time.Second

// storage bundles the stores of one backend.
type storage struct {
	documents     driven.DocumentStore
	discrepancies driven.DiscrepancyStore
	close         func() error
}

// newBootstrap returns the function that builds the services once the
// command line has been parsed.
func newBootstrap(settings *env.Settings) cli.Bootstrap {
	return func(ctx context.Context, opts cli.Options) (*cli.Services, func() error, error) {
		rulesPath := opts.RulesFile
		if rulesPath == "" {
			rulesPath = settings.RulesFile
		}

		ruleList, source, err := loadRules(rulesPath)
		if err != nil {
			return nil, nil, err
		}

		store, err := openStorage(ctx, settings)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("Using %s storage and %d rules from %s", settings.Storage.Backend, len(ruleList), source)

		pipeline := services.NewPipeline(
			filesystem.Factory{},
			table.New(),
			ruleList,
			store.documents,
			store.discrepancies,
		)

		return &cli.Services{
			Pipeline:      pipeline,
			Documents:     services.NewDocumentService(store.documents),
			Discrepancies: services.NewDiscrepancyService(store.discrepancies),
			Rules:         ruleList,
			RulesSource:   source,
		}, store.close, nil
	}
}

// loadRules builds the rule set from the TOML file at path. When the file
// does not exist the default rule set is used, unless path was given
// explicitly.
func loadRules(path string) ([]driven.Rule, string, error) {
	f, err := file.NewRuleSetFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve rule set file: %w", err)
	}

	configs := rules.DefaultConfigs()
	source := defaultRulesSource
	switch {
	case f.Exists():
		configs, err = f.Load()
		if err != nil {
			return nil, "", fmt.Errorf("load rule set %s: %w", f.Path(), err)
		}
		source = f.Path()
	case path != "":
		return nil, "", fmt.Errorf("%w: rule set file %s", domain.ErrNotFound, path)
	}

	ruleList, err := rules.DefaultRegistry().BuildAll(configs)
	if err != nil {
		return nil, "", fmt.Errorf("build rule set from %s: %w", source, err)
	}
	return ruleList, source, nil
}

// openStorage opens the configured backend.
func openStorage(ctx context.Context, settings *env.Settings) (*storage, error) {
	switch settings.Storage.Backend {
	case domain.StorageMemory:
		return &storage{
			documents:     memory.NewDocumentStore(),
			discrepancies: memory.NewDiscrepancyStore(),
		}, nil

	case domain.StorageSQLite:
		store, err := sqlite.NewStore(settings.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return &storage{
			documents:     store.DocumentStore(),
			discrepancies: store.DiscrepancyStore(),
			close:         store.Close,
		}, nil

	case domain.StorageMongo:
		cfg := mongo.DefaultConfig(settings.Database.MongoURL(), settings.Database.Name)
		cfg.ConnectTimeout = settings.Database.ConnectTimeout
		cfg.RetryAttempts = settings.Database.RetryAttempts
		cfg.RetryInterval = settings.Database.RetryInterval

		store, err := mongo.NewStore(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		return &storage{
			documents:     store.DocumentStore(),
			discrepancies: store.DiscrepancyStore(),
			close: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
				defer cancel()
				return store.Close(ctx)
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedBackend, settings.Storage.Backend)
	}
}
