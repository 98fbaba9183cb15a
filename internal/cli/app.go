package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/bonfire/internal/config"
	"github.com/kailas-cloud/bonfire/internal/db"
	dbbadger "github.com/kailas-cloud/bonfire/internal/db/badger"
	dbmemory "github.com/kailas-cloud/bonfire/internal/db/memory"
	dbvalkey "github.com/kailas-cloud/bonfire/internal/db/valkey"
	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/graph"
	graphmemory "github.com/kailas-cloud/bonfire/internal/graph/memory"
	graphneo4j "github.com/kailas-cloud/bonfire/internal/graph/neo4j"
	logpkg "github.com/kailas-cloud/bonfire/internal/logger"
	"github.com/kailas-cloud/bonfire/internal/repository/document"
)

type (
	itemRepo        = document.Repo[domain.Item, domain.ItemPatch, *domain.Item]
	personRepo      = document.Repo[domain.Person, domain.PersonPatch, *domain.Person]
	reviewRepo      = document.Repo[domain.Review, domain.ReviewPatch, *domain.Review]
	publisherRepo   = document.Repo[domain.Publisher, domain.PublisherPatch, *domain.Publisher]
	transactionRepo = document.Repo[domain.Transaction, domain.NoPatch, *domain.Transaction]
)

// app is the composition root shared by every subcommand.
type app struct {
	cfg    config.Config
	env    string
	logger *zap.Logger

	store db.Store
	graph graph.Store

	items        *itemRepo
	persons      *personRepo
	reviews      *reviewRepo
	publishers   *publisherRepo
	transactions *transactionRepo
}

func loadConfig(opts *RootOptions) (config.Config, error) {
	if opts.ConfigPath != "" {
		return config.LoadFile(opts.ConfigPath)
	}
	return config.Load(opts.Env)
}

// newApp loads configuration, builds the logger and connects both stores.
func newApp(ctx context.Context, opts *RootOptions) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, err := logpkg.NewLogger(opts.Env, level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	a := &app{cfg: cfg, env: opts.Env, logger: logger}

	a.store, err = openDocumentStore(cfg.Documents)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	readiness := time.Duration(cfg.Documents.ReadinessTimeout) * time.Second
	if err := a.store.WaitForReady(ctx, readiness); err != nil {
		a.store.Close()
		return nil, fmt.Errorf("document store not ready: %w", err)
	}
	logger.Info("Connected to document store", zap.String("driver", cfg.Documents.Driver))

	a.graph, err = openGraphStore(ctx, cfg.Graph)
	if err != nil {
		a.store.Close()
		return nil, fmt.Errorf("open graph store: %w", err)
	}
	logger.Info("Connected to graph store", zap.String("driver", cfg.Graph.Driver))

	prefix := cfg.Documents.KeyPrefix
	a.items = document.New[domain.Item, domain.ItemPatch](a.store, prefix, domain.CollectionItems)
	a.persons = document.New[domain.Person, domain.PersonPatch](a.store, prefix, domain.CollectionPersons)
	a.reviews = document.New[domain.Review, domain.ReviewPatch](a.store, prefix, domain.CollectionReviews)
	a.publishers = document.New[domain.Publisher, domain.PublisherPatch](a.store, prefix, domain.CollectionPublishers)
	a.transactions = document.New[domain.Transaction, domain.NoPatch](a.store, prefix, domain.CollectionTransactions)

	return a, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.graph.Close(ctx); err != nil {
		a.logger.Error("Error closing graph store", zap.Error(err))
	}
	a.store.Close()
	_ = a.logger.Sync()
}

func openDocumentStore(cfg config.DocumentStoreConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DocumentDriverValkey:
		return dbvalkey.NewStore(dbvalkey.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
	case config.DocumentDriverBadger:
		return dbbadger.NewStore(dbbadger.Config{
			Path:     cfg.Path,
			InMemory: cfg.Path == "",
		})
	case config.DocumentDriverMemory:
		return dbmemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown document driver %q", cfg.Driver)
	}
}

func openGraphStore(ctx context.Context, cfg config.GraphStoreConfig) (graph.Store, error) {
	switch cfg.Driver {
	case config.GraphDriverNeo4j:
		exec, err := graphneo4j.NewExecutor(graphneo4j.Config{
			URI:      cfg.URI,
			Username: cfg.Username,
			Password: cfg.Password,
			Database: cfg.Database,
		})
		if err != nil {
			return nil, err
		}
		if err := exec.Verify(ctx); err != nil {
			_ = exec.Close(ctx)
			return nil, fmt.Errorf("verify connectivity: %w", err)
		}
		store := graphneo4j.NewStore(exec)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = exec.Close(ctx)
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return store, nil
	case config.GraphDriverMemory:
		return graphmemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown graph driver %q", cfg.Driver)
	}
}
