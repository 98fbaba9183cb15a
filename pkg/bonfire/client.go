package bonfire

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/bonfire/internal/db"
	dbbadger "github.com/kailas-cloud/bonfire/internal/db/badger"
	dbmemory "github.com/kailas-cloud/bonfire/internal/db/memory"
	dbvalkey "github.com/kailas-cloud/bonfire/internal/db/valkey"
	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/graph"
	graphmemory "github.com/kailas-cloud/bonfire/internal/graph/memory"
	graphneo4j "github.com/kailas-cloud/bonfire/internal/graph/neo4j"
	analyticsrepo "github.com/kailas-cloud/bonfire/internal/repository/analytics"
	"github.com/kailas-cloud/bonfire/internal/repository/document"
	analyticsuc "github.com/kailas-cloud/bonfire/internal/usecase/analytics"
	cataloguc "github.com/kailas-cloud/bonfire/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/bonfire/internal/usecase/health"
	joinuc "github.com/kailas-cloud/bonfire/internal/usecase/join"
	reconcileuc "github.com/kailas-cloud/bonfire/internal/usecase/reconcile"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "bonfire:"
)

// Client is the bonfire SDK entry point.
type Client struct {
	store db.Store
	graph graph.Store

	catalog   *cataloguc.Service
	join      *joinuc.Service
	analytics *analyticsuc.Service
	health    *healthuc.Service
	reconcile *reconcileuc.Service
	obs       *observer
}

// New creates a Client and connects to both stores.
// The provided context is used for the readiness check and graph schema setup.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.docDriver == "" {
		return nil, errors.New("bonfire: document store required (use WithValkey, WithBadger or WithInMemory)")
	}
	if cfg.graphDriver == "" {
		return nil, errors.New("bonfire: graph store required (use WithNeo4j or WithInMemory)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("bonfire: document store not ready: %w", err)
	}

	g, err := createGraph(ctx, cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return wireClient(store, g, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.docDriver {
	case driverValkey:
		s, err := dbvalkey.NewStore(dbvalkey.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("bonfire: create valkey store: %w", err)
		}
		return s, nil
	case driverBadger:
		s, err := dbbadger.NewStore(dbbadger.Config{
			Path:     cfg.badgerPath,
			InMemory: cfg.badgerPath == "",
		})
		if err != nil {
			return nil, fmt.Errorf("bonfire: create badger store: %w", err)
		}
		return s, nil
	case driverMemory:
		return dbmemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("bonfire: unknown document driver %q", cfg.docDriver)
	}
}

func createGraph(ctx context.Context, cfg *clientConfig) (graph.Store, error) {
	switch cfg.graphDriver {
	case driverNeo4j:
		exec, err := graphneo4j.NewExecutor(graphneo4j.Config{
			URI:      cfg.neo4jURI,
			Username: cfg.neo4jUser,
			Password: cfg.neo4jPassword,
			Database: cfg.neo4jDatabase,
		})
		if err != nil {
			return nil, fmt.Errorf("bonfire: create neo4j driver: %w", err)
		}
		if err := exec.Verify(ctx); err != nil {
			_ = exec.Close(ctx)
			return nil, fmt.Errorf("bonfire: neo4j not ready: %w", err)
		}
		s := graphneo4j.NewStore(exec)
		if err := s.EnsureSchema(ctx); err != nil {
			_ = exec.Close(ctx)
			return nil, fmt.Errorf("bonfire: ensure graph schema: %w", err)
		}
		return s, nil
	case driverMemory:
		return graphmemory.NewStore(), nil
	default:
		return nil, fmt.Errorf("bonfire: unknown graph driver %q", cfg.graphDriver)
	}
}

func wireClient(store db.Store, g graph.Store, cfg *clientConfig, obs *observer) *Client {
	prefix := cfg.keyPrefix
	items := document.New[domain.Item, domain.ItemPatch](store, prefix, domain.CollectionItems)
	persons := document.New[domain.Person, domain.PersonPatch](store, prefix, domain.CollectionPersons)
	reviews := document.New[domain.Review, domain.ReviewPatch](store, prefix, domain.CollectionReviews)
	publishers := document.New[domain.Publisher, domain.PublisherPatch](store, prefix, domain.CollectionPublishers)
	transactions := document.New[domain.Transaction, domain.NoPatch](store, prefix, domain.CollectionTransactions)

	return &Client{
		store: store,
		graph: g,
		catalog: cataloguc.New(cataloguc.Repositories{
			Items:        items,
			Persons:      persons,
			Reviews:      reviews,
			Publishers:   publishers,
			Transactions: transactions,
		}, g).WithPagination(cfg.defaultPageSize, cfg.maxPageSize),
		join:      joinuc.New(g, items, persons),
		analytics: analyticsuc.New(analyticsrepo.New(items, reviews, publishers, transactions), persons),
		health:    healthuc.New(store, g),
		reconcile: reconcileuc.New(g, persons, items),
		obs:       obs,
	}
}

// Close releases both stores.
func (c *Client) Close(ctx context.Context) error {
	var err error
	if c.graph != nil {
		err = c.graph.Close(ctx)
	}
	if c.store != nil {
		c.store.Close()
	}
	return err
}

// Ping checks document store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Reconcile compares both stores and repairs graph drift.
// With dryRun the differences are reported but left in place.
func (c *Client) Reconcile(ctx context.Context, dryRun bool) (ReconcileReport, error) {
	return observed(ctx, c.obs, "reconcile", func(ctx context.Context) (ReconcileReport, error) {
		return c.reconcile.Sweep(ctx, dryRun)
	})
}

// Items returns the item service.
func (c *Client) Items() *ItemService {
	return &ItemService{catalog: c.catalog, join: c.join, obs: c.obs}
}

// Persons returns the person service.
func (c *Client) Persons() *PersonService {
	return &PersonService{catalog: c.catalog, join: c.join, analytics: c.analytics, obs: c.obs}
}

// Reviews returns the review service.
func (c *Client) Reviews() *ReviewService {
	return &ReviewService{catalog: c.catalog, obs: c.obs}
}

// Publishers returns the publisher service.
func (c *Client) Publishers() *PublisherService {
	return &PublisherService{catalog: c.catalog, analytics: c.analytics, obs: c.obs}
}

// Purchases returns the purchase and transaction service.
func (c *Client) Purchases() *PurchaseService {
	return &PurchaseService{catalog: c.catalog, obs: c.obs}
}

// Stats returns catalog-wide aggregations.
func (c *Client) Stats() *StatsService {
	return &StatsService{analytics: c.analytics, obs: c.obs}
}

// observed runs fn with the client logger in context and records the outcome.
func observed[T any](ctx context.Context, obs *observer, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	v, err := fn(obs.context(ctx))
	obs.observe(op, start, err)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func observedErr(ctx context.Context, obs *observer, op string, fn func(context.Context) error) error {
	_, err := observed(ctx, obs, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
