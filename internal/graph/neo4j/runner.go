package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner executes one Cypher query and returns the fully buffered result.
type Runner interface {
	Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error)
}

// Config holds connection parameters for a Neo4j server.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Executor is the driver-backed Runner.
type Executor struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewExecutor creates a driver. It does not dial; call Verify to check connectivity.
func NewExecutor(cfg Config) (*Executor, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("uri is required")
	}
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	return &Executor{driver: driver, database: cfg.Database}, nil
}

// Verify checks connectivity to the server.
func (e *Executor) Verify(ctx context.Context) error {
	return e.driver.VerifyConnectivity(ctx)
}

// Run executes query in a managed transaction, retrying transient failures per driver policy.
func (e *Executor) Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	opts := []neo4j.ExecuteQueryConfigurationOption{}
	if e.database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(e.database))
	}
	return neo4j.ExecuteQuery(ctx, e.driver, query, params, neo4j.EagerResultTransformer, opts...)
}

// Close releases the driver's connection pool.
func (e *Executor) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}
