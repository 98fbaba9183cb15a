package bonfire

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

const (
	driverValkey = "valkey"
	driverBadger = "badger"
	driverNeo4j  = "neo4j"
	driverMemory = "memory"
)

type clientConfig struct {
	docDriver  string
	addrs      []string
	password   string
	badgerPath string
	keyPrefix  string

	graphDriver   string
	neo4jURI      string
	neo4jUser     string
	neo4jPassword string
	neo4jDatabase string

	defaultPageSize int
	maxPageSize     int

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithValkey stores documents in a Valkey instance with the JSON module.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.docDriver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithBadger stores documents in an embedded Badger database at path.
// An empty path keeps the database in memory.
func WithBadger(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.docDriver = driverBadger
		c.badgerPath = path
	})
}

// WithNeo4j keeps the relationship graph in a Neo4j server.
func WithNeo4j(uri, username, password, database string) Option {
	return optionFunc(func(c *clientConfig) {
		c.graphDriver = driverNeo4j
		c.neo4jURI = uri
		c.neo4jUser = username
		c.neo4jPassword = password
		c.neo4jDatabase = database
	})
}

// WithInMemory runs both stores inside the process. Nothing is persisted.
func WithInMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.docDriver = driverMemory
		c.graphDriver = driverMemory
	})
}

// WithKeyPrefix namespaces document keys. Default: "bonfire:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithPagination sets the default and maximum list page sizes. Defaults: 20 and 100.
func WithPagination(defaultSize, maxSize int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultPageSize = defaultSize
		c.maxPageSize = maxSize
	})
}

// WithLogger enables structured logging for client operations and graph sync warnings.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
