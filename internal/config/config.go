package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document store drivers.
const (
	DocumentDriverValkey = "valkey"
	DocumentDriverBadger = "badger"
	DocumentDriverMemory = "memory"
)

// Graph store drivers.
const (
	GraphDriverNeo4j  = "neo4j"
	GraphDriverMemory = "memory"
)

// Config holds the bonfire API configuration.
type Config struct {
	HTTP       HTTPConfig          `yaml:"http"`
	Documents  DocumentStoreConfig `yaml:"document_store"`
	Graph      GraphStoreConfig    `yaml:"graph_store"`
	Auth       AuthConfig          `yaml:"auth"`
	Pagination PaginationConfig    `yaml:"pagination"`
	Logging    LoggingConfig       `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DocumentStoreConfig selects and configures the document backend.
type DocumentStoreConfig struct {
	Driver           string   `yaml:"driver"` // valkey, badger, memory (default: valkey)
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	Path             string   `yaml:"path"` // badger directory; empty runs badger in memory
	KeyPrefix        string   `yaml:"key_prefix"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// GraphStoreConfig selects and configures the graph backend.
type GraphStoreConfig struct {
	Driver   string `yaml:"driver"` // neo4j, memory (default: neo4j)
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PaginationConfig holds list and ranking limits.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
	MaxRankingLimit int `yaml:"max_ranking_limit"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references and applying defaults.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Documents.Driver == "" {
		c.Documents.Driver = DocumentDriverValkey
	}
	if c.Documents.ReadinessTimeout <= 0 {
		c.Documents.ReadinessTimeout = 10
	}
	if c.Documents.KeyPrefix == "" {
		c.Documents.KeyPrefix = "bonfire:"
	}
	if c.Graph.Driver == "" {
		c.Graph.Driver = GraphDriverNeo4j
	}
	if c.Graph.Database == "" {
		c.Graph.Database = "neo4j"
	}
	if c.Pagination.DefaultPageSize <= 0 {
		c.Pagination.DefaultPageSize = 20
	}
	if c.Pagination.MaxPageSize <= 0 {
		c.Pagination.MaxPageSize = 100
	}
	if c.Pagination.MaxRankingLimit <= 0 {
		c.Pagination.MaxRankingLimit = 100
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}

	switch c.Documents.Driver {
	case DocumentDriverValkey:
		if len(c.Documents.Addrs) == 0 {
			return fmt.Errorf("document_store.addrs is required for the valkey driver")
		}
	case DocumentDriverBadger, DocumentDriverMemory:
	default:
		return fmt.Errorf("document_store.driver must be valkey, badger or memory, got %q", c.Documents.Driver)
	}

	switch c.Graph.Driver {
	case GraphDriverNeo4j:
		if c.Graph.URI == "" {
			return fmt.Errorf("graph_store.uri is required for the neo4j driver")
		}
	case GraphDriverMemory:
	default:
		return fmt.Errorf("graph_store.driver must be neo4j or memory, got %q", c.Graph.Driver)
	}

	if c.Pagination.DefaultPageSize > c.Pagination.MaxPageSize {
		return fmt.Errorf("pagination.default_page_size (%d) exceeds max_page_size (%d)",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
