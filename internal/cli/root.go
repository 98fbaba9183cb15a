package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/bonfire/internal/version"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Env        string // selects config/<env>.yaml and the logger flavour
	ConfigPath string // explicit config file; overrides Env lookup
	LogLevel   string
}

// NewRootCommand creates the root command for the bonfire binary.
// Without a subcommand it serves the HTTP API.
func NewRootCommand(defaultEnv string) *cobra.Command {
	opts := &RootOptions{}

	serve := NewServeCommand(opts)
	cmd := &cobra.Command{
		Use:           "bonfire",
		Short:         "Bonfire - game catalog with a social graph",
		Long:          "Serves the catalog API over a document store and a relationship graph.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Env == "" {
				return fmt.Errorf("env must not be empty")
			}
			return nil
		},
		RunE: serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.Env, "env", defaultEnv, "environment name (local|dev|docker|prod|test)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file (default config/<env>.yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "override logging.level (debug|info|warn|error)")

	cmd.AddCommand(serve)
	cmd.AddCommand(NewReconcileCommand(opts))

	return cmd
}
