package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/bonfire/internal/logger"
	"github.com/kailas-cloud/bonfire/internal/metrics"
	reconcileuc "github.com/kailas-cloud/bonfire/internal/usecase/reconcile"
)

// ReconcileOptions holds flags for the reconcile command.
type ReconcileOptions struct {
	DryRun bool
}

// NewReconcileCommand creates the reconcile subcommand.
func NewReconcileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReconcileOptions{}

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair drift between the document store and the graph",
		Long: `Removes graph nodes whose document no longer exists and creates
nodes for documents that have none. Prints the report as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd.Context(), rootOpts, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report differences without repairing them")

	return cmd
}

func runReconcile(ctx context.Context, rootOpts *RootOptions, opts *ReconcileOptions, out io.Writer) error {
	a, err := newApp(ctx, rootOpts)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	metrics.RegisterDomainMetrics()
	ctx = logpkg.ContextWithLogger(ctx, a.logger)
	ctx = logpkg.With(ctx, zap.String("command", "reconcile"))

	report, err := reconcileuc.New(a.graph, a.persons, a.items).Sweep(ctx, opts.DryRun)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if len(report.Failures) > 0 {
		return fmt.Errorf("%d repairs failed", len(report.Failures))
	}
	return nil
}
