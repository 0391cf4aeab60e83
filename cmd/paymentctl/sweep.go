package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().Bool("once", false, "Run a single sweep and print its report")
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Reconcile quiet transactions and time out abandoned ones",
	Long: `Poll gateways for transactions that have been quiet past the staleness threshold,
time out those older than the timeout threshold and repair missing ledger entries.
Without --once the sweeper runs on its configured interval until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func runSweep(cmd *cobra.Command, args []string) error {
	once, _ := cmd.Flags().GetBool("once")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := openEngine(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()

	sweeper := engine.Transactions.Sweeper()
	if !once {
		sweeper.Start(ctx)
		<-ctx.Done()
		return nil
	}

	report, err := sweeper.RunOnce(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Examined:        %d\n", report.Examined)
	fmt.Fprintf(out, "Resolved:        %d\n", report.Resolved)
	fmt.Fprintf(out, "Timed out:       %d\n", report.TimedOut)
	fmt.Fprintf(out, "Unchanged:       %d\n", report.Unchanged)
	fmt.Fprintf(out, "Errors:          %d\n", report.Errors)
	fmt.Fprintf(out, "Ledger repaired: %d\n", report.LedgerRepaired)
	fmt.Fprintf(out, "Duration:        %s\n", report.Duration.Std())
	return nil
}
