package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile TRANSACTION_ID",
	Short: "Query the gateway for one transaction and apply the answer",
	Args:  cobra.ExactArgs(1),
	RunE:  runReconcile,
}

func runReconcile(cmd *cobra.Command, args []string) error {
	engine, err := openEngine(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()

	txn, err := engine.Transactions.Reconcile(cmd.Context(), args[0])
	if txn == nil {
		return err
	}

	out, marshalErr := json.MarshalIndent(dto.NewTransactionResponse(txn), "", "  ")
	if marshalErr != nil {
		return marshalErr
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if errs.IsAmbiguousError(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Outcome still unknown: %v\n", err)
		return nil
	}
	return err
}
