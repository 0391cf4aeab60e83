package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
)

func init() {
	rootCmd.AddCommand(breakersCmd)
	breakersCmd.Flags().String("url", "http://localhost:8080", "Base URL of a running server")
}

var breakersCmd = &cobra.Command{
	Use:   "breakers",
	Short: "Show gateway circuit breaker states of a running server",
	Args:  cobra.NoArgs,
	RunE:  runBreakers,
}

func runBreakers(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("url")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(strings.TrimRight(baseURL, "/") + "/healthz")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	var health dto.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("decode health response: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Status: %s (database %s)\n\n", health.Status, health.Database)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GATEWAY\tSTATE\tFAILURES\tREQUESTS\tRESET AT")
	for _, b := range health.Breakers {
		resetAt := "-"
		if b.ResetAt != nil {
			resetAt = b.ResetAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", b.Name, b.State, b.ConsecutiveFailures, b.Requests, resetAt)
	}
	return w.Flush()
}
