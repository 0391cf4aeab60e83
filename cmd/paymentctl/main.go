// Command paymentctl runs operator tasks against the payment engine: schema migrations,
// one-off reconciliation sweeps, single-transaction reconciliation and breaker inspection.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
