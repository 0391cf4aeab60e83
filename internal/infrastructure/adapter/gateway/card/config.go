// Package card talks to a card acquirer: tokenized charges, bank payouts, verification by
// reference and verif-hash webhooks.
package card

import (
	"errors"
	"time"
)

// Config holds the card gateway credentials and endpoints
type Config struct {
	BaseURL     string
	SecretKey   string // Bearer credential for API calls
	SecretHash  string // Value the gateway echoes in the verif-hash webhook header
	CallbackURL string // Payout results
	Currency    string
	Timeout     time.Duration
}

// Validate checks the settings needed to reach the gateway
func (c Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return errors.New("card base URL is required")
	case c.SecretKey == "":
		return errors.New("card secret key is required")
	case c.SecretHash == "":
		return errors.New("card webhook secret hash is required")
	}
	return nil
}
