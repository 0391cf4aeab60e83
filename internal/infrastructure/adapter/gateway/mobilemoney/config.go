// Package mobilemoney talks to an STK-push style mobile money API: customer-initiated
// collections, business-to-customer disbursements, status queries and signed callbacks.
package mobilemoney

import (
	"errors"
	"time"
)

// Config holds the mobile money API credentials and endpoints
type Config struct {
	BaseURL            string
	ConsumerKey        string
	ConsumerSecret     string
	ShortCode          string
	PassKey            string
	InitiatorName      string
	SecurityCredential string
	CallbackURL        string // STK push results
	ResultURL          string // Disbursement results
	QueueTimeoutURL    string
	CallbackSecret     string // HMAC key for the X-Signature header
	Currency           string
	Timeout            time.Duration
}

// Validate checks the settings needed to reach the gateway
func (c Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return errors.New("mobile money base URL is required")
	case c.ConsumerKey == "" || c.ConsumerSecret == "":
		return errors.New("mobile money consumer key and secret are required")
	case c.ShortCode == "":
		return errors.New("mobile money short code is required")
	case c.CallbackSecret == "":
		return errors.New("mobile money callback secret is required")
	}
	return nil
}

func (c Config) currency() string {
	if c.Currency == "" {
		return "KES"
	}
	return c.Currency
}
