package mobilemoney

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
)

// tokenRefreshMargin renews the access token before the gateway expires it
const tokenRefreshMargin = time.Minute

// TokenSource fetches and caches the OAuth client-credentials token
type TokenSource struct {
	cfg          Config
	client       *transport.Client
	timeProvider coreport.TimeProvider

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenSource creates a token source sharing the gateway client and breaker
func NewTokenSource(cfg Config, client *transport.Client, timeProvider coreport.TimeProvider) *TokenSource {
	return &TokenSource{
		cfg:          cfg,
		client:       client,
		timeProvider: timeProvider,
	}
}

// Token returns a cached token or fetches a new one
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.timeProvider.Now().Before(s.expiresAt) {
		return s.token, nil
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(s.cfg.ConsumerKey + ":" + s.cfg.ConsumerSecret))
	resp, err := s.client.Do(ctx, transport.Call{
		Operation: "oauth",
		Method:    http.MethodGet,
		URL:       s.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials",
		Header:    http.Header{"Authorization": []string{"Basic " + credentials}},
	})
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := resp.Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("fetch access token: empty token")
	}

	ttl := time.Hour
	if seconds, err := strconv.Atoi(body.ExpiresIn); err == nil && seconds > 0 {
		ttl = time.Duration(seconds) * time.Second
	}
	s.token = body.AccessToken
	s.expiresAt = s.timeProvider.Now().Add(ttl - tokenRefreshMargin)
	return s.token, nil
}

// Invalidate drops the cached token, e.g. after a 401
func (s *TokenSource) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}
