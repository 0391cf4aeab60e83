package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/time"
)

type stateEvent struct {
	name    string
	state   int
	tripped bool
}

type recordingRecorder struct {
	calls  atomic.Int32
	states []stateEvent
}

func (r *recordingRecorder) GatewayCall(string, string, int, time.Duration) { r.calls.Add(1) }

func (r *recordingRecorder) BreakerStateChanged(name string, state int, tripped bool) {
	r.states = append(r.states, stateEvent{name, state, tripped})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg BreakerConfig) (*Client, *BreakerSet, *recordingRecorder, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	rec := &recordingRecorder{}
	clock := timeadapter.NewManualTimeProvider(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	breakers := NewBreakerSet(cfg, rec, logger.NewNoopLogger(), clock)
	client := NewClient("mobileMoney", srv.Client(), breakers, rec, logger.NewNoopLogger())
	return client, breakers, rec, srv.URL
}

func TestClient_Do(t *testing.T) {
	t.Run("Success decodes body", func(t *testing.T) {
		client, _, rec, url := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"ok":true}`))
		}, DefaultBreakerConfig())

		resp, err := client.Do(context.Background(), Call{
			Operation: "ping",
			Method:    http.MethodPost,
			URL:       url,
			Header:    http.Header{"Authorization": []string{"Bearer tok"}},
			Body:      map[string]any{"a": 1},
		})
		require.NoError(t, err)

		var out struct{ OK bool }
		require.NoError(t, resp.Decode(&out))
		assert.True(t, out.OK)
		assert.Equal(t, int32(1), rec.calls.Load())
	})

	t.Run("4xx is a rejection and doesn't trip the breaker", func(t *testing.T) {
		client, breakers, _, url := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errorMessage":"bad msisdn"}`))
		}, BreakerConfig{MaxRequests: 1, Timeout: time.Minute, ConsecutiveFailures: 1})

		for range 3 {
			_, err := client.Do(context.Background(), Call{Operation: "push", Method: http.MethodPost, URL: url})
			var rejected *RejectedError
			require.ErrorAs(t, err, &rejected)
			assert.ErrorIs(t, err, errs.ErrGatewayRejected)
			assert.Contains(t, rejected.Body, "bad msisdn")
		}
		assert.Equal(t, "closed", breakers.Snapshot()[0].State)
	})

	t.Run("Accept claims a non-2xx answer", func(t *testing.T) {
		client, _, _, url := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"errorCode":"500.001.1001"}`))
		}, DefaultBreakerConfig())

		resp, err := client.Do(context.Background(), Call{
			Operation: "query",
			Method:    http.MethodPost,
			URL:       url,
			Accept:    func(status int, body []byte) bool { return status == 500 },
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestBreakerSet_OpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	client, breakers, rec, url := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, BreakerConfig{MaxRequests: 1, Timeout: 30 * time.Second, ConsecutiveFailures: 2})

	call := Call{Operation: "push", Method: http.MethodPost, URL: url}
	for range 2 {
		_, err := client.Do(context.Background(), call)
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
	}

	_, err := client.Do(context.Background(), call)
	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	assert.Equal(t, int32(2), hits.Load(), "open breaker must not reach the gateway")

	snapshot := breakers.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "open", snapshot[0].State)
	require.NotNil(t, snapshot[0].OpenedAt)
	require.NotNil(t, snapshot[0].ResetAt)
	assert.Equal(t, 30*time.Second, snapshot[0].ResetAt.Sub(*snapshot[0].OpenedAt))

	require.NotEmpty(t, rec.states)
	last := rec.states[len(rec.states)-1]
	assert.True(t, last.tripped)
	assert.Equal(t, 2, last.state)
}

func TestBreakerSet_ExecutePassesThroughErrors(t *testing.T) {
	breakers := NewBreakerSet(DefaultBreakerConfig(), nil, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())
	boom := errors.New("boom")

	assert.ErrorIs(t, breakers.Execute("card", func() error { return boom }), boom)
	assert.NoError(t, breakers.Execute("card", func() error { return nil }))
	assert.Equal(t, uint32(0), breakers.Snapshot()[0].ConsecutiveFailures)
}

func TestVerifyHMAC(t *testing.T) {
	secret := []byte("s3cret")
	payload := []byte(`{"Body":{}}`)
	sig := SignHMAC(secret, payload)

	assert.NoError(t, VerifyHMAC(secret, payload, sig))
	assert.NoError(t, VerifyHMAC(secret, payload, "sha256="+sig))
	assert.ErrorIs(t, VerifyHMAC(secret, payload, ""), errs.ErrUnauthenticated)
	assert.ErrorIs(t, VerifyHMAC(secret, []byte(`{"Body":{"x":1}}`), sig), errs.ErrUnauthenticated)
	assert.ErrorIs(t, VerifyHMAC(nil, payload, sig), errs.ErrUnauthenticated)
}

func TestVerifySharedSecret(t *testing.T) {
	assert.NoError(t, VerifySharedSecret("hash", "hash"))
	assert.ErrorIs(t, VerifySharedSecret("hash", "other"), errs.ErrUnauthenticated)
	assert.ErrorIs(t, VerifySharedSecret("hash", ""), errs.ErrUnauthenticated)
	assert.ErrorIs(t, VerifySharedSecret("", "hash"), errs.ErrUnauthenticated)
}
