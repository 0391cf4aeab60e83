package alert

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	coreport "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/core"
)

func ledgerAlert() coreport.Alert {
	return coreport.Alert{
		Severity: coreport.SeverityCritical,
		Title:    "Ledger write failed",
		Message:  "completed transaction has no ledger entry <after retries>",
		Fields:   map[string]any{"transaction_id": "txn-1", "attempts": 5},
	}
}

func TestTelegramAlerter(t *testing.T) {
	var (
		mu     sync.Mutex
		chatID string
		text   string
		mode   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, r.ParseMultipartForm(1<<20))
		mu.Lock()
		chatID, text, mode = r.FormValue("chat_id"), r.FormValue("text"), r.FormValue("parse_mode")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1767225600,"chat":{"id":-1001,"type":"supergroup"}}}`))
	}))
	defer srv.Close()

	alerter, err := NewTelegramAlerter(TelegramConfig{Token: "123:abc", ChatID: -1001, ServerURL: srv.URL}, logger.NewNoopLogger())
	require.NoError(t, err)

	require.NoError(t, alerter.Alert(context.Background(), ledgerAlert()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "-1001", chatID)
	assert.Equal(t, "HTML", mode)
	assert.Contains(t, text, "<b>Ledger write failed</b>")
	assert.Contains(t, text, "&lt;after retries&gt;")
	assert.Contains(t, text, "<code>transaction_id</code>: txn-1")
	assert.Less(t, strings.Index(text, "attempts"), strings.Index(text, "transaction_id"))
}

func TestTelegramAlerter_DeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	alerter, err := NewTelegramAlerter(TelegramConfig{Token: "123:abc", ChatID: 42, ServerURL: srv.URL}, logger.NewNoopLogger())
	require.NoError(t, err)

	assert.Error(t, alerter.Alert(context.Background(), ledgerAlert()))
}

func TestNewTelegramAlerter_RequiresCredentials(t *testing.T) {
	_, err := NewTelegramAlerter(TelegramConfig{ChatID: 1}, logger.NewNoopLogger())
	assert.Error(t, err)
	_, err = NewTelegramAlerter(TelegramConfig{Token: "123:abc"}, logger.NewNoopLogger())
	assert.Error(t, err)
}

func TestLogAlerter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	alerter := NewLogAlerter(logger.NewZapLoggerFromCore(core))

	require.NoError(t, alerter.Alert(context.Background(), ledgerAlert()))
	require.NoError(t, alerter.Alert(context.Background(), coreport.Alert{Severity: coreport.SeverityWarning, Title: "Breaker open"}))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "txn-1", entries[0].ContextMap()["transaction_id"])
	assert.Equal(t, "Ledger write failed", entries[0].ContextMap()["alert_title"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestMultiAlerter(t *testing.T) {
	first := mockcore.NewMockAlerter(t)
	second := mockcore.NewMockAlerter(t)
	deliveryErr := errors.New("telegram down")

	first.EXPECT().Alert(mock.Anything, mock.Anything).Return(deliveryErr).Once()
	second.EXPECT().Alert(mock.Anything, mock.Anything).Return(nil).Once()

	err := MultiAlerter{first, second}.Alert(context.Background(), ledgerAlert())
	assert.ErrorIs(t, err, deliveryErr)
}
