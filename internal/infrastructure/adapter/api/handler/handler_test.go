package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"
	"github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/payment-orchestrator/mocks/port/usecase"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubBreakers []transport.BreakerStatus

func (s stubBreakers) Snapshot() []transport.BreakerStatus { return s }

type testAPI struct {
	router       *gin.Engine
	transactions *mockusecase.MockTransactionUseCase
	ledger       *mockusecase.MockLedgerUseCase
}

func newTestAPI(t *testing.T, pinger handler.Pinger, breakers handler.BreakerSnapshotter) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		router:       gin.New(),
		transactions: mockusecase.NewMockTransactionUseCase(t),
		ledger:       mockusecase.NewMockLedgerUseCase(t),
	}
	log := logger.NewNoopLogger()
	routes.SetupMiddlewares(api.router, log)
	routes.SetupRoutes(api.router, routes.Handlers{
		Transactions: handler.NewTransactionHandler(api.transactions, "KES", log),
		Callbacks:    handler.NewCallbackHandler(api.transactions, map[string]string{"card": "verif-hash"}, log),
		Ledger:       handler.NewLedgerHandler(api.ledger, "KES", log),
		Health:       handler.NewHealthHandler(pinger, breakers),
	})
	return api
}

func (a *testAPI) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func sampleTransaction(status entity.TransactionStatus) *entity.Transaction {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &entity.Transaction{
		ID:        "5d0f5f8e-2a7c-4c1b-8f57-0d6b3c9e1a21",
		OwnerID:   "owner-1",
		Direction: entity.DirectionCollection,
		Amount:    150000,
		Currency:  "KES",
		Purpose:   entity.PurposeDeposit,
		Gateway:   "mobileMoney",
		Type:      entity.TypeCollectionPush,
		Status:    status,
		CorrelationIDs: entity.CorrelationIDs{
			{Kind: entity.CorrelationCheckoutRequestID, Value: "ws_CO_1"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestTransactionHandler_Initiate(t *testing.T) {
	body := []byte(`{
		"ownerId":"owner-1","direction":"collection","amount":"1500.00","purpose":"deposit",
		"gateway":"mobileMoney","gatewayParams":{"msisdn":"254708374149"}}`)

	t.Run("Accepted transaction is 201", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		txn := sampleTransaction(entity.StatusProcessing)
		api.transactions.EXPECT().Initiate(mock.Anything, mock.MatchedBy(func(req usecase.InitiateRequest) bool {
			return req.Amount == 150000 && req.Currency == "KES" && req.GatewayParams["msisdn"] == "254708374149"
		})).Return(&usecase.InitiateResult{TransactionID: txn.ID, Status: txn.Status, Transaction: txn}, nil).Once()

		w := api.do(http.MethodPost, "/transactions", body, nil)
		require.Equal(t, http.StatusCreated, w.Code)

		resp := decode[dto.TransactionResponse](t, w)
		assert.Equal(t, txn.ID, resp.TransactionID)
		assert.Equal(t, entity.StatusProcessing, resp.Status)
		assert.Equal(t, "1500.00", resp.FormattedAmount)
		assert.Equal(t, "ws_CO_1", resp.CorrelationIDs["checkout_request_id"])
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Gateway refusal returns the failed transaction", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		txn := sampleTransaction(entity.StatusFailed)
		txn.ResultDescription = "insufficient float"
		rejection := domainerr.NewGatewayRejectedError(txn.ID, "mobileMoney", "insufficient float", errors.New("insufficient float"))
		api.transactions.EXPECT().Initiate(mock.Anything, mock.Anything).
			Return(&usecase.InitiateResult{TransactionID: txn.ID, Status: txn.Status, Transaction: txn}, rejection).Once()

		w := api.do(http.MethodPost, "/transactions", body, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.TransactionResponse](t, w)
		assert.Equal(t, entity.StatusFailed, resp.Status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, domainerr.CodeGatewayRejected, resp.Error.Code)
	})

	t.Run("Validation failure is 400", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		api.transactions.EXPECT().Initiate(mock.Anything, mock.Anything).
			Return(nil, domainerr.ErrInvalidPurpose).Once()

		w := api.do(http.MethodPost, "/transactions", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Malformed requests never reach the engine", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		for _, payload := range []string{
			`{`,
			`{"ownerId":"o","direction":"sideways","amount":"1","purpose":"deposit","gateway":"mobileMoney"}`,
			`{"ownerId":"o","direction":"collection","amount":"1.005","purpose":"deposit","gateway":"mobileMoney"}`,
			`{"ownerId":"o","direction":"collection","amount":"-5","purpose":"deposit","gateway":"mobileMoney"}`,
			`{"direction":"collection","amount":"1","purpose":"deposit","gateway":"mobileMoney"}`,
		} {
			w := api.do(http.MethodPost, "/transactions", []byte(payload), nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, payload)
		}
	})
}

func TestTransactionHandler_Lookups(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		txn := sampleTransaction(entity.StatusCompleted)
		api.transactions.EXPECT().GetStatus(mock.Anything, txn.ID).Return(txn, nil).Once()
		api.transactions.EXPECT().GetStatus(mock.Anything, "missing").Return(nil, domainerr.ErrTransactionNotFound).Once()

		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/transactions/"+txn.ID, nil, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/transactions/missing", nil, nil).Code)
	})

	t.Run("Cancel of a processing transaction conflicts", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		txn := sampleTransaction(entity.StatusProcessing)
		api.transactions.EXPECT().Cancel(mock.Anything, txn.ID).Return(txn, domainerr.ErrInvalidTransition).Once()

		w := api.do(http.MethodPost, "/transactions/"+txn.ID+"/cancel", nil, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Inconclusive reconcile is 202", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		txn := sampleTransaction(entity.StatusProcessing)
		api.transactions.EXPECT().Reconcile(mock.Anything, txn.ID).
			Return(txn, domainerr.NewAmbiguousOutcomeError(txn.ID, "poll", "500.001.1001", "still processing")).Once()

		w := api.do(http.MethodPost, "/transactions/"+txn.ID+"/reconcile", nil, nil)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, entity.StatusProcessing, decode[dto.TransactionResponse](t, w).Status)
	})

	t.Run("List by owner clamps the page", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		api.transactions.EXPECT().ListByOwner(mock.Anything, "owner-1", 100, 10).
			Return([]*entity.Transaction{sampleTransaction(entity.StatusCompleted)}, nil).Once()

		w := api.do(http.MethodGet, "/owners/owner-1/transactions?limit=1000&offset=10", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.TransactionListResponse](t, w)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, 100, resp.Limit)

		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/owners/owner-1/transactions?limit=abc", nil, nil).Code)
	})
}

func TestCallbackHandler_Handle(t *testing.T) {
	payload := []byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_1","ResultCode":0}}}`)

	testCases := []struct {
		name     string
		ack      *usecase.CallbackAck
		err      error
		expected int
	}{
		{"Applied", &usecase.CallbackAck{TransactionID: "t1", Status: entity.StatusCompleted, Applied: true}, nil, http.StatusOK},
		{"Duplicate", &usecase.CallbackAck{TransactionID: "t1", Status: entity.StatusCompleted}, nil, http.StatusOK},
		{"Bad signature", nil, domainerr.ErrUnauthenticated, http.StatusUnauthorized},
		{"Unknown correlation", nil, domainerr.ErrUnknownTransaction, http.StatusNotFound},
		{"Malformed", nil, domainerr.ErrInvalidCallback, http.StatusBadRequest},
		{"Ambiguous", &usecase.CallbackAck{TransactionID: "t1", Status: entity.StatusProcessing}, domainerr.ErrAmbiguous, http.StatusAccepted},
		{"Ledger failure", &usecase.CallbackAck{TransactionID: "t1", Status: entity.StatusCompleted, Applied: true},
			&domainerr.LedgerWriteError{TransactionID: "t1", Attempts: 5, Err: errors.New("disk full")}, http.StatusInternalServerError},
		{"Unsupported gateway", nil, domainerr.ErrUnsupportedGateway, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t, stubPinger{}, stubBreakers{})
			api.transactions.EXPECT().HandleCallback(mock.Anything, "mobileMoney", payload, "sig-1").
				Return(tc.ack, tc.err).Once()

			w := api.do(http.MethodPost, "/callbacks/mobileMoney", payload, map[string]string{"X-Signature": "sig-1"})
			assert.Equal(t, tc.expected, w.Code)
		})
	}

	t.Run("Gateway-specific signature header", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		api.transactions.EXPECT().HandleCallback(mock.Anything, "card", payload, "hash-123").
			Return(&usecase.CallbackAck{TransactionID: "t2", Status: entity.StatusFailed, Applied: true}, nil).Once()

		w := api.do(http.MethodPost, "/callbacks/card", payload, map[string]string{"verif-hash": "hash-123"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[dto.CallbackResponse](t, w).Applied)
	})
}

func TestLedgerHandler(t *testing.T) {
	entry := &entity.LedgerEntry{
		ID:            "e1",
		TransactionID: "t1",
		OwnerID:       "owner-1",
		Amount:        -2500,
		Currency:      "KES",
		Purpose:       entity.PurposeWithdrawal,
		Status:        entity.LedgerStatusSuccess,
	}

	t.Run("By transaction", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		api.ledger.EXPECT().GetByTransaction(mock.Anything, "t1").Return(entry, nil).Once()
		api.ledger.EXPECT().GetByTransaction(mock.Anything, "t2").Return(nil, domainerr.ErrLedgerEntryNotFound).Once()

		w := api.do(http.MethodGet, "/transactions/t1/ledger", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[entity.LedgerEntryResponse](t, w)
		assert.Equal(t, int64(-2500), resp.Amount)
		assert.Equal(t, "-25.00", resp.FormattedAmount)

		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/transactions/t2/ledger", nil, nil).Code)
	})

	t.Run("By owner", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		api.ledger.EXPECT().ListByOwner(mock.Anything, "owner-1", 20, 0).Return([]*entity.LedgerEntry{entry}, nil).Once()

		w := api.do(http.MethodGet, "/owners/owner-1/ledger", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[dto.LedgerListResponse](t, w).Items, 1)
	})

	t.Run("Balance", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{})
		api.ledger.EXPECT().Balance(mock.Anything, "owner-1", "UGX").Return(int64(12000), nil).Once()

		w := api.do(http.MethodGet, "/owners/owner-1/balance?currency=ugx", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.BalanceResponse](t, w)
		assert.Equal(t, "12000", resp.FormattedBalance)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("Open breaker degrades", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{}, stubBreakers{{Name: "mobileMoney", State: "open"}})
		w := api.do(http.MethodGet, "/healthz", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "degraded", decode[dto.HealthResponse](t, w).Status)
	})

	t.Run("Database down", func(t *testing.T) {
		api := newTestAPI(t, stubPinger{err: errors.New("connection refused")}, stubBreakers{})
		w := api.do(http.MethodGet, "/healthz", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
