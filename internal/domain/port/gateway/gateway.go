package gateway

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
)

// Gateway names
const (
	MobileMoney = "mobileMoney"
	Card        = "card"
)

// Request is what an adapter needs to start a money movement
type Request struct {
	TransactionID string
	OwnerID       string
	Direction     entity.Direction
	Amount        int64
	Currency      string
	Purpose       entity.Purpose
	Params        map[string]string // Gateway-specific inputs such as msisdn or card token
}

// Ack is the gateway's synchronous acceptance of a request
type Ack struct {
	CorrelationIDs      entity.CorrelationIDs
	ResponseCode        string
	ResponseDescription string
	Metadata            map[string]any
}

// Adapter starts and queries one kind of gateway operation
type Adapter interface {
	// Gateway returns the gateway name the adapter talks to
	Gateway() string
	// TransactionType returns the operation the adapter performs
	TransactionType() entity.GatewayTransactionType
	// Initiate submits the request. An error means the gateway did not accept it.
	Initiate(ctx context.Context, req Request) (*Ack, error)
	// QueryStatus asks the gateway for the current outcome of an accepted request.
	// Pending answers come back as an inconclusive outcome, not an error.
	QueryStatus(ctx context.Context, correlationID entity.CorrelationID) (*entity.Outcome, error)
}

// Notification is a parsed asynchronous callback
type Notification struct {
	CorrelationID string
	Outcome       entity.Outcome
	ReceivedAt    time.Time
}

// CallbackHandler authenticates and decodes one gateway's callbacks
type CallbackHandler interface {
	// Gateway returns the gateway name the handler serves
	Gateway() string
	// Verify checks the payload against the signature presented with it
	//
	// Possible errors:
	// - ErrUnauthenticated: If the signature is missing or doesn't match
	Verify(payload []byte, signature string) error
	// Parse decodes the payload and maps the gateway result code to an outcome
	//
	// Possible errors:
	// - ErrInvalidCallback: If the payload is malformed
	Parse(payload []byte) (*Notification, error)
}
