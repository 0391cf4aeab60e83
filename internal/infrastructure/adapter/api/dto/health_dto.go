package dto

import "github.com/amirhossein-jamali/payment-orchestrator/internal/infrastructure/adapter/gateway/transport"

// HealthResponse reports database reachability and gateway breaker states
type HealthResponse struct {
	Status        string                    `json:"status"`
	Database      string                    `json:"database"`
	DatabaseError string                    `json:"databaseError,omitempty"`
	Breakers      []transport.BreakerStatus `json:"breakers"`
}
