package gateway

import (
	"fmt"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/payment-orchestrator/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-orchestrator/internal/domain/error"
)

type adapterKey struct {
	gateway string
	txnType entity.GatewayTransactionType
}

// Registry maps (gateway, transaction type) to adapters and gateways to callback handlers
type Registry struct {
	mu        sync.RWMutex
	adapters  map[adapterKey]Adapter
	callbacks map[string]CallbackHandler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		adapters:  make(map[adapterKey]Adapter),
		callbacks: make(map[string]CallbackHandler),
	}
}

// RegisterAdapter adds an adapter, replacing any previous one for the same key
func (r *Registry) RegisterAdapter(adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[adapterKey{adapter.Gateway(), adapter.TransactionType()}] = adapter
}

// RegisterCallbackHandler adds a callback handler for its gateway
func (r *Registry) RegisterCallbackHandler(handler CallbackHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks[handler.Gateway()] = handler
}

// Adapter returns the adapter for a gateway operation
func (r *Registry) Adapter(gateway string, txnType entity.GatewayTransactionType) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.adapters[adapterKey{gateway, txnType}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", errs.ErrUnsupportedGateway, gateway, txnType)
	}
	return adapter, nil
}

// CallbackHandler returns the callback handler of a gateway
func (r *Registry) CallbackHandler(gateway string) (CallbackHandler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.callbacks[gateway]
	if !ok {
		return nil, fmt.Errorf("%w: no callback handler for %s", errs.ErrUnsupportedGateway, gateway)
	}
	return handler, nil
}

// Gateways lists the registered gateway names
func (r *Registry) Gateways() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	for key := range r.adapters {
		seen[key.gateway] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
