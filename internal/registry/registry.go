package registry

import "github.com/GlebRadaev/payment-engine/internal/domain"

// Registry owns the history of money operations keyed by transaction id.
// Operations are retained for the lifetime of the run to support later
// claims and never deleted.
type Registry struct {
	operations map[domain.TransactionID]*domain.MoneyOperation
}

func New() *Registry {
	return &Registry{operations: make(map[domain.TransactionID]*domain.MoneyOperation)}
}

func (r *Registry) Exists(id domain.TransactionID) bool {
	_, ok := r.operations[id]
	return ok
}

// Record inserts the operation. The caller must have checked Exists first;
// transaction ids are unique for the lifetime of the registry.
func (r *Registry) Record(op *domain.MoneyOperation) {
	r.operations[op.TransactionID] = op
}

// Lookup returns the recorded operation for id, or nil. The pointer is live:
// flipping Disputed through it is how claims advance the state machine.
func (r *Registry) Lookup(id domain.TransactionID) *domain.MoneyOperation {
	return r.operations[id]
}
