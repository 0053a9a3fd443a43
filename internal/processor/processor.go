package processor

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/payment-engine/internal/domain"
	"github.com/GlebRadaev/payment-engine/internal/ledger"
)

type AccountLedger interface {
	Lookup(id domain.ClientID) *ledger.Account
	Create(id domain.ClientID, available decimal.Decimal) (*ledger.Account, error)
}

type OperationRegistry interface {
	Exists(id domain.TransactionID) bool
	Record(op *domain.MoneyOperation)
	Lookup(id domain.TransactionID) *domain.MoneyOperation
}

// Processor applies one order at a time to the ledger and the registry. It
// holds no state of its own between orders. Every rejection is returned as a
// typed error and leaves both collaborators untouched: validation always
// runs before the first mutation.
type Processor struct {
	accounts   AccountLedger
	operations OperationRegistry
}

func New(accounts AccountLedger, operations OperationRegistry) *Processor {
	return &Processor{
		accounts:   accounts,
		operations: operations,
	}
}

func (p *Processor) Process(order domain.Order) error {
	switch {
	case order.Operation != nil:
		return p.processOperation(order.Operation)
	case order.Claim != nil:
		return p.processClaim(order.Claim)
	}
	return errors.New("empty order")
}

func (p *Processor) processOperation(op *domain.MoneyOperation) error {
	if p.operations.Exists(op.TransactionID) {
		return fmt.Errorf("transaction %d: %w", op.TransactionID, domain.ErrDuplicateTransaction)
	}

	acc := p.accounts.Lookup(op.ClientID)
	if acc != nil && acc.Locked() {
		return fmt.Errorf("client %d: %w", op.ClientID, domain.ErrLockedAccount)
	}

	switch op.Kind {
	case domain.Withdrawal:
		if acc == nil {
			return fmt.Errorf("client %d: %w", op.ClientID, domain.ErrUnknownClient)
		}
		if acc.Available().LessThan(op.Amount) {
			return fmt.Errorf("client %d withdrawing %s: %w", op.ClientID, op.Amount, domain.ErrInsufficientFunds)
		}
		acc.Debit(op.Amount)
	case domain.Deposit:
		if acc == nil {
			if _, err := p.accounts.Create(op.ClientID, op.Amount); err != nil {
				return err
			}
		} else {
			acc.Credit(op.Amount)
		}
	}

	recorded := *op
	recorded.Disputed = false
	p.operations.Record(&recorded)
	return nil
}

func (p *Processor) processClaim(claim *domain.ClientClaim) error {
	op := p.operations.Lookup(claim.TransactionID)
	if op == nil {
		return fmt.Errorf("transaction %d: %w", claim.TransactionID, domain.ErrUnknownTransaction)
	}

	// An operation in the registry implies its owner was created, but a nil
	// account is still an error rather than a panic.
	acc := p.accounts.Lookup(op.ClientID)
	if acc == nil {
		return fmt.Errorf("client %d: %w", op.ClientID, domain.ErrUnknownClient)
	}
	if acc.Locked() {
		return fmt.Errorf("client %d: %w", op.ClientID, domain.ErrLockedAccount)
	}
	if claim.ClientID != op.ClientID {
		return fmt.Errorf("client %d references transaction %d of client %d: %w",
			claim.ClientID, op.TransactionID, op.ClientID, domain.ErrClientMismatch)
	}

	switch {
	case claim.Kind == domain.Dispute && !op.Disputed:
		// For a withdrawal this drives available negative: the money already
		// left and is now provisionally reclaimed.
		acc.Hold(op.Amount)
		op.Disputed = true
	case claim.Kind == domain.Resolve && op.Disputed:
		var err error
		if op.Kind == domain.Deposit {
			err = acc.Release(op.Amount)
		} else {
			err = acc.ClearHeld(op.Amount)
		}
		if err != nil {
			return fmt.Errorf("resolve of transaction %d: %w", op.TransactionID, err)
		}
		op.Disputed = false
	case claim.Kind == domain.Chargeback && !op.Disputed:
		// Chargeback only applies to a currently undisputed operation.
		var err error
		if op.Kind == domain.Deposit {
			err = acc.ClearHeld(op.Amount)
		} else {
			err = acc.Release(op.Amount)
		}
		if err != nil {
			return fmt.Errorf("chargeback of transaction %d: %w", op.TransactionID, err)
		}
		acc.Lock()
	default:
		return fmt.Errorf("%s of transaction %d: %w", claim.Kind, claim.TransactionID, domain.ErrWrongTransactionState)
	}

	return nil
}
