package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/payment-engine/internal/domain"
)

// Account is one client's balance state. All mutation goes through the
// methods below; the available/held split is the only bookkeeping there is.
type Account struct {
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
}

func (a *Account) Available() decimal.Decimal { return a.available }
func (a *Account) Held() decimal.Decimal      { return a.held }
func (a *Account) Locked() bool               { return a.locked }

// Credit adds amount to available. Bounds checks are the caller's job.
func (a *Account) Credit(amount decimal.Decimal) {
	a.available = a.available.Add(amount)
}

// Debit removes amount from available. Bounds checks are the caller's job.
func (a *Account) Debit(amount decimal.Decimal) {
	a.available = a.available.Sub(amount)
}

// Hold moves amount from available to held. Available may go negative here:
// disputing a withdrawal reclaims money that already left the account.
func (a *Account) Hold(amount decimal.Decimal) {
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
}

// Release moves amount from held back to available.
func (a *Account) Release(amount decimal.Decimal) error {
	if a.held.LessThan(amount) {
		return fmt.Errorf("held %s is less than %s: %w", a.held, amount, domain.ErrInsufficientHeldFunds)
	}
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
	return nil
}

// ClearHeld removes amount from held without returning it to available.
func (a *Account) ClearHeld(amount decimal.Decimal) error {
	if a.held.LessThan(amount) {
		return fmt.Errorf("held %s is less than %s: %w", a.held, amount, domain.ErrInsufficientHeldFunds)
	}
	a.held = a.held.Sub(amount)
	return nil
}

// Lock is irreversible; a locked account rejects all further operations and
// claims at the processor level.
func (a *Account) Lock() {
	a.locked = true
}

// Ledger owns every client account. Accounts are created lazily on the
// first accepted deposit and never deleted.
type Ledger struct {
	accounts map[domain.ClientID]*Account
}

func New() *Ledger {
	return &Ledger{accounts: make(map[domain.ClientID]*Account)}
}

// Lookup returns the account for id, or nil. Absence is not an error by
// itself; callers decide.
func (l *Ledger) Lookup(id domain.ClientID) *Account {
	return l.accounts[id]
}

// Create inserts a new account holding initial available funds.
func (l *Ledger) Create(id domain.ClientID, available decimal.Decimal) (*Account, error) {
	if _, ok := l.accounts[id]; ok {
		return nil, fmt.Errorf("account %d already exists", id)
	}
	acc := &Account{available: available}
	l.accounts[id] = acc
	return acc, nil
}

// Snapshot returns one summary row per account, sorted by client id. The
// sort keeps runs reproducible; consumers must not rely on it.
func (l *Ledger) Snapshot() []domain.AccountSummary {
	rows := make([]domain.AccountSummary, 0, len(l.accounts))
	for id, acc := range l.accounts {
		rows = append(rows, domain.AccountSummary{
			ClientID:  id,
			Available: acc.available,
			Held:      acc.held,
			Total:     acc.available.Add(acc.held),
			Locked:    acc.locked,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ClientID < rows[j].ClientID })
	return rows
}
