package domain

import "github.com/shopspring/decimal"

// ClientID identifies one account.
type ClientID uint32

// TransactionID identifies one money operation. Claims reference an
// existing id but never consume one themselves.
type TransactionID uint32

type OperationKind int

const (
	Deposit OperationKind = iota
	Withdrawal
)

func (k OperationKind) String() string {
	if k == Withdrawal {
		return "withdrawal"
	}
	return "deposit"
}

type ClaimKind int

const (
	Dispute ClaimKind = iota
	Resolve
	Chargeback
)

func (k ClaimKind) String() string {
	switch k {
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return "dispute"
	}
}

// MoneyOperation is a recorded deposit or withdrawal. Once recorded it is
// immutable except for the Disputed flag.
type MoneyOperation struct {
	ClientID      ClientID
	TransactionID TransactionID
	Kind          OperationKind
	Amount        decimal.Decimal
	Disputed      bool
}

// ClientClaim references a previously recorded money operation and carries
// no amount of its own.
type ClientClaim struct {
	ClientID      ClientID
	TransactionID TransactionID
	Kind          ClaimKind
}

// Order is one validated input record. Exactly one of Operation or Claim is
// set; the two families have disjoint required fields and validation rules.
type Order struct {
	Operation *MoneyOperation
	Claim     *ClientClaim
}

// AccountSummary is one row of the final snapshot. Total is always
// Available + Held; values carry full precision, rounding happens at the
// report boundary.
type AccountSummary struct {
	ClientID  ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
