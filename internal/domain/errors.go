package domain

import "errors"

// Every rejection is local to one record and never aborts the run.
var (
	ErrDuplicateTransaction  = errors.New("transaction already exists")
	ErrLockedAccount         = errors.New("account is locked")
	ErrUnknownClient         = errors.New("unknown client")
	ErrUnknownTransaction    = errors.New("unknown transaction")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientHeldFunds = errors.New("insufficient held funds")
	ErrWrongTransactionState = errors.New("wrong transaction state")
	ErrClientMismatch        = errors.New("claim client does not match transaction owner")
)
