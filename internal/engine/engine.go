package engine

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/payment-engine/internal/domain"
)

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=engine

type OrderProcessor interface {
	Process(order domain.Order) error
}

// Engine streams transaction records from a CSV source and feeds them, in
// input order, to the processor. Malformed rows are dropped before the
// processor ever sees them; rejections are logged and the loop continues.
// No single record can abort the run.
type Engine struct {
	proc OrderProcessor
}

func New(proc OrderProcessor) *Engine {
	return &Engine{proc: proc}
}

func (e *Engine) Run(ctx context.Context, r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	line := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			zap.L().Debug("dropping unreadable record", zap.Int("line", parseErr.Line), zap.Error(err))
			continue
		}
		if err != nil {
			return fmt.Errorf("read transactions: %w", err)
		}

		line++
		if line == 1 && isHeader(record) {
			continue
		}

		order, err := parseOrder(record)
		if err != nil {
			zap.L().Debug("dropping malformed record", zap.Int("line", line), zap.Error(err))
			continue
		}

		if err := e.proc.Process(order); err != nil {
			zap.L().Debug("transaction rejected", zap.Int("line", line), zap.Error(err))
		}
	}
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "type")
}

// parseOrder validates one raw row into an order the processor accepts:
// kind is case-insensitive, money operations require a non-negative amount,
// claims carry none (a present amount field is ignored, as are extra
// columns).
func parseOrder(record []string) (domain.Order, error) {
	if len(record) < 3 {
		return domain.Order{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	kind := strings.ToLower(strings.TrimSpace(record[0]))

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 32)
	if err != nil {
		return domain.Order{}, fmt.Errorf("bad client id %q", record[1])
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return domain.Order{}, fmt.Errorf("bad transaction id %q", record[2])
	}

	switch kind {
	case "deposit", "withdrawal":
		amount, err := parseAmount(record)
		if err != nil {
			return domain.Order{}, err
		}
		opKind := domain.Deposit
		if kind == "withdrawal" {
			opKind = domain.Withdrawal
		}
		return domain.Order{Operation: &domain.MoneyOperation{
			ClientID:      domain.ClientID(client),
			TransactionID: domain.TransactionID(tx),
			Kind:          opKind,
			Amount:        amount,
		}}, nil
	case "dispute", "resolve", "chargeback":
		claimKind := domain.Dispute
		switch kind {
		case "resolve":
			claimKind = domain.Resolve
		case "chargeback":
			claimKind = domain.Chargeback
		}
		return domain.Order{Claim: &domain.ClientClaim{
			ClientID:      domain.ClientID(client),
			TransactionID: domain.TransactionID(tx),
			Kind:          claimKind,
		}}, nil
	default:
		return domain.Order{}, fmt.Errorf("unknown transaction type %q", record[0])
	}
}

func parseAmount(record []string) (decimal.Decimal, error) {
	if len(record) < 4 || strings.TrimSpace(record[3]) == "" {
		return decimal.Decimal{}, errors.New("missing amount")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bad amount %q", record[3])
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %s", amount)
	}
	return amount, nil
}
