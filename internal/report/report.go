package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/payment-engine/internal/domain"
)

// Write renders the final snapshot as CSV: one row per client, amounts
// rounded to 4 decimal places, booleans lowercase.
func Write(w io.Writer, rows []domain.AccountSummary) error {
	if len(rows) == 0 {
		return nil
	}
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.ClientID), 10),
			formatAmount(row.Available),
			formatAmount(row.Held),
			formatAmount(row.Total),
			strconv.FormatBool(row.Locked),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatAmount rounds to 4 decimal places and keeps at least one decimal
// digit, so 2 renders as "2.0" and 2.234235 as "2.2342".
func formatAmount(d decimal.Decimal) string {
	s := d.Round(4).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
