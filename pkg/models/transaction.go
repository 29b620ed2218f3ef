package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one normalized statement entry. Amount is signed:
// negative for debits/outflows, positive for credits/inflows.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
}

// Credit reports whether the transaction is an inflow.
func (t Transaction) Credit() bool {
	return t.Amount.Sign() > 0
}

// MonthKey returns the calendar month the transaction belongs to, as "YYYY-MM".
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}
