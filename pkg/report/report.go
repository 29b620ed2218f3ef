// Package report aggregates classified transactions into cash-flow views.
// All functions are pure and deterministic: same input, same output, no I/O.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

// CategoryTotal is one category's summed amount.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CashFlowReport partitions per-category totals into credits (total > 0,
// sorted descending) and debits (total <= 0, sorted ascending, most negative
// first), plus the grand total over all transactions.
type CashFlowReport struct {
	Credits []CategoryTotal
	Debits  []CategoryTotal
	Balance decimal.Decimal
}

// CashFlow builds the per-category cash-flow report.
func CashFlow(txs []models.Transaction) CashFlowReport {
	totals := make(map[string]decimal.Decimal)
	balance := decimal.Zero
	for _, t := range txs {
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		balance = balance.Add(t.Amount)
	}

	r := CashFlowReport{Balance: balance}
	for category, total := range totals {
		ct := CategoryTotal{Category: category, Total: total}
		if total.Sign() > 0 {
			r.Credits = append(r.Credits, ct)
		} else {
			r.Debits = append(r.Debits, ct)
		}
	}

	sort.Slice(r.Credits, func(i, j int) bool {
		if !r.Credits[i].Total.Equal(r.Credits[j].Total) {
			return r.Credits[i].Total.GreaterThan(r.Credits[j].Total)
		}
		return r.Credits[i].Category < r.Credits[j].Category
	})
	sort.Slice(r.Debits, func(i, j int) bool {
		if !r.Debits[i].Total.Equal(r.Debits[j].Total) {
			return r.Debits[i].Total.LessThan(r.Debits[j].Total)
		}
		return r.Debits[i].Category < r.Debits[j].Category
	})
	return r
}

// MonthSummary is one calendar month's totals, split by category.
type MonthSummary struct {
	Year       int
	Month      time.Month
	ByCategory []CategoryTotal // alphabetical by category
	Total      decimal.Decimal
}

// Monthly groups transactions by (year, month) x category, in chronological
// month order, with a per-month grand total.
func Monthly(txs []models.Transaction) []MonthSummary {
	byMonth := make(map[string]map[string]decimal.Decimal)
	for _, t := range txs {
		key := t.MonthKey()
		if byMonth[key] == nil {
			byMonth[key] = make(map[string]decimal.Decimal)
		}
		byMonth[key][t.Category] = byMonth[key][t.Category].Add(t.Amount)
	}

	// "YYYY-MM" keys sort chronologically as strings
	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summaries := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		month, _ := time.Parse("2006-01", key)
		s := MonthSummary{Year: month.Year(), Month: month.Month(), Total: decimal.Zero}
		for category, total := range byMonth[key] {
			s.ByCategory = append(s.ByCategory, CategoryTotal{Category: category, Total: total})
			s.Total = s.Total.Add(total)
		}
		sort.Slice(s.ByCategory, func(i, j int) bool {
			return s.ByCategory[i].Category < s.ByCategory[j].Category
		})
		summaries = append(summaries, s)
	}
	return summaries
}

// Write renders the cash-flow report as a plain-text table.
func (r CashFlowReport) Write(w io.Writer) {
	fmt.Fprintln(w, "Receitas:")
	for _, ct := range r.Credits {
		fmt.Fprintf(w, "  %-40s %12s\n", ct.Category, ct.Total.StringFixed(2))
	}
	fmt.Fprintln(w, "Despesas:")
	for _, ct := range r.Debits {
		fmt.Fprintf(w, "  %-40s %12s\n", ct.Category, ct.Total.StringFixed(2))
	}
	fmt.Fprintf(w, "Saldo Total: %s\n", r.Balance.StringFixed(2))
}

// WriteMonthly renders the monthly summaries as plain-text tables.
func WriteMonthly(w io.Writer, months []MonthSummary) {
	for _, m := range months {
		fmt.Fprintf(w, "%04d-%02d\n", m.Year, int(m.Month))
		for _, ct := range m.ByCategory {
			fmt.Fprintf(w, "  %-40s %12s\n", ct.Category, ct.Total.StringFixed(2))
		}
		fmt.Fprintf(w, "  %-40s %12s\n", "Total Mensal", m.Total.StringFixed(2))
	}
}
