package main

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/csv"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

type filters struct {
	startDate   string
	endDate     string
	minAmount   float64
	maxAmount   float64
	category    string
	description string
	txType      string
}

func (f *filters) toFilterFunc() csv.FilterFunc {
	return func(t models.Transaction) bool {
		if f.startDate != "" {
			if start, err := time.Parse("2006-01-02", f.startDate); err == nil && t.Date.Before(start) {
				return false
			}
		}
		if f.endDate != "" {
			if end, err := time.Parse("2006-01-02", f.endDate); err == nil && t.Date.After(end) {
				return false
			}
		}
		if f.minAmount != 0 && t.Amount.LessThan(decimal.NewFromFloat(f.minAmount)) {
			return false
		}
		if f.maxAmount != 0 && t.Amount.GreaterThan(decimal.NewFromFloat(f.maxAmount)) {
			return false
		}
		if f.category != "" && !strings.EqualFold(t.Category, f.category) {
			return false
		}
		if f.description != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.description)) {
			return false
		}
		if f.txType != "" && t.Credit() != strings.EqualFold(f.txType, "credit") {
			return false
		}
		return true
	}
}
