package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a Brazilian-formatted amount ("1.234,56") into a
// decimal value. Thousands dots are stripped before the decimal comma is
// converted; anything left that is not a plain base-10 literal is an error.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return d, nil
}

// ApplySign negates the amount for debit markers ("D") and passes credit
// markers ("C") through unchanged.
func ApplySign(amount decimal.Decimal, marker string) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(marker), "D") {
		return amount.Neg()
	}
	return amount
}

// months maps the three-letter Portuguese month abbreviations used by
// statements that omit the year.
var months = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

// ParseDateDMY parses a full "dd/mm/yyyy" date.
func ParseDateDMY(raw string) (time.Time, error) {
	return time.Parse("02/01/2006", strings.TrimSpace(raw))
}

// ParseDayMonthAbbr parses a "dd/mon" date and combines it with an externally
// supplied year. Statements in this format carry no year at all, so the
// caller must say which one the batch belongs to.
func ParseDayMonthAbbr(raw string, year int) (time.Time, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(raw)), "/", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid day/month date %q", raw)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day in %q: %w", raw, err)
	}
	month, ok := months[parts[1]]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month abbreviation %q", parts[1])
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day out of range in %q", raw)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
