package parser

import (
	"regexp"
	"time"
)

// Itaú (MLGITA) statements abbreviate the date to "dd/mon" with no year, so
// the reference year comes from the caller. There is no C/D marker: debits
// carry a leading minus in the literal itself.
var (
	itauDated = regexp.MustCompile(
		`(\d{2}/(?:jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez))` +
			`\s+` + descExpr +
			`\s+` + signedAmountExpr,
	)
	itauDateless = regexp.MustCompile(
		`^` + descExpr + `\s+` + signedAmountExpr + `\s*$`,
	)
)

func itauRules(year int) lineRules {
	return lineRules{
		layout:   "mlgita",
		dated:    itauDated,
		dateless: itauDateless,
		parseDate: func(raw string) (time.Time, error) {
			return ParseDayMonthAbbr(raw, year)
		},
		signed: true,
	}
}
