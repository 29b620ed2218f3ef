package parser

import "regexp"

// Santander (MLGSAN) rows have a full date and, like Itaú, no C/D marker:
// the sign travels in the numeric literal.
var (
	santanderDated = regexp.MustCompile(
		`(\d{2}/\d{2}/\d{4})` +
			`\s+` + descExpr +
			`\s+` + signedAmountExpr,
	)
	santanderDateless = regexp.MustCompile(
		`^` + descExpr + `\s+` + signedAmountExpr + `\s*$`,
	)
)

func santanderRules() lineRules {
	return lineRules{
		layout:    "mlgsan",
		dated:     santanderDated,
		dateless:  santanderDateless,
		parseDate: ParseDateDMY,
		signed:    true,
	}
}
