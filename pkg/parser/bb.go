package parser

import "regexp"

// Banco do Brasil rows carry a full date, up to three numeric filler fields
// (agency, lot and document numbers) before the history text, the amount with
// a C/D marker, and sometimes a trailing running balance that is discarded.
// Converted statements show the same row both as a pipe table and as plain
// whitespace columns; normalizeLine makes both shapes identical.
var (
	bbDated = regexp.MustCompile(
		`(\d{2}/\d{2}/\d{4})` +
			`\s+(?:\d+\s+){0,3}` +
			descExpr +
			`\s+` + amountExpr + `\s*` + markerExpr +
			`(?:\s+[\d\.]+,\d{2}\s*[CD])?`,
	)
	bbDateless = regexp.MustCompile(
		`^` + descExpr +
			`\s+` + amountExpr + `\s*` + markerExpr +
			`(?:\s+[\d\.]+,\d{2}\s*[CD])?\s*$`,
	)
)

func bbRules() lineRules {
	return lineRules{
		layout:    "bb",
		dated:     bbDated,
		dateless:  bbDateless,
		parseDate: ParseDateDMY,
	}
}
