package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

// Regex fragments shared by the layout scanners. The description class is
// deliberately loose: converted PDF text keeps accented words, digits and
// light punctuation but nothing else worth preserving.
const (
	descExpr         = `([A-ZÁ-Úa-zá-ú0-9\-\s\.\,\/]+?)`
	amountExpr       = `([\d\.]+,\d{2})`
	signedAmountExpr = `(-?[\d\.]+,\d{2})`
	markerExpr       = `([CD])`
)

// scanState is the only mutable state threaded through a line scan. Once a
// dated row has been seen, dateless rows reuse that date until the next
// explicit one; dateless rows before the first date are dropped.
type scanState struct {
	current time.Time
	seen    bool
}

func (s *scanState) set(d time.Time) {
	s.current = d
	s.seen = true
}

// scanStats counts what the scanner did with each non-blank line. Matched
// versus skipped is the only signal available for spotting under-extraction.
type scanStats struct {
	Matched int
	Skipped int
}

// leadingDateExpr spots descriptions that open with a date-shaped token. A
// dateless candidate starting with one is a summary row the dated pattern
// could not place, not a transaction.
var leadingDateExpr = regexp.MustCompile(`^\d{1,2}/(?:\d{1,2}/\d{2,4}|[a-zà-ú]{3})\b`)

// normalizeLine flattens table pipes so that pipe-delimited and
// whitespace-only renditions of the same logical row match the same patterns.
func normalizeLine(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, "|", " "))
}

// statementParser turns one statement's raw text into transactions.
type statementParser interface {
	parse(text string) ([]models.Transaction, scanStats)
}

// lineRules describes a single-transaction-per-line layout. The dated
// expression must capture date, description and amount (plus a C/D marker
// when signed is false); the dateless expression captures the same groups
// minus the date and is matched only after a date has been seen.
type lineRules struct {
	layout    string
	dated     *regexp.Regexp
	dateless  *regexp.Regexp
	parseDate func(string) (time.Time, error)
	signed    bool
}

// rulesScanner runs a lineRules table over statement text.
type rulesScanner struct {
	rules  lineRules
	logger *log.Logger
}

func (s rulesScanner) parse(text string) ([]models.Transaction, scanStats) {
	var (
		txs   []models.Transaction
		state scanState
		stats scanStats
	)

	for _, raw := range strings.Split(text, "\n") {
		line := normalizeLine(raw)
		if line == "" {
			continue
		}

		if m := s.rules.dated.FindStringSubmatch(line); m != nil {
			date, err := s.rules.parseDate(m[1])
			if err != nil {
				// a bad date literal discards the whole candidate; the line
				// must not be demoted to a dateless row
				stats.Skipped++
				s.logger.Debug("line skipped", "layout", s.rules.layout, "line", line, "err", err)
				continue
			}
			if tx, ok := s.rules.build(date, m[2], m[3], markerGroup(m, 4)); ok {
				state.set(date)
				txs = append(txs, tx)
				stats.Matched++
				continue
			}
		}

		if s.rules.dateless != nil && state.seen {
			if m := s.rules.dateless.FindStringSubmatch(line); m != nil && !leadingDateExpr.MatchString(m[1]) {
				if tx, ok := s.rules.build(state.current, m[1], m[2], markerGroup(m, 3)); ok {
					txs = append(txs, tx)
					stats.Matched++
					continue
				}
			}
		}

		stats.Skipped++
		s.logger.Debug("line skipped", "layout", s.rules.layout, "line", line)
	}

	return txs, stats
}

// build assembles a transaction from matched groups. Unparsable or zero
// amounts turn the whole candidate into a non-match.
func (r lineRules) build(date time.Time, desc, amountStr, marker string) (models.Transaction, bool) {
	amount, err := ParseAmount(amountStr)
	if err != nil || amount.IsZero() {
		return models.Transaction{}, false
	}
	if !r.signed {
		amount = ApplySign(amount, marker)
	}
	return models.Transaction{
		Date:        date,
		Description: strings.TrimSpace(desc),
		Amount:      amount,
	}, true
}

func markerGroup(m []string, i int) string {
	if i < len(m) {
		return m[i]
	}
	return ""
}
