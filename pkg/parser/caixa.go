package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

// Caixa statements are the messiest of the four layouts: besides ordinary
// table rows, the converter often runs several transactions together on one
// physical line, each introduced by an optional 6-digit document number and
// closed by amount + C/D marker, optionally followed by a running balance.
// The scanner therefore re-scans the remainder of every line until no more
// transaction-shaped substrings are left.
var (
	caixaTx = regexp.MustCompile(
		`(?:(\d{2}/\d{2}/\d{4})\s+)?` +
			`(?:(\d{6})\s+)?` +
			descExpr +
			`\s+` + amountExpr + `\s*` + markerExpr,
	)
	// a bare amount+marker immediately after a consumed transaction is the
	// row's running balance, never a transaction of its own
	caixaBalance = regexp.MustCompile(`^\s*[\d\.]+,\d{2}\s*[CD]`)
)

type caixaScanner struct {
	logger *log.Logger
}

func (s caixaScanner) parse(text string) ([]models.Transaction, scanStats) {
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

		rest := line
		matched := 0
		for {
			m := caixaTx.FindStringSubmatchIndex(rest)
			if m == nil {
				break
			}
			group := func(i int) string {
				if m[2*i] < 0 {
					return ""
				}
				return rest[m[2*i]:m[2*i+1]]
			}
			dateStr, desc, amountStr, marker := group(1), group(3), group(4), group(5)

			next := rest[m[1]:]
			if b := caixaBalance.FindStringIndex(next); b != nil {
				next = next[b[1]:]
			}

			var date time.Time
			ok := true
			switch {
			case dateStr != "":
				d, err := ParseDateDMY(dateStr)
				if err != nil {
					ok = false
				} else {
					date = d
				}
			case state.seen:
				date = state.current
			default:
				// dateless transaction before any dated row: dropped
				ok = false
			}

			if ok {
				amount, err := ParseAmount(amountStr)
				if err == nil && !amount.IsZero() {
					if dateStr != "" {
						state.set(date)
					}
					txs = append(txs, models.Transaction{
						Date:        date,
						Description: strings.TrimSpace(desc),
						Amount:      ApplySign(amount, marker),
					})
					matched++
				}
			}
			rest = next
		}

		if matched > 0 {
			stats.Matched += matched
		} else {
			stats.Skipped++
			s.logger.Debug("line skipped", "layout", "caixa", "line", line)
		}
	}

	return txs, stats
}
