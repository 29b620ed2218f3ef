// Package parser extracts normalized transactions from bank-statement text.
// The input is the text blob an external PDF converter produced for one
// statement; each supported bank layout gets its own line scanner because the
// converted layouts share no common schema.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

// Layout identifies one of the supported bank statement layouts.
type Layout string

const (
	LayoutBB        Layout = "bb"
	LayoutCaixa     Layout = "caixa"
	LayoutItau      Layout = "mlgita"
	LayoutSantander Layout = "mlgsan"
)

// ErrNoTransactions reports that a statement yielded zero transactions.
// Callers should treat it as a recoverable "nothing found" condition, most
// often caused by running the wrong layout over a statement.
var ErrNoTransactions = errors.New("no transactions found")

// Parser dispatches statement text to the scanner for a given layout.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// ProcessText extracts the ordered transaction sequence from one statement.
// year is only consulted by the mlgita layout, whose statements omit the
// year entirely. The returned order is document order, not date order.
func (p *Parser) ProcessText(text string, layout Layout, year int) ([]models.Transaction, error) {
	scanner, err := p.forLayout(layout, year)
	if err != nil {
		return nil, err
	}

	txs, stats := scanner.parse(text)
	p.logger.Info("statement scanned",
		"layout", layout,
		"matched_lines", stats.Matched,
		"skipped_lines", stats.Skipped,
		"transactions", len(txs))

	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	return txs, nil
}

func (p *Parser) forLayout(layout Layout, year int) (statementParser, error) {
	switch layout {
	case LayoutBB:
		return rulesScanner{rules: bbRules(), logger: p.logger}, nil
	case LayoutCaixa:
		return caixaScanner{logger: p.logger}, nil
	case LayoutItau:
		if year == 0 {
			return nil, fmt.Errorf("layout %s requires a reference year", layout)
		}
		return rulesScanner{rules: itauRules(year), logger: p.logger}, nil
	case LayoutSantander:
		return rulesScanner{rules: santanderRules(), logger: p.logger}, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", layout)
	}
}

// DetectLayout guesses the statement layout from bank-identifying substrings
// in the filename. It returns "" when nothing matches; callers can always
// pass a layout explicitly instead.
func DetectLayout(filename string) Layout {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "mlgita") || strings.Contains(name, "itau"):
		return LayoutItau
	case strings.Contains(name, "mlgsan") || strings.Contains(name, "santander"):
		return LayoutSantander
	case strings.Contains(name, "caixa") || strings.Contains(name, "cef"):
		return LayoutCaixa
	case strings.Contains(name, "bb") || strings.Contains(name, "brasil"):
		return LayoutBB
	}
	return ""
}
