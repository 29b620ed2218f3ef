// Package service wires parsing, classification and reporting together for
// files on disk.
package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/classifier"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/config"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/csv"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/parser"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/plan"
	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/report"
)

type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: cfg,
		logger: logger,
		parser: parser.New(logger),
	}
}

// ProcessFile parses and classifies one statement file. An empty layout is
// detected from the filename, falling back to the configured default.
func (p *Processor) ProcessFile(path string, layout parser.Layout, year int) ([]models.Transaction, error) {
	if layout == "" {
		layout = parser.DetectLayout(filepath.Base(path))
	}
	if layout == "" {
		layout = parser.Layout(p.config.Layout)
	}
	if layout == "" {
		return nil, fmt.Errorf("cannot determine layout for %s", path)
	}
	if year == 0 {
		year = p.config.Year
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file: %w", err)
	}

	txs, err := p.parser.ProcessText(string(data), layout, year)
	if err != nil {
		return nil, err
	}
	return classifier.Categorize(txs), nil
}

// ProcessDirectory converts every statement in dir into a classified CSV
// written next to the input (or into the configured output directory).
// Statements that yield nothing are logged and skipped, not fatal.
func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if !strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".md") {
			continue
		}

		inputPath := filepath.Join(dir, entry.Name())
		txs, err := p.ProcessFile(inputPath, "", 0)
		if err != nil {
			if errors.Is(err, parser.ErrNoTransactions) {
				p.logger.Warn("no transactions found", "file", inputPath)
				continue
			}
			p.logger.Error("failed to process file", "file", inputPath, "error", err)
			continue
		}

		outPath := p.outputPath(inputPath, entry.Name())
		if err := os.WriteFile(outPath, csv.Create(txs, nil), 0644); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
		p.logger.Info("processed file", "input", inputPath, "output", outPath, "transactions", len(txs))
	}

	return nil
}

func (p *Processor) outputPath(inputPath, fileName string) string {
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	if p.config.OutputPath != "" {
		return filepath.Join(p.config.OutputPath, baseName+"-mei.csv")
	}
	return strings.TrimSuffix(inputPath, ext) + "-mei.csv"
}

// ProcessPlan runs every statement in a plan and returns the consolidated
// cash-flow and monthly reports over all of them.
func (p *Processor) ProcessPlan(pl *plan.Plan) (report.CashFlowReport, []report.MonthSummary, error) {
	var all []models.Transaction
	for _, st := range pl.Statements {
		txs, err := p.ProcessFile(st.File, parser.Layout(st.Layout), st.Year)
		if err != nil {
			if errors.Is(err, parser.ErrNoTransactions) {
				p.logger.Warn("no transactions found", "file", st.File, "layout", st.Layout)
				continue
			}
			return report.CashFlowReport{}, nil, fmt.Errorf("statement %s: %w", st.File, err)
		}
		all = append(all, txs...)
	}
	return report.CashFlow(all), report.Monthly(all), nil
}
