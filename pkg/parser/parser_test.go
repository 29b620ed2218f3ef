package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

func assertTransaction(t *testing.T, tx models.Transaction, date, description, amount string) {
	t.Helper()
	wantDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad expected date %q: %v", date, err)
	}
	wantAmount := decimal.RequireFromString(amount)
	if !tx.Date.Equal(wantDate) || tx.Description != description || !tx.Amount.Equal(wantAmount) {
		t.Errorf("transaction mismatch:\nexpected: date=%s, description=%q, amount=%s\ngot:      date=%s, description=%q, amount=%s",
			date, description, wantAmount,
			tx.Date.Format("2006-01-02"), tx.Description, tx.Amount)
	}
}

func TestProcessTextBBTable(t *testing.T) {
	content := `| 01/01/2024 | SALARIO MENSAL | | 5.000,00 C |
| 01/01/2024 | COMPRA SUPERMERCADO | | 150,00 D |`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutBB, 0)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-01-01", "SALARIO MENSAL", "5000.00")
	assertTransaction(t, txs[1], "2024-01-01", "COMPRA SUPERMERCADO", "-150.00")
}

func TestProcessTextNoTransactions(t *testing.T) {
	p := New(log.Default())

	_, err := p.ProcessText("cabecalho do extrato\nsem nada util aqui\n", LayoutBB, 0)
	if !errors.Is(err, ErrNoTransactions) {
		t.Errorf("expected ErrNoTransactions, got %v", err)
	}
}

func TestProcessTextUnknownLayout(t *testing.T) {
	p := New(log.Default())

	if _, err := p.ProcessText("01/01/2024 X 10,00 C", Layout("nubank"), 0); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestProcessTextItauRequiresYear(t *testing.T) {
	p := New(log.Default())

	if _, err := p.ProcessText("01/dez MERCADO -10,00", LayoutItau, 0); err == nil {
		t.Error("expected error when mlgita layout has no reference year")
	}
}

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		filename string
		want     Layout
	}{
		{"extrato-bb-janeiro.md", LayoutBB},
		{"Extrato_Banco_do_Brasil.txt", LayoutBB},
		{"extrato-caixa-2024.md", LayoutCaixa},
		{"conta_CEF_marco.txt", LayoutCaixa},
		{"mlgita-dezembro.md", LayoutItau},
		{"extrato Itau dez.txt", LayoutItau},
		{"MLGSAN-2024.md", LayoutSantander},
		{"santander_abril.txt", LayoutSantander},
		{"extrato.txt", ""},
	}

	for _, tt := range tests {
		if got := DetectLayout(tt.filename); got != tt.want {
			t.Errorf("DetectLayout(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
