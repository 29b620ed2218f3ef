package parser

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestItauAbbreviatedDates(t *testing.T) {
	content := `lancamentos do periodo
01/dez SUPERMERCADO PAGUE MENOS -234,56
05/dez RENDIMENTO POUPANCA 12,34
PADARIA CENTRAL -15,00`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutItau, 2024)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-12-01", "SUPERMERCADO PAGUE MENOS", "-234.56")
	assertTransaction(t, txs[1], "2024-12-05", "RENDIMENTO POUPANCA", "12.34")
	// dateless row inherits the most recent date
	assertTransaction(t, txs[2], "2024-12-05", "PADARIA CENTRAL", "-15.00")
}

func TestItauInvalidDayRowDropped(t *testing.T) {
	content := `01/dez SUPERMERCADO PAGUE MENOS -234,56
40/dez PADARIA CENTRAL -15,00`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutItau, 2024)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-12-01", "SUPERMERCADO PAGUE MENOS", "-234.56")
}

func TestItauYearComesFromCaller(t *testing.T) {
	p := New(log.Default())

	txs, err := p.ProcessText("01/jan ALUGUEL SALA -1.200,00", LayoutItau, 2025)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2025-01-01", "ALUGUEL SALA", "-1200.00")
}

func TestSantanderSignedLiterals(t *testing.T) {
	content := `| 15/04/2024 | PIX ENVIADO JOAO | -200,00 |
| 16/04/2024 | TED RECEBIDA MARIA | 1.500,00 |`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutSantander, 0)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-04-15", "PIX ENVIADO JOAO", "-200.00")
	assertTransaction(t, txs[1], "2024-04-16", "TED RECEBIDA MARIA", "1500.00")
}
