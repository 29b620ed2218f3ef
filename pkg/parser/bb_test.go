package parser

import (
	"errors"
	"testing"

	"github.com/charmbracelet/log"
)

func TestBBWhitespaceRowWithFillers(t *testing.T) {
	// same logical row as the pipe table, but the converter dropped the
	// delimiters and kept agency/lot filler fields before the history
	content := `Extrato de conta corrente
01/02/2024 0001 000123 COMPRA SUPERMERCADO PAGUE BEM 150,00 D 1.234,56 C
02/02/2024 TED RECEBIDA CLIENTE 2.000,00 C`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutBB, 0)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-02-01", "COMPRA SUPERMERCADO PAGUE BEM", "-150.00")
	assertTransaction(t, txs[1], "2024-02-02", "TED RECEBIDA CLIENTE", "2000.00")
}

func TestBBDateCarryOver(t *testing.T) {
	content := `01/01/2024 SALARIO MENSAL 100,00 C
DESCR2 50,00 D`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutBB, 0)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	assertTransaction(t, txs[1], "2024-01-01", "DESCR2", "-50.00")
}

func TestBBDatelessRowBeforeAnyDate(t *testing.T) {
	// a dateless row with nothing to inherit from is dropped, not defaulted
	p := New(log.Default())
	_, err := p.ProcessText("DESCR2 50,00 D\n", LayoutBB, 0)
	if !errors.Is(err, ErrNoTransactions) {
		t.Errorf("expected ErrNoTransactions, got %v", err)
	}
}

func TestBBInvalidDateRowDropped(t *testing.T) {
	// a row whose date literal does not exist is discarded outright, it must
	// not inherit the previous date with the bad literal glued to the history
	content := `01/01/2024 SALARIO MENSAL 100,00 C
31/02/2024 COMPRA MERCADO 50,00 D`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutBB, 0)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-01-01", "SALARIO MENSAL", "100.00")
}

func TestBBDateShapedSummaryRowDropped(t *testing.T) {
	content := `01/01/2024 SALARIO MENSAL 100,00 C
31/01/24 SALDO PARCIAL 1.234,56 C`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutBB, 0)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-01-01", "SALARIO MENSAL", "100.00")
}

func TestBBZeroAmountDropped(t *testing.T) {
	content := `01/01/2024 ESTORNO TARIFA 0,00 C
01/01/2024 TARIFA PACOTE 15,00 D`

	p := New(log.Default())
	txs, err := p.ProcessText(content, LayoutBB, 0)
	if err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}

	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	assertTransaction(t, txs[0], "2024-01-01", "TARIFA PACOTE", "-15.00")
}
