// Package classifier assigns each transaction a category from a fixed label
// set. Classification is a pure function: lowercase the description, pick the
// credit or debit rule table from the amount's sign, and take the first rule
// whose keywords match. Rule order matters where keywords overlap, so the
// tables are ordered data rather than branching code.
package classifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

// Category labels. The set is closed: every transaction ends up with exactly
// one of these, with Outros as the fallback.
const (
	Receita               = "Receita"
	TransferenciaRecebida = "Transferência Recebida"
	Rendimentos           = "Rendimentos/Investimentos"
	Moradia               = "Moradia"
	Alimentacao           = "Alimentação"
	Transporte            = "Transporte"
	ContasDeConsumo       = "Contas de Consumo"
	Saude                 = "Saúde"
	Educacao              = "Educação"
	Lazer                 = "Lazer"
	TaxasETarifas         = "Taxas e Tarifas"
	PagamentoDeContas     = "Pagamento de Contas"
	TransferenciaEnviada  = "Transferência Enviada"
	Investimentos         = "Investimentos/Aplicações"
	PagamentoSalarios     = "Pagamento de Salários/Fornecedores"
	DebitoAutomatico      = "Débito Automático"
	Saque                 = "Saque"
	SaldoInicial          = "Saldo Inicial"
	Outros                = "Outros"
)

// Rule maps a set of description substrings to one category. Any keyword
// matching means the rule matches.
type Rule struct {
	Keywords []string
	Category string
}

// CreditRules apply to positive amounts, DebitRules to everything else.
// First match wins, so keep more specific rules ahead of generic ones
// ("aplicacao" must be tested before later catch-alls, "transferencia
// enviada" before plain "transferencia").
var CreditRules = []Rule{
	{Keywords: []string{"salario", "pagamento", "cred ted", "cred pix", "resgate", "deposito", "rendimento", "juros", "movertit", "red ted", "credito"}, Category: Receita},
	{Keywords: []string{"transferencia", "pix transf"}, Category: TransferenciaRecebida},
	{Keywords: []string{"aplicacao", "rende facil", "bb rende facil"}, Category: Rendimentos},
}

var DebitRules = []Rule{
	{Keywords: []string{"aluguel", "moradia"}, Category: Moradia},
	{Keywords: []string{"supermercado", "alimentacao", "restaurante", "comida", "mercado"}, Category: Alimentacao},
	{Keywords: []string{"transporte", "combustivel", "uber", "99pop", "passagem", "pedagio", "fin veic"}, Category: Transporte},
	{Keywords: []string{"luz", "agua", "gas", "internet", "energia"}, Category: ContasDeConsumo},
	{Keywords: []string{"saude", "farmacia", "medico", "hospital"}, Category: Saude},
	{Keywords: []string{"educacao", "escola", "faculdade", "curso"}, Category: Educacao},
	{Keywords: []string{"lazer", "entretenimento", "cinema", "teatro", "viagem"}, Category: Lazer},
	{Keywords: []string{"taxa", "tarifa", "juros", "imposto", "tributo"}, Category: TaxasETarifas},
	{Keywords: []string{"boleto pago", "pagto", "pagamento"}, Category: PagamentoDeContas},
	{Keywords: []string{"pix enviado", "transferencia enviada", "transferencia"}, Category: TransferenciaEnviada},
	{Keywords: []string{"aplicacao"}, Category: Investimentos},
	{Keywords: []string{"sispag"}, Category: PagamentoSalarios},
	{Keywords: []string{"deb aut", "debito automatico"}, Category: DebitoAutomatico},
	{Keywords: []string{"saque"}, Category: Saque},
	{Keywords: []string{"saldo anterior"}, Category: SaldoInicial},
}

// Classify returns the category for a description and signed amount.
func Classify(description string, amount decimal.Decimal) string {
	desc := strings.ToLower(description)

	rules := DebitRules
	if amount.Sign() > 0 {
		rules = CreditRules
	}

	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(desc, kw) {
				return r.Category
			}
		}
	}
	return Outros
}

// Categorize returns a copy of txs with the Category field filled in.
func Categorize(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	for i, t := range txs {
		t.Category = Classify(t.Description, t.Amount)
		out[i] = t
	}
	return out
}
