// Package csv renders classified transactions as CSV.
package csv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cesarvalentimjr/ContabilidadeMEI/pkg/models"
)

// FilterFunc decides whether a transaction makes it into the output.
type FilterFunc func(models.Transaction) bool

// Create renders the transactions, honoring an optional filter.
func Create(txs []models.Transaction, filter FilterFunc) []byte {
	var buf bytes.Buffer
	buf.WriteString("Date,Description,Category,Amount\n")
	for _, t := range txs {
		if filter == nil || filter(t) {
			buf.WriteString(fmt.Sprintf("%s,%s,%s,%s\n",
				t.Date.Format("2006-01-02"),
				escape(t.Description),
				escape(t.Category),
				t.Amount.StringFixed(2)))
		}
	}
	return buf.Bytes()
}

func escape(field string) string {
	if strings.ContainsAny(field, ",\"") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}
