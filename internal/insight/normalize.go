// Package insight derives presentation-ready analytics from transaction
// windows fetched from the ledger. Every function is pure: it owns no state,
// never mutates its input and recomputes from the full window on each call.
package insight

import (
	"math"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
)

// Normalize shapes raw ledger records into defined transactions. It fails
// closed: a record missing type, amount or timestamp degrades to the unknown
// category, a zero amount or an empty timestamp instead of aborting the
// window. Order and cardinality are preserved exactly.
func Normalize(raw []models.RawTransaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(raw))
	for _, r := range raw {
		t := models.Transaction{
			ID:        r.ID,
			Type:      models.ParseCategory(r.Type),
			Status:    models.Status(r.Status),
			Timestamp: r.Timestamp,
		}
		if r.Amount != nil && !math.IsNaN(*r.Amount) && !math.IsInf(*r.Amount, 0) {
			t.Amount = *r.Amount
		}
		if r.Description != nil {
			t.Description = *r.Description
		}
		out = append(out, t)
	}
	return out
}
