package insight

import (
	"math"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
)

// Summarize derives window-scoped ratios and counts. Success rate and
// average are approximations of lifetime values whenever the window is
// shorter than full history; monetary totals are deliberately absent here
// and come from the ledger's authoritative summary instead.
//
// An empty window resolves to defined zeros, never a division error.
func Summarize(window []models.Transaction) models.WindowStats {
	stats := models.WindowStats{WindowSize: len(window)}
	if len(window) == 0 {
		return stats
	}

	successCount := 0
	amountSum := 0.0
	for _, t := range window {
		amountSum += t.Amount
		if t.Status == models.StatusSuccess {
			successCount++
		}
		if t.Status == models.StatusFlagged {
			stats.Breakdown.Flagged++
		}
		switch t.Type {
		case models.CategoryDeposit:
			stats.Breakdown.Deposits++
		case models.CategoryTransfer:
			stats.Breakdown.Transfers++
		case models.CategoryReceived:
			stats.Breakdown.Received++
		default:
			stats.Breakdown.Unknown++
		}
	}

	n := float64(len(window))
	stats.SuccessRate = int(math.Round(100 * float64(successCount) / n))
	stats.AverageTransaction = math.Round(amountSum / n)
	return stats
}
