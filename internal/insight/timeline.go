package insight

import (
	"math"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
	"github.com/Vivesh2911/NeoWallet/pkg/util"
)

// shortDate is the calendar-day-and-month label used on chart axes.
const shortDate = "2 Jan"

// ReplayTimeline replays a newest-first transaction window into a
// chronological balance series. The running balance is seeded at opening
// (callers pass 0 to match the ledger UI, which assumes the window covers
// full history) and rounded to currency scale after every step, not only at
// the end; rounding once at the end drifts from the observed series.
//
// Output is oldest to newest, one point per input record. An empty window
// yields an empty series, which callers render as "no chart".
func ReplayTimeline(window []models.Transaction, opening float64) []models.BalancePoint {
	points := make([]models.BalancePoint, 0, len(window))
	balance := opening
	for i := len(window) - 1; i >= 0; i-- {
		t := window[i]
		if t.Type == models.CategoryTransfer {
			balance -= t.Amount
		} else {
			balance += t.Amount
		}
		balance = round2(balance)
		points = append(points, models.BalancePoint{
			Label:   util.ParseTimeDefault(t.Timestamp, time.Unix(0, 0).UTC()).Format(shortDate),
			Balance: balance,
			Amount:  t.Amount,
		})
	}
	return points
}

// round2 rounds to 2 decimal places (currency scale).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
