package insight

import (
	"strings"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
)

// dateKey is the ISO calendar-date key a bucket matches timestamps against.
const dateKey = "2006-01-02"

// DailyActivity buckets a transaction window into the trailing days-long
// calendar window ending at anchor, oldest bucket first. The result always
// has exactly days buckets; inactive days carry explicit zeros so charts
// render flat bars instead of gaps.
//
// Membership is a string-prefix match of the serialized timestamp against
// the bucket's YYYY-MM-DD key, in the anchor's calendar. This mirrors the
// ledger's ISO output; records whose timestamps carry any other shape match
// no bucket (they still count toward window totals elsewhere).
func DailyActivity(window []models.Transaction, anchor time.Time, days int) []models.DailyBucket {
	if days <= 0 {
		return []models.DailyBucket{}
	}
	buckets := make([]models.DailyBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := anchor.AddDate(0, 0, -i)
		b := models.DailyBucket{
			Label:   day.Format(shortDate),
			DateKey: day.Format(dateKey),
		}
		for _, t := range window {
			if !strings.HasPrefix(t.Timestamp, b.DateKey) {
				continue
			}
			switch t.Type {
			case models.CategoryDeposit:
				b.Deposited += t.Amount
			case models.CategoryTransfer:
				b.Sent += t.Amount
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// MostActiveDay scans buckets oldest-first for the strictly greatest
// combined activity; ties keep the earlier bucket. The second return is
// false when the winning total is zero, in which case the callout must be
// suppressed.
func MostActiveDay(buckets []models.DailyBucket) (models.DailyBucket, bool) {
	if len(buckets) == 0 {
		return models.DailyBucket{}, false
	}
	winner := buckets[0]
	for _, b := range buckets[1:] {
		if b.Total() > winner.Total() {
			winner = b
		}
	}
	return winner, winner.Total() > 0
}
