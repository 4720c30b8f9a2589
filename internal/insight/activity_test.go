package insight

import (
	"testing"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
)

var anchor = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestDailyActivityAlwaysSevenBuckets(t *testing.T) {
	for _, window := range [][]models.Transaction{
		nil,
		{tx(models.CategoryDeposit, 100, models.StatusSuccess, "2025-03-10T09:00:00")},
	} {
		buckets := DailyActivity(window, anchor, 7)
		if len(buckets) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(buckets))
		}
		if buckets[0].DateKey != "2025-03-04" || buckets[6].DateKey != "2025-03-10" {
			t.Fatalf("unexpected window: %s .. %s", buckets[0].DateKey, buckets[6].DateKey)
		}
	}
}

func TestDailyActivityZeroFill(t *testing.T) {
	window := []models.Transaction{
		tx(models.CategoryDeposit, 500, models.StatusSuccess, "2025-03-08T11:00:00"),
	}
	buckets := DailyActivity(window, anchor, 7)
	for _, b := range buckets {
		if b.DateKey == "2025-03-08" {
			if b.Deposited != 500 || b.Sent != 0 {
				t.Fatalf("active bucket wrong: %+v", b)
			}
			continue
		}
		if b.Deposited != 0 || b.Sent != 0 {
			t.Fatalf("inactive bucket not zero-filled: %+v", b)
		}
	}
}

func TestDailyActivitySums(t *testing.T) {
	window := []models.Transaction{
		tx(models.CategoryTransfer, 75, models.StatusSuccess, "2025-03-09T20:00:00"),
		tx(models.CategoryDeposit, 200, models.StatusSuccess, "2025-03-09T12:00:00"),
		tx(models.CategoryDeposit, 100, models.StatusSuccess, "2025-03-09T08:00:00"),
		// Received contributes to neither deposited nor sent.
		tx(models.CategoryReceived, 999, models.StatusSuccess, "2025-03-09T07:00:00"),
	}
	buckets := DailyActivity(window, anchor, 7)
	var day models.DailyBucket
	for _, b := range buckets {
		if b.DateKey == "2025-03-09" {
			day = b
		}
	}
	if day.Deposited != 300 || day.Sent != 75 {
		t.Fatalf("unexpected bucket sums: %+v", day)
	}
}

func TestDailyActivityPrefixMatch(t *testing.T) {
	window := []models.Transaction{
		// Unparsable / non-ISO timestamps match no bucket.
		tx(models.CategoryDeposit, 100, models.StatusSuccess, "10/03/2025"),
		tx(models.CategoryDeposit, 100, models.StatusSuccess, ""),
		// Prefix match keys on the serialized string, not parsed time.
		tx(models.CategoryDeposit, 42, models.StatusSuccess, "2025-03-10T23:59:59+05:30"),
	}
	buckets := DailyActivity(window, anchor, 7)
	last := buckets[len(buckets)-1]
	if last.Deposited != 42 {
		t.Fatalf("prefix match failed: %+v", last)
	}
}

func TestMostActiveDayTieKeepsEarlier(t *testing.T) {
	buckets := []models.DailyBucket{
		{DateKey: "2025-03-04", Deposited: 100},
		{DateKey: "2025-03-05", Deposited: 60, Sent: 40},
		{DateKey: "2025-03-06", Deposited: 10},
	}
	winner, ok := MostActiveDay(buckets)
	if !ok {
		t.Fatalf("expected an active day")
	}
	if winner.DateKey != "2025-03-04" {
		t.Fatalf("tie must keep the earlier bucket, got %s", winner.DateKey)
	}
}

func TestMostActiveDayAllZeroSuppressed(t *testing.T) {
	buckets := DailyActivity(nil, anchor, 7)
	winner, ok := MostActiveDay(buckets)
	if ok {
		t.Fatalf("all-zero window must suppress the callout, got %+v", winner)
	}
	if winner.DateKey != buckets[0].DateKey {
		t.Fatalf("zero-activity winner should be the first bucket, got %s", winner.DateKey)
	}
}

func TestDailyActivityIdempotent(t *testing.T) {
	window := []models.Transaction{
		tx(models.CategoryDeposit, 10, models.StatusSuccess, "2025-03-10T09:00:00"),
		tx(models.CategoryTransfer, 5, models.StatusSuccess, "2025-03-06T09:00:00"),
	}
	a := DailyActivity(window, anchor, 7)
	b := DailyActivity(window, anchor, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bucket %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
