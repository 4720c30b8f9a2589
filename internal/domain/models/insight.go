package models

import "time"

// BalancePoint is one step of a replayed balance timeline.
// Amount is the unsigned transaction amount behind the step.
type BalancePoint struct {
	Label   string  `json:"label"`
	Balance float64 `json:"balance"`
	Amount  float64 `json:"amount"`
}

// DailyBucket is one calendar-day slot of the trailing activity window.
// Buckets with no transactions carry explicit zeros.
type DailyBucket struct {
	Label     string  `json:"label"`
	DateKey   string  `json:"date_key"`
	Deposited float64 `json:"deposited"`
	Sent      float64 `json:"sent"`
}

// Total returns the combined activity of the bucket.
func (b DailyBucket) Total() float64 {
	return b.Deposited + b.Sent
}

// CategoryBreakdown counts records per category over a window. Flagged is
// counted independently of the type buckets, so a flagged deposit appears in
// both Deposits and Flagged.
type CategoryBreakdown struct {
	Deposits  int `json:"deposits"`
	Transfers int `json:"transfers"`
	Received  int `json:"received"`
	Flagged   int `json:"flagged"`
	Unknown   int `json:"unknown,omitempty"`
}

// WindowStats are ratios derived from a fetched window only. They are
// approximations of lifetime values whenever the window is smaller than the
// full history; monetary totals therefore live in Summary, not here.
type WindowStats struct {
	SuccessRate        int               `json:"success_rate"`
	AverageTransaction float64           `json:"average_transaction"`
	Breakdown          CategoryBreakdown `json:"breakdown"`
	WindowSize         int               `json:"window_size"`
}

// DashboardView is the assembled dashboard payload.
type DashboardView struct {
	Summary    *Summary          `json:"summary,omitempty"`
	Balance    float64           `json:"balance"`
	Recent     []TransactionView `json:"recent"`
	Timeline   []BalancePoint    `json:"timeline"`
	WindowOnly bool              `json:"window_only"`
}

// AnalyticsOverview is the assembled analytics payload. MostActive is nil
// when every bucket in the window is zero.
type AnalyticsOverview struct {
	Stats       WindowStats   `json:"stats"`
	Activity    []DailyBucket `json:"activity"`
	MostActive  *DailyBucket  `json:"most_active_day,omitempty"`
	Totals      *Summary      `json:"totals,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// TransferPreview is the optimistic projection shown before a transfer is
// submitted. Projected may be negative; sufficiency is the ledger's call.
type TransferPreview struct {
	CurrentBalance float64 `json:"current_balance"`
	Amount         float64 `json:"amount"`
	Projected      float64 `json:"projected_balance"`
}
