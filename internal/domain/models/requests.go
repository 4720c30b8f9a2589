package models

// Requests for wallet HTTP endpoints. Defined in domain for consistency and reuse.

// DashboardRequest's recent-transactions cap is optional; when absent the
// configured ledger.recent_limit applies.
type DashboardRequest struct {
	Limit int `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=50"`
}

type AnalyticsRequest struct {
	Limit int `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=100"`
}

type ActivityRequest struct {
	Days  int `query:"days" json:"days" default:"7" validate:"gte=1,lte=31"`
	Limit int `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=100"`
}

type TransactionsRequest struct {
	Type  string `query:"type" json:"type" validate:"omitempty,oneof=deposit transfer received"`
	Limit int    `query:"limit" json:"limit" default:"20" validate:"gte=1,lte=100"`
}

type DepositRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type TransferRequest struct {
	Receiver    string  `json:"receiver" validate:"required,email"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=200"`
}

// TransferPreviewRequest carries the in-progress form state. No sufficiency
// validation: the preview is recomputed on every keystroke and may project a
// negative balance.
type TransferPreviewRequest struct {
	CurrentBalance float64 `json:"current_balance"`
	Amount         float64 `json:"amount"`
}
