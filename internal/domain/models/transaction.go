package models

// RawTransaction mirrors a transaction record as delivered by the ledger
// service, before normalization. Optional fields are pointers so that a
// missing value is distinguishable from a zero one.
type RawTransaction struct {
	ID          string   `json:"id"`
	Type        string   `json:"transaction_type"`
	Amount      *float64 `json:"amount"`
	Status      string   `json:"status"`
	Timestamp   string   `json:"timestamp"`
	Description *string  `json:"description"`
}

// Transaction is a normalized wallet transaction. Every field is defined:
// a malformed upstream record degrades to CategoryUnknown / zero amount /
// empty timestamp instead of being dropped.
//
// Timestamp stays in its serialized form; day bucketing works by string
// prefix on it, matching the ledger's ISO-8601 output.
type Transaction struct {
	ID          string  `json:"id"`
	Type        Category `json:"transaction_type"`
	Amount      float64 `json:"amount"`
	Status      Status  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Description string  `json:"description,omitempty"`
}

// TransactionView decorates a transaction with its category traits for
// direct rendering.
type TransactionView struct {
	Transaction
	Sign  int    `json:"sign"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// NewTransactionView applies the category table to a transaction.
func NewTransactionView(t Transaction) TransactionView {
	tr := t.Type.Traits()
	return TransactionView{
		Transaction: t,
		Sign:        tr.Sign,
		Icon:        tr.Icon,
		Label:       tr.Label,
	}
}

// Summary is the authoritative aggregate owned by the ledger. The engine
// never recomputes these totals from a fetched window.
type Summary struct {
	TotalDeposited    float64 `json:"total_deposited"`
	TotalSent         float64 `json:"total_sent"`
	TotalReceived     float64 `json:"total_received"`
	TotalTransactions int     `json:"total_transactions"`
	CurrentBalance    float64 `json:"current_balance"`
}

// MutationResult is the ledger's reply to a deposit or transfer.
type MutationResult struct {
	Message    string  `json:"message,omitempty"`
	NewBalance float64 `json:"new_balance"`
}

// TransactionFilter selects a window of transactions from the ledger.
type TransactionFilter struct {
	Type  string
	Limit int
}
