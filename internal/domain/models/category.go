package models

// Category is the closed set of transaction types the wallet understands.
// Unknown is the fail-closed bucket for records that arrive without a type.
type Category string

const (
	CategoryDeposit  Category = "deposit"
	CategoryTransfer Category = "transfer"
	CategoryReceived Category = "received"
	CategoryUnknown  Category = "unknown"
)

// Status of a transaction as reported by the ledger.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFlagged Status = "flagged"
	StatusFailed  Status = "failed"
)

// CategoryTraits carries the presentation attributes of a category.
// Sign is +1 for inflows and -1 for outflows.
type CategoryTraits struct {
	Sign  int    `json:"sign"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// categoryTraits is the single source of truth for category dispatch.
// Only transfers are outflows; an unknown category keeps the inflow sign so
// that replayed balances match the ledger's own convention.
var categoryTraits = map[Category]CategoryTraits{
	CategoryDeposit:  {Sign: +1, Icon: "inbox", Label: "Deposit"},
	CategoryTransfer: {Sign: -1, Icon: "outbox", Label: "Transfer"},
	CategoryReceived: {Sign: +1, Icon: "envelope", Label: "Received"},
	CategoryUnknown:  {Sign: +1, Icon: "question", Label: "Unknown"},
}

// Traits returns the presentation attributes for the category.
func (c Category) Traits() CategoryTraits {
	if t, ok := categoryTraits[c]; ok {
		return t
	}
	return categoryTraits[CategoryUnknown]
}

// Known reports whether the category is one of the ledger-defined types.
func (c Category) Known() bool {
	return c == CategoryDeposit || c == CategoryTransfer || c == CategoryReceived
}

// ParseCategory maps a wire string onto the closed category set.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryDeposit, CategoryTransfer, CategoryReceived:
		return Category(s)
	default:
		return CategoryUnknown
	}
}
