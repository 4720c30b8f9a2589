package repository

import (
	"context"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
)

// Ledger is the authoritative wallet/ledger collaborator. It owns balances,
// executes money movement atomically and assigns transaction identifiers.
// FetchTransactions returns records newest first; derived computations that
// need chronological order must reverse explicitly.
type Ledger interface {
	FetchTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.RawTransaction, error)
	FetchSummary(ctx context.Context) (models.Summary, error)
	FetchBalance(ctx context.Context) (float64, error)
	Deposit(ctx context.Context, amount float64) (models.MutationResult, error)
	Transfer(ctx context.Context, receiver string, amount float64, description string) (models.MutationResult, error)
}

// Metrics records operational metrics.
type Metrics interface {
	RecordLedgerCall(operation, outcome string)
	RecordError(kind string)
	RecordBalance(user string, balance float64)
	RecordLatency(op string, seconds float64)
}
