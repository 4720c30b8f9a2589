package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
	domrepo "github.com/Vivesh2911/NeoWallet/internal/domain/repository"
	"github.com/Vivesh2911/NeoWallet/internal/insight"
	"github.com/Vivesh2911/NeoWallet/internal/session"
	"github.com/Vivesh2911/NeoWallet/pkg/logger"
	"github.com/Vivesh2911/NeoWallet/pkg/queue"
)

// MsgTypeAnalyticsRefresh is published after every successful mutation.
const MsgTypeAnalyticsRefresh = "analytics.refresh"

// RefreshPayload travels with an analytics refresh message.
type RefreshPayload struct {
	Reason  string  `json:"reason"`
	Balance float64 `json:"balance"`
}

// WalletUseCase executes money movement against the ledger and keeps the
// session balance and cached analytics in step with the result.
type WalletUseCase struct {
	ledger    domrepo.Ledger
	metrics   domrepo.Metrics
	sessions  *session.Store
	publisher queue.Publisher
	logger    *logger.Logger
	timeout   time.Duration
}

func NewWalletUseCase(ledger domrepo.Ledger, metrics domrepo.Metrics, sessions *session.Store, publisher queue.Publisher, lgr *logger.Logger) *WalletUseCase {
	return &WalletUseCase{
		ledger:    ledger,
		metrics:   metrics,
		sessions:  sessions,
		publisher: publisher,
		logger:    lgr,
		timeout:   10 * time.Second,
	}
}

// GetBalance reads the authoritative balance and refreshes the session copy.
func (uc *WalletUseCase) GetBalance(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	balance, err := uc.ledger.FetchBalance(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch balance: %w", err)
	}
	uc.sessions.SetBalance(balance)
	return balance, nil
}

// Deposit submits a deposit. The ledger decides acceptance; on success the
// new balance flows into the session and a cache refresh is queued.
func (uc *WalletUseCase) Deposit(ctx context.Context, amount float64) (*models.MutationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res, err := uc.ledger.Deposit(ctx, amount)
	if err != nil {
		return nil, err
	}
	uc.afterMutation(ctx, "deposit", res.NewBalance)
	return &res, nil
}

// Transfer submits a transfer to receiver. Sufficiency, receiver existence
// and fraud flagging are the ledger's calls; sentinel errors surface them.
func (uc *WalletUseCase) Transfer(ctx context.Context, receiver string, amount float64, description string) (*models.MutationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res, err := uc.ledger.Transfer(ctx, receiver, amount, description)
	if err != nil {
		return nil, err
	}
	uc.afterMutation(ctx, "transfer", res.NewBalance)
	return &res, nil
}

// PreviewTransfer projects the balance after a prospective transfer. Pure
// arithmetic, never fails, and the projection may be negative.
func (uc *WalletUseCase) PreviewTransfer(currentBalance, amount float64) models.TransferPreview {
	return insight.PreviewTransfer(currentBalance, amount)
}

func (uc *WalletUseCase) afterMutation(ctx context.Context, reason string, newBalance float64) {
	uc.sessions.SetBalance(newBalance)
	uc.metrics.RecordBalance(uc.sessions.Snapshot().UserID, newBalance)

	if uc.publisher == nil {
		return
	}
	err := uc.publisher.Publish(ctx, MsgTypeAnalyticsRefresh, RefreshPayload{
		Reason:  reason,
		Balance: newBalance,
	})
	if err != nil {
		// Stale cached analytics expire by TTL anyway.
		uc.logger.Warn("publish analytics refresh failed",
			logger.String("reason", reason), logger.Error(err))
	}
}
