package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
	domrepo "github.com/Vivesh2911/NeoWallet/internal/domain/repository"
	"github.com/Vivesh2911/NeoWallet/internal/insight"
)

// DashboardUseCase assembles the dashboard payload: summary, live balance,
// recent transactions and the replayed balance timeline.
type DashboardUseCase struct {
	ledger      domrepo.Ledger
	metrics     domrepo.Metrics
	fetchLimit  int
	recentLimit int
	timeout     time.Duration
}

func NewDashboardUseCase(ledger domrepo.Ledger, metrics domrepo.Metrics, fetchLimit, recentLimit int) *DashboardUseCase {
	if fetchLimit <= 0 {
		fetchLimit = 50
	}
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &DashboardUseCase{
		ledger:      ledger,
		metrics:     metrics,
		fetchLimit:  fetchLimit,
		recentLimit: recentLimit,
		timeout:     10 * time.Second,
	}
}

type GetDashboardParams struct {
	RecentLimit int
}

// GetDashboard fans out the three ledger reads concurrently and assembles the
// view. Any failed read fails the whole request; a dashboard with silently
// missing panels is worse than an error.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, p GetDashboardParams) (*models.DashboardView, error) {
	if p.RecentLimit <= 0 {
		p.RecentLimit = uc.recentLimit
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var (
		wg      sync.WaitGroup
		summary models.Summary
		balance float64
		raw     []models.RawTransaction

		sumErr, balErr, txErr error
	)

	start := time.Now()
	wg.Add(1)
	go func() {
		defer wg.Done()
		summary, sumErr = uc.ledger.FetchSummary(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		balance, balErr = uc.ledger.FetchBalance(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		raw, txErr = uc.ledger.FetchTransactions(ctx, models.TransactionFilter{Limit: uc.fetchLimit})
	}()
	wg.Wait()
	uc.metrics.RecordLatency("dashboard_fanout", time.Since(start).Seconds())

	if sumErr != nil {
		return nil, fmt.Errorf("fetch summary: %w", sumErr)
	}
	if balErr != nil {
		return nil, fmt.Errorf("fetch balance: %w", balErr)
	}
	if txErr != nil {
		return nil, fmt.Errorf("fetch transactions: %w", txErr)
	}

	window := insight.Normalize(raw)

	recent := make([]models.TransactionView, 0, p.RecentLimit)
	for _, t := range window {
		if len(recent) == p.RecentLimit {
			break
		}
		recent = append(recent, models.NewTransactionView(t))
	}

	return &models.DashboardView{
		Summary:    &summary,
		Balance:    balance,
		Recent:     recent,
		Timeline: insight.ReplayTimeline(window, 0),
		// The timeline replays the fetched window seeded at zero; it is not
		// the true historical series when the window is short.
		WindowOnly: true,
	}, nil
}

// GetTransactions returns a normalized, decorated window, preserving the
// ledger's newest-first order.
func (uc *DashboardUseCase) GetTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionView, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.ledger.FetchTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	window := insight.Normalize(raw)
	views := make([]models.TransactionView, 0, len(window))
	for _, t := range window {
		views = append(views, models.NewTransactionView(t))
	}
	return views, nil
}
