package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
	"github.com/Vivesh2911/NeoWallet/internal/service/cache"
	"github.com/Vivesh2911/NeoWallet/internal/session"
	"github.com/Vivesh2911/NeoWallet/pkg/logger"
)

// fakeLedger scripts ledger responses for the usecases under test.
type fakeLedger struct {
	transactions []models.RawTransaction
	summary      models.Summary
	balance      float64

	txErr      error
	summaryErr error
	balanceErr error

	depositResult  models.MutationResult
	depositErr     error
	transferResult models.MutationResult
	transferErr    error

	lastFilter models.TransactionFilter
}

func (f *fakeLedger) FetchTransactions(_ context.Context, filter models.TransactionFilter) ([]models.RawTransaction, error) {
	f.lastFilter = filter
	return f.transactions, f.txErr
}

func (f *fakeLedger) FetchSummary(context.Context) (models.Summary, error) {
	return f.summary, f.summaryErr
}

func (f *fakeLedger) FetchBalance(context.Context) (float64, error) {
	return f.balance, f.balanceErr
}

func (f *fakeLedger) Deposit(context.Context, float64) (models.MutationResult, error) {
	return f.depositResult, f.depositErr
}

func (f *fakeLedger) Transfer(context.Context, string, float64, string) (models.MutationResult, error) {
	return f.transferResult, f.transferErr
}

type noopMetrics struct{}

func (noopMetrics) RecordLedgerCall(string, string) {}
func (noopMetrics) RecordError(string)              {}
func (noopMetrics) RecordBalance(string, float64)   {}
func (noopMetrics) RecordLatency(string, float64)   {}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	lgr, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return lgr
}

func fptr(v float64) *float64 { return &v }

func rawTx(id, typ string, amount float64, status, ts string) models.RawTransaction {
	return models.RawTransaction{ID: id, Type: typ, Amount: fptr(amount), Status: status, Timestamp: ts}
}

func TestDashboardAssemblesView(t *testing.T) {
	ledger := &fakeLedger{
		transactions: []models.RawTransaction{
			rawTx("t2", "transfer", 300, "success", "2025-03-02T10:00:00Z"),
			rawTx("t1", "deposit", 1000, "success", "2025-03-01T09:00:00Z"),
		},
		summary: models.Summary{TotalDeposited: 1000, TotalSent: 300, CurrentBalance: 700, TotalTransactions: 2},
		balance: 700,
	}
	uc := NewDashboardUseCase(ledger, noopMetrics{}, 50, 5)

	view, err := uc.GetDashboard(context.Background(), GetDashboardParams{RecentLimit: 1})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if view.Balance != 700 {
		t.Fatalf("balance = %v, want 700", view.Balance)
	}
	if !view.WindowOnly {
		t.Fatalf("window_only must be disclosed")
	}
	if len(view.Recent) != 1 || view.Recent[0].ID != "t2" {
		t.Fatalf("recent = %+v, want newest first, capped at 1", view.Recent)
	}
	if view.Recent[0].Sign != -1 {
		t.Fatalf("transfer sign = %d, want -1", view.Recent[0].Sign)
	}
	if len(view.Timeline) != 2 {
		t.Fatalf("timeline length = %d, want 2", len(view.Timeline))
	}
	// Replay is chronological: deposit first, then the transfer.
	if view.Timeline[0].Balance != 1000 || view.Timeline[1].Balance != 700 {
		t.Fatalf("timeline = %+v, want [1000 700]", view.Timeline)
	}
	if ledger.lastFilter.Limit != 50 {
		t.Fatalf("fetch limit = %d, want 50", ledger.lastFilter.Limit)
	}
}

func TestDashboardFailsWhenAnyFetchFails(t *testing.T) {
	ledger := &fakeLedger{balanceErr: errors.New("upstream down")}
	uc := NewDashboardUseCase(ledger, noopMetrics{}, 50, 5)

	if _, err := uc.GetDashboard(context.Background(), GetDashboardParams{}); err == nil {
		t.Fatalf("expected error when balance fetch fails")
	}
}

func TestGetTransactionsPreservesOrder(t *testing.T) {
	ledger := &fakeLedger{
		transactions: []models.RawTransaction{
			rawTx("t3", "received", 50, "success", "2025-03-03T08:00:00Z"),
			rawTx("t2", "bonus", 10, "success", "2025-03-02T08:00:00Z"),
			rawTx("t1", "deposit", 100, "success", "2025-03-01T08:00:00Z"),
		},
	}
	uc := NewDashboardUseCase(ledger, noopMetrics{}, 50, 5)

	views, err := uc.GetTransactions(context.Background(), models.TransactionFilter{Limit: 20})
	if err != nil {
		t.Fatalf("GetTransactions: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("got %d views, want 3", len(views))
	}
	if views[0].ID != "t3" || views[2].ID != "t1" {
		t.Fatalf("order not preserved: %+v", views)
	}
	if views[1].Type != models.CategoryUnknown {
		t.Fatalf("unrecognized type must normalize to unknown, got %q", views[1].Type)
	}
}

func TestAnalyticsOverview(t *testing.T) {
	ledger := &fakeLedger{
		transactions: []models.RawTransaction{
			rawTx("t2", "transfer", 200, "success", "2025-03-02T10:00:00Z"),
			rawTx("t1", "deposit", 1000, "flagged", "2025-03-01T09:00:00Z"),
		},
		summary: models.Summary{TotalDeposited: 1000, CurrentBalance: 800},
	}
	uc := NewAnalyticsUseCase(ledger, noopMetrics{}, cache.NewTTLCache(), testLogger(t), time.Minute)
	uc.now = func() time.Time { return time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC) }

	ov, err := uc.GetOverview(context.Background(), GetOverviewParams{Limit: 50, Days: 7})
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.Stats.WindowSize != 2 || ov.Stats.SuccessRate != 50 {
		t.Fatalf("stats = %+v", ov.Stats)
	}
	if ov.Stats.Breakdown.Deposits != 1 || ov.Stats.Breakdown.Flagged != 1 {
		t.Fatalf("breakdown = %+v", ov.Stats.Breakdown)
	}
	if len(ov.Activity) != 7 {
		t.Fatalf("activity buckets = %d, want 7", len(ov.Activity))
	}
	if ov.MostActive == nil || ov.MostActive.DateKey != "2025-03-01" {
		t.Fatalf("most active = %+v, want 2025-03-01", ov.MostActive)
	}
	if ov.Totals == nil || ov.Totals.CurrentBalance != 800 {
		t.Fatalf("totals = %+v", ov.Totals)
	}
}

func TestAnalyticsOverviewServedFromCache(t *testing.T) {
	ledger := &fakeLedger{
		transactions: []models.RawTransaction{
			rawTx("t1", "deposit", 100, "success", "2025-03-01T09:00:00Z"),
		},
	}
	uc := NewAnalyticsUseCase(ledger, noopMetrics{}, cache.NewTTLCache(), testLogger(t), time.Minute)

	if _, err := uc.GetOverview(context.Background(), GetOverviewParams{Limit: 50, Days: 7}); err != nil {
		t.Fatalf("first GetOverview: %v", err)
	}

	// Second call must not hit the ledger.
	ledger.txErr = errors.New("ledger down")
	ov, err := uc.GetOverview(context.Background(), GetOverviewParams{Limit: 50, Days: 7})
	if err != nil {
		t.Fatalf("cached GetOverview: %v", err)
	}
	if ov.Stats.WindowSize != 1 {
		t.Fatalf("cached stats = %+v", ov.Stats)
	}

	// Invalidation forces a recompute, which now fails.
	uc.InvalidateOverviews()
	if _, err := uc.GetOverview(context.Background(), GetOverviewParams{Limit: 50, Days: 7}); err == nil {
		t.Fatalf("expected recompute to hit the failing ledger")
	}
}

func TestAnalyticsOverviewFailsWhenSummaryFails(t *testing.T) {
	wantErr := errors.New("summary down")
	ledger := &fakeLedger{
		transactions: []models.RawTransaction{
			rawTx("t1", "deposit", 100, "success", "2025-03-01T09:00:00Z"),
		},
		summaryErr: wantErr,
	}
	uc := NewAnalyticsUseCase(ledger, noopMetrics{}, nil, testLogger(t), time.Minute)

	// No partial overview: window stats beside missing totals would
	// misrepresent the wallet, so the whole read fails.
	ov, err := uc.GetOverview(context.Background(), GetOverviewParams{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if ov != nil {
		t.Fatalf("expected no overview on summary failure, got %+v", ov)
	}
}

func TestDashboardRecentLimitFromConfiguredDefault(t *testing.T) {
	ledger := &fakeLedger{
		transactions: []models.RawTransaction{
			rawTx("t3", "deposit", 30, "success", "2025-03-03T09:00:00Z"),
			rawTx("t2", "deposit", 20, "success", "2025-03-02T09:00:00Z"),
			rawTx("t1", "deposit", 10, "success", "2025-03-01T09:00:00Z"),
		},
	}
	uc := NewDashboardUseCase(ledger, noopMetrics{}, 50, 2)

	view, err := uc.GetDashboard(context.Background(), GetDashboardParams{})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if len(view.Recent) != 2 || view.Recent[0].ID != "t3" {
		t.Fatalf("recent = %+v, want configured cap of 2, newest first", view.Recent)
	}

	// An explicit request cap still wins over the configured default.
	view, err = uc.GetDashboard(context.Background(), GetDashboardParams{RecentLimit: 1})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if len(view.Recent) != 1 {
		t.Fatalf("recent = %+v, want explicit cap of 1", view.Recent)
	}
}

type capturingPublisher struct {
	msgType string
	payload interface{}
	err     error
}

func (p *capturingPublisher) Publish(_ context.Context, msgType string, payload interface{}) error {
	p.msgType = msgType
	p.payload = payload
	return p.err
}

func TestDepositUpdatesSessionAndPublishes(t *testing.T) {
	ledger := &fakeLedger{depositResult: models.MutationResult{Message: "ok", NewBalance: 1500}}
	sessions := session.NewStore(session.State{Balance: 500})
	defer sessions.Close()
	pub := &capturingPublisher{}
	uc := NewWalletUseCase(ledger, noopMetrics{}, sessions, pub, testLogger(t))

	res, err := uc.Deposit(context.Background(), 1000)
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if res.NewBalance != 1500 {
		t.Fatalf("new balance = %v, want 1500", res.NewBalance)
	}
	if pub.msgType != MsgTypeAnalyticsRefresh {
		t.Fatalf("published type = %q", pub.msgType)
	}

	deadline := time.After(2 * time.Second)
	for sessions.Snapshot().Balance != 1500 {
		select {
		case <-deadline:
			t.Fatalf("session balance = %v, want 1500", sessions.Snapshot().Balance)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestTransferErrorPassesThrough(t *testing.T) {
	wantErr := errors.New("insufficient funds")
	ledger := &fakeLedger{transferErr: wantErr}
	sessions := session.NewStore(session.State{Balance: 100})
	defer sessions.Close()
	uc := NewWalletUseCase(ledger, noopMetrics{}, sessions, nil, testLogger(t))

	if _, err := uc.Transfer(context.Background(), "a@b.com", 500, ""); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if sessions.Snapshot().Balance != 100 {
		t.Fatalf("failed transfer must not touch the session balance")
	}
}

func TestPreviewTransferMayGoNegative(t *testing.T) {
	uc := NewWalletUseCase(&fakeLedger{}, noopMetrics{}, session.NewStore(session.State{}), nil, testLogger(t))

	p := uc.PreviewTransfer(300, 500)
	if p.Projected != -200 {
		t.Fatalf("projected = %v, want -200", p.Projected)
	}
}

func TestGetBalanceRefreshesSession(t *testing.T) {
	ledger := &fakeLedger{balance: 4242.42}
	sessions := session.NewStore(session.State{})
	defer sessions.Close()
	uc := NewWalletUseCase(ledger, noopMetrics{}, sessions, nil, testLogger(t))

	b, err := uc.GetBalance(context.Background())
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if b != 4242.42 {
		t.Fatalf("balance = %v", b)
	}
}
