package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
	"github.com/Vivesh2911/NeoWallet/internal/service/ratelimit"
	"github.com/Vivesh2911/NeoWallet/internal/services/ledger"
	"github.com/Vivesh2911/NeoWallet/internal/session"
	"github.com/Vivesh2911/NeoWallet/internal/usecase"
	"github.com/Vivesh2911/NeoWallet/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubLedger struct {
	transactions []models.RawTransaction
	summary      models.Summary
	balance      float64
	depositErr   error
	transferErr  error
}

func (s *stubLedger) FetchTransactions(context.Context, models.TransactionFilter) ([]models.RawTransaction, error) {
	return s.transactions, nil
}
func (s *stubLedger) FetchSummary(context.Context) (models.Summary, error) {
	return s.summary, nil
}
func (s *stubLedger) FetchBalance(context.Context) (float64, error) {
	return s.balance, nil
}
func (s *stubLedger) Deposit(context.Context, float64) (models.MutationResult, error) {
	if s.depositErr != nil {
		return models.MutationResult{}, s.depositErr
	}
	return models.MutationResult{Message: "ok", NewBalance: s.balance}, nil
}
func (s *stubLedger) Transfer(context.Context, string, float64, string) (models.MutationResult, error) {
	if s.transferErr != nil {
		return models.MutationResult{}, s.transferErr
	}
	return models.MutationResult{Message: "ok", NewBalance: s.balance}, nil
}

type nilMetrics struct{}

func (nilMetrics) RecordLedgerCall(string, string) {}
func (nilMetrics) RecordError(string)              {}
func (nilMetrics) RecordBalance(string, float64)   {}
func (nilMetrics) RecordLatency(string, float64)   {}

func newTestServer(t *testing.T, l *stubLedger) (*echo.Echo, *session.Store) {
	t.Helper()
	lgr, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	sessions := session.NewStore(session.State{})
	t.Cleanup(sessions.Close)

	dashboard := usecase.NewDashboardUseCase(l, nilMetrics{}, 50, 5)
	wallet := usecase.NewWalletUseCase(l, nilMetrics{}, sessions, nil, lgr)

	e := echo.New()
	NewWalletHandler(lgr, dashboard, wallet, ratelimit.New(), 60, 5).RegisterRoutes(e)
	return e, sessions
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDashboardEndpoint(t *testing.T) {
	amount := 100.0
	e, _ := newTestServer(t, &stubLedger{
		transactions: []models.RawTransaction{
			{ID: "t1", Type: "deposit", Amount: &amount, Status: "success", Timestamp: "2025-03-01T09:00:00Z"},
		},
		summary: models.Summary{TotalDeposited: 100, CurrentBalance: 100, TotalTransactions: 1},
		balance: 100,
	})

	rec := doJSON(e, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.DashboardView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Balance != 100 || !resp.Data.WindowOnly {
		t.Fatalf("view = %+v", resp.Data)
	}
	if len(resp.Data.Timeline) != 1 || resp.Data.Timeline[0].Balance != 100 {
		t.Fatalf("timeline = %+v", resp.Data.Timeline)
	}
}

func TestDashboardRejectsBadLimit(t *testing.T) {
	e, _ := newTestServer(t, &stubLedger{})

	rec := doJSON(e, http.MethodGet, "/api/dashboard?limit=500", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDepositValidation(t *testing.T) {
	e, _ := newTestServer(t, &stubLedger{})

	rec := doJSON(e, http.MethodPost, "/api/wallet/deposit", `{"amount":-5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTransferErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"insufficient", ledger.ErrInsufficientFunds, http.StatusBadRequest},
		{"receiver missing", ledger.ErrReceiverNotFound, http.StatusNotFound},
		{"flagged", ledger.ErrTransferFlagged, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newTestServer(t, &stubLedger{transferErr: tc.err})

			rec := doJSON(e, http.MethodPost, "/api/wallet/transfer",
				`{"receiver":"bob@example.com","amount":50}`)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestTransferPreviewAllowsNegativeProjection(t *testing.T) {
	e, _ := newTestServer(t, &stubLedger{})

	rec := doJSON(e, http.MethodPost, "/api/transfer/preview",
		`{"current_balance":300,"amount":500}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.TransferPreview `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Projected != -200 {
		t.Fatalf("projected = %v, want -200", resp.Data.Projected)
	}
}

func TestMutationRateLimit(t *testing.T) {
	e, _ := newTestServer(t, &stubLedger{balance: 10})

	var limited bool
	for i := 0; i < 10; i++ {
		rec := doJSON(e, http.MethodPost, "/api/wallet/deposit", `{"amount":1}`)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Fatalf("burst of deposits was never throttled")
	}
}
