package api

import (
	"errors"

	models "github.com/Vivesh2911/NeoWallet/internal/domain/models"
	"github.com/Vivesh2911/NeoWallet/internal/service/ratelimit"
	"github.com/Vivesh2911/NeoWallet/internal/services/ledger"
	"github.com/Vivesh2911/NeoWallet/internal/usecase"
	xhttp "github.com/Vivesh2911/NeoWallet/pkg/http"
	xlogger "github.com/Vivesh2911/NeoWallet/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WalletHandler serves the dashboard, transaction listing and money-movement
// endpoints.
type WalletHandler struct {
	logger    *xlogger.Logger
	dashboard *usecase.DashboardUseCase
	wallet    *usecase.WalletUseCase
	limiter   *ratelimit.Limiter

	mutationCapacity float64
	mutationRefill   float64 // tokens per second
}

func NewWalletHandler(lgr *xlogger.Logger, dashboard *usecase.DashboardUseCase, wallet *usecase.WalletUseCase, limiter *ratelimit.Limiter, mutationsPerMin, burst int) *WalletHandler {
	if mutationsPerMin <= 0 {
		mutationsPerMin = 30
	}
	if burst <= 0 {
		burst = 5
	}
	return &WalletHandler{
		logger:           lgr,
		dashboard:        dashboard,
		wallet:           wallet,
		limiter:          limiter,
		mutationCapacity: float64(burst),
		mutationRefill:   float64(mutationsPerMin) / 60,
	}
}

func (h *WalletHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/transactions", h.Transactions)
	g.GET("/wallet/balance", h.Balance)
	g.POST("/wallet/deposit", h.Deposit, h.mutationLimit)
	g.POST("/wallet/transfer", h.Transfer, h.mutationLimit)
	g.POST("/transfer/preview", h.TransferPreview)
}

// mutationLimit throttles money movement per client IP.
func (h *WalletHandler) mutationLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow(c.RealIP(), h.mutationCapacity, h.mutationRefill) {
			return xhttp.TooManyRequestsResponse(c, map[string]string{
				"message": "too many wallet operations, slow down",
			})
		}
		return next(c)
	}
}

func (h *WalletHandler) Dashboard(c echo.Context) error {
	req := &models.DashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	view, err := h.dashboard.GetDashboard(c.Request().Context(), usecase.GetDashboardParams{RecentLimit: req.Limit})
	if err != nil {
		h.logger.Error("dashboard usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("ledger unavailable"))
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *WalletHandler) Transactions(c echo.Context) error {
	req := &models.TransactionsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	views, err := h.dashboard.GetTransactions(c.Request().Context(), models.TransactionFilter{
		Type:  req.Type,
		Limit: req.Limit,
	})
	if err != nil {
		h.logger.Error("transactions usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("ledger unavailable"))
	}
	return xhttp.ListResponse(c, views, int64(len(views)))
}

func (h *WalletHandler) Balance(c echo.Context) error {
	balance, err := h.wallet.GetBalance(c.Request().Context())
	if err != nil {
		h.logger.Error("balance usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("ledger unavailable"))
	}
	return xhttp.SuccessResponse(c, map[string]float64{"current_balance": balance})
}

func (h *WalletHandler) Deposit(c echo.Context) error {
	req := &models.DepositRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.wallet.Deposit(c.Request().Context(), req.Amount)
	if err != nil {
		return h.mutationError(c, "deposit", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *WalletHandler) Transfer(c echo.Context) error {
	req := &models.TransferRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.wallet.Transfer(c.Request().Context(), req.Receiver, req.Amount, req.Description)
	if err != nil {
		return h.mutationError(c, "transfer", err)
	}
	return xhttp.SuccessResponse(c, res)
}

// TransferPreview is a pure projection; it accepts any numbers and never
// consults the ledger.
func (h *WalletHandler) TransferPreview(c echo.Context) error {
	req := &models.TransferPreviewRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	return xhttp.SuccessResponse(c, h.wallet.PreviewTransfer(req.CurrentBalance, req.Amount))
}

// mutationError maps ledger rejections onto client-facing statuses.
func (h *WalletHandler) mutationError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("insufficient funds"))
	case errors.Is(err, ledger.ErrInvalidAmount):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("invalid amount"))
	case errors.Is(err, ledger.ErrReceiverNotFound):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("receiver not found"))
	case errors.Is(err, ledger.ErrTransferFlagged):
		return xhttp.AppErrorResponse(c, xhttp.ForbiddenError("transfer flagged for review"))
	default:
		h.logger.Error(op+" usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("ledger unavailable"))
	}
}
