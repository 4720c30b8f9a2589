// Package ledger is the HTTP client for the wallet/ledger collaborator. The
// collaborator owns the authoritative balance and executes money movement;
// this client only fetches windows and proxies mutations, surfacing failures
// as single error signals without retrying.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
	domrepo "github.com/Vivesh2911/NeoWallet/internal/domain/repository"
	"github.com/Vivesh2911/NeoWallet/pkg/config"
	xhttp "github.com/Vivesh2911/NeoWallet/pkg/http"
	applogger "github.com/Vivesh2911/NeoWallet/pkg/logger"
)

type Client struct {
	baseURL string
	token   string
	client  *xhttp.Client
	logger  *applogger.Logger
	metrics domrepo.Metrics
}

// New builds a ledger client with timeout and base URL from config.
func New(cfg *config.Config, l *applogger.Logger, m domrepo.Metrics) *Client {
	timeout := cfg.Ledger.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.Ledger.BaseURL, "/"),
		token:   cfg.Ledger.APIToken,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		logger:  l,
		metrics: m,
	}
}

var _ domrepo.Ledger = (*Client)(nil)

// FetchTransactions returns a window of raw records, newest first. The order
// is the collaborator's contract; nothing is reordered here.
func (c *Client) FetchTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.RawTransaction, error) {
	params := map[string][]string{}
	if filter.Type != "" {
		params["type"] = []string{filter.Type}
	}
	if filter.Limit > 0 {
		params["limit"] = []string{strconv.Itoa(filter.Limit)}
	}

	var out []models.RawTransaction
	err := c.get(ctx, "/transactions", params, &out)
	if err != nil {
		c.record("fetch_transactions", err)
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	c.record("fetch_transactions", nil)
	return out, nil
}

// FetchSummary returns the authoritative lifetime aggregate.
func (c *Client) FetchSummary(ctx context.Context) (models.Summary, error) {
	var out models.Summary
	if err := c.get(ctx, "/transactions/summary", nil, &out); err != nil {
		c.record("fetch_summary", err)
		return models.Summary{}, fmt.Errorf("fetch summary: %w", err)
	}
	c.record("fetch_summary", nil)
	return out, nil
}

type balanceResp struct {
	CurrentBalance float64 `json:"current_balance"`
}

// FetchBalance returns the current authoritative balance.
func (c *Client) FetchBalance(ctx context.Context) (float64, error) {
	var out balanceResp
	if err := c.get(ctx, "/wallet/balance", nil, &out); err != nil {
		c.record("fetch_balance", err)
		return 0, fmt.Errorf("fetch balance: %w", err)
	}
	c.record("fetch_balance", nil)
	return out.CurrentBalance, nil
}

type depositReq struct {
	Amount float64 `json:"amount"`
}

// Deposit adds funds to the wallet via the ledger.
func (c *Client) Deposit(ctx context.Context, amount float64) (models.MutationResult, error) {
	var out models.MutationResult
	err := c.post(ctx, "/wallet/deposit", depositReq{Amount: amount}, &out)
	if err != nil {
		err = mapDepositError(err)
		c.record("deposit", err)
		return models.MutationResult{}, fmt.Errorf("deposit: %w", err)
	}
	c.record("deposit", nil)
	return out, nil
}

type transferReq struct {
	Receiver    string  `json:"receiver"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// Transfer sends funds to another wallet via the ledger. Rejections
// (insufficient funds, unknown receiver, flagged) come back as sentinel
// errors; the ledger has already settled its side either way.
func (c *Client) Transfer(ctx context.Context, receiver string, amount float64, description string) (models.MutationResult, error) {
	var out models.MutationResult
	err := c.post(ctx, "/wallet/transfer", transferReq{Receiver: receiver, Amount: amount, Description: description}, &out)
	if err != nil {
		err = mapTransferError(err)
		c.record("transfer", err)
		return models.MutationResult{}, fmt.Errorf("transfer: %w", err)
	}
	c.record("transfer", nil)
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string][]string, dest interface{}) error {
	return c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		Headers:     c.headers(),
		QueryParams: params,
	}, dest)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	return c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.baseURL + path,
		Headers: c.headers(),
		Body:    payload,
	}, dest)
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Content-Type": "application/json"}
	if c.token != "" {
		h["Authorization"] = "Bearer " + c.token
	}
	return h
}

func (c *Client) record(op string, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		c.metrics.RecordError("ledger_" + op)
	}
	c.metrics.RecordLedgerCall(op, outcome)
	if err != nil && c.logger != nil {
		c.logger.Warn("ledger call failed",
			applogger.String("operation", op),
			applogger.Error(err),
		)
	}
}

func mapDepositError(err error) error {
	var se *xhttp.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusBadRequest {
		return ErrInvalidAmount
	}
	return err
}

func mapTransferError(err error) error {
	var se *xhttp.StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.StatusCode {
	case http.StatusBadRequest:
		if bytes.Contains(se.Body, []byte("Insufficient")) {
			return ErrInsufficientFunds
		}
		return ErrInvalidAmount
	case http.StatusNotFound:
		return ErrReceiverNotFound
	case http.StatusForbidden:
		return ErrTransferFlagged
	default:
		return err
	}
}
