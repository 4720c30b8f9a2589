package usecase

import (
	"context"

	"github.com/Vivesh2911/NeoWallet/pkg/logger"
	"github.com/Vivesh2911/NeoWallet/pkg/queue"
)

// AnalyticsRefreshJob invalidates cached analytics overviews after a wallet
// mutation, so the next read recomputes from fresh ledger data.
type AnalyticsRefreshJob struct {
	analytics *AnalyticsUseCase
	logger    *logger.Logger
}

func NewAnalyticsRefreshJob(analytics *AnalyticsUseCase, lgr *logger.Logger) *AnalyticsRefreshJob {
	return &AnalyticsRefreshJob{analytics: analytics, logger: lgr}
}

func (j *AnalyticsRefreshJob) Name() string { return "analytics-refresh" }
func (j *AnalyticsRefreshJob) Type() string { return MsgTypeAnalyticsRefresh }

func (j *AnalyticsRefreshJob) Handle(ctx context.Context, payload interface{}) error {
	p, err := queue.ParsePayload[RefreshPayload](payload)
	if err != nil {
		return err
	}

	j.analytics.InvalidateOverviews()
	j.logger.Info("analytics cache invalidated",
		logger.String("reason", p.Reason),
		logger.Float64("balance", p.Balance))
	return nil
}
