package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Vivesh2911/NeoWallet/internal/domain/models"
	domrepo "github.com/Vivesh2911/NeoWallet/internal/domain/repository"
	"github.com/Vivesh2911/NeoWallet/internal/insight"
	"github.com/Vivesh2911/NeoWallet/internal/service/cache"
	"github.com/Vivesh2911/NeoWallet/pkg/logger"
)

// AnalyticsUseCase derives window statistics and daily activity from a
// fetched transaction window. Overviews are cached briefly; wallet mutations
// invalidate through the refresh job.
type AnalyticsUseCase struct {
	ledger   domrepo.Ledger
	metrics  domrepo.Metrics
	cache    cache.BytesCache
	logger   *logger.Logger
	cacheTTL time.Duration
	timeout  time.Duration
	now      func() time.Time

	// keys written to the cache, for invalidation after mutations
	written sync.Map
}

func NewAnalyticsUseCase(ledger domrepo.Ledger, metrics domrepo.Metrics, c cache.BytesCache, lgr *logger.Logger, cacheTTL time.Duration) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		ledger:   ledger,
		metrics:  metrics,
		cache:    c,
		logger:   lgr,
		cacheTTL: cacheTTL,
		timeout:  10 * time.Second,
		now:      time.Now,
	}
}

type GetOverviewParams struct {
	Limit int
	Days  int
}

// GetOverview computes window stats, the trailing daily-activity buckets and
// the most active day. Summary totals and the window are fetched
// concurrently.
func (uc *AnalyticsUseCase) GetOverview(ctx context.Context, p GetOverviewParams) (*models.AnalyticsOverview, error) {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Days <= 0 {
		p.Days = 7
	}

	key := fmt.Sprintf("analytics:overview:%d:%d", p.Limit, p.Days)
	if uc.cache != nil {
		if b, ok, err := uc.cache.GetBytes(key); err == nil && ok {
			var cached models.AnalyticsOverview
			if err := json.Unmarshal(b, &cached); err == nil {
				return &cached, nil
			}
		} else if err != nil {
			uc.logger.Warn("analytics cache read failed", logger.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var (
		wg      sync.WaitGroup
		summary models.Summary
		raw     []models.RawTransaction

		sumErr, txErr error
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
		raw, txErr = uc.ledger.FetchTransactions(ctx, models.TransactionFilter{Limit: p.Limit})
	}()
	wg.Wait()
	uc.metrics.RecordLatency("analytics_fanout", time.Since(start).Seconds())

	// Either fetch failing fails the whole overview; stats computed over a
	// partial view would silently disagree with the totals beside them.
	if sumErr != nil {
		return nil, fmt.Errorf("fetch summary: %w", sumErr)
	}
	if txErr != nil {
		return nil, fmt.Errorf("fetch transactions: %w", txErr)
	}

	window := insight.Normalize(raw)
	activity := insight.DailyActivity(window, uc.now(), p.Days)

	overview := &models.AnalyticsOverview{
		Stats:       insight.Summarize(window),
		Activity:    activity,
		Totals:      &summary,
		GeneratedAt: uc.now(),
	}
	if top, ok := insight.MostActiveDay(activity); ok {
		overview.MostActive = &top
	}

	if uc.cache != nil {
		if b, err := json.Marshal(overview); err == nil {
			if err := uc.cache.SetBytes(key, b, uc.cacheTTL); err != nil {
				uc.logger.Warn("analytics cache write failed", logger.Error(err))
			} else {
				uc.written.Store(key, struct{}{})
			}
		}
	}

	return overview, nil
}

// GetActivity returns only the daily buckets for a trailing window.
func (uc *AnalyticsUseCase) GetActivity(ctx context.Context, p GetOverviewParams) ([]models.DailyBucket, error) {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Days <= 0 {
		p.Days = 7
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.ledger.FetchTransactions(ctx, models.TransactionFilter{Limit: p.Limit})
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	return insight.DailyActivity(insight.Normalize(raw), uc.now(), p.Days), nil
}

// InvalidateOverviews drops every cached overview this process has written.
// Called by the refresh job after a wallet mutation.
func (uc *AnalyticsUseCase) InvalidateOverviews() {
	if uc.cache == nil {
		return
	}
	uc.written.Range(func(k, _ any) bool {
		key := k.(string)
		if err := uc.cache.Delete(key); err != nil {
			uc.logger.Warn("analytics cache invalidation failed",
				logger.String("key", key), logger.Error(err))
		}
		uc.written.Delete(key)
		return true
	})
}
