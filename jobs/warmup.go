package jobs

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/software11inc/bluedot/models"
	"github.com/software11inc/bluedot/services"
)

// minWarmCompanies is the smallest market-cap list a warm-up run accepts as
// healthy; shorter lists usually mean the upstream was rate-limiting us.
const minWarmCompanies = 12

// WarmupJob pre-fills the response cache with the two list endpoints so the
// first Research page visit after a restart is served warm. Best effort: a
// failed or suspiciously small result is logged and retried on the next run,
// never surfaced.
type WarmupJob struct {
	research *services.ResearchService
}

func NewWarmupJob(research *services.ResearchService) *WarmupJob {
	return &WarmupJob{research: research}
}

// Run warms both list caches once
func (j *WarmupJob) Run(ctx context.Context) {
	log := logrus.WithField("component", "WarmupJob")

	prices, err := j.research.GetStockPrices(ctx)
	switch {
	case err != nil:
		log.WithError(err).Warn("Stock prices warmup failed")
	case len(prices.Data) < len(models.FintechIPOs):
		log.WithFields(logrus.Fields{
			"got":  len(prices.Data),
			"want": len(models.FintechIPOs),
		}).Warn("Stock prices warmup returned fewer rows than the catalog")
	default:
		log.WithField("rows", len(prices.Data)).Info("Stock prices cache warmed")
	}

	caps, err := j.research.GetMarketCaps(ctx)
	switch {
	case err != nil:
		log.WithError(err).Warn("Market caps warmup failed")
	case len(caps.Data) < minWarmCompanies:
		log.WithFields(logrus.Fields{
			"got":  len(caps.Data),
			"want": minWarmCompanies,
		}).Warn("Market caps warmup returned fewer companies than expected")
	default:
		log.WithField("rows", len(caps.Data)).Info("Market caps cache warmed")
	}
}
