package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/logger"

	"github.com/pkg/errors"
	"max.ks1230/finance-tracker/internal/entity/currency"
)

type ratesStorage interface {
	SaveRate(ctx context.Context, name string, val float64) error
}

type ratesProvider interface {
	GetRates(ctx context.Context, base string, relatives []string) (map[string]float64, error)
}

type config interface {
	BaseCurrency() string
	PullingDelayMinutes() int64
}

// Puller refreshes the shared rate source on a fixed delay and
// persists every pulled rate so other processes can read it. A failed
// pull leaves the last-known (or fallback) table in place.
type Puller struct {
	source       *Source
	storage      ratesStorage
	provider     ratesProvider
	baseCurrency string
	pullingDelay int64
}

func NewPuller(source *Source, storage ratesStorage, provider ratesProvider, config config) (*Puller, error) {
	if !currency.Known(config.BaseCurrency()) {
		return nil, errors.Errorf("unknown base currency %s", config.BaseCurrency())
	}
	return &Puller{
		source:       source,
		storage:      storage,
		provider:     provider,
		baseCurrency: config.BaseCurrency(),
		pullingDelay: config.PullingDelayMinutes(),
	}, nil
}

func (p *Puller) Pull(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(p.pullingDelay) * time.Minute)
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start pulling rates")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling rates")
			return
		// fake first tick to pull rates immediately
		case <-firstTick:
			p.PullOnce(ctx)
		case <-ticker.C:
			p.PullOnce(ctx)
		}
	}
}

func (p *Puller) PullOnce(ctx context.Context) {
	logger.Info("Pulling current rates...")

	span, ctx := opentracing.StartSpanFromContext(ctx, "pullRates")
	defer span.Finish()

	pulled, err := p.provider.GetRates(ctx, p.baseCurrency, p.nonBaseCurrencies())
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot get rates, keeping last-known table", zap.Error(err))
		return
	}

	p.source.Update(pulled)
	for name, rate := range pulled {
		p.persistRate(ctx, name, rate)
	}

	logger.Info("Successfully pulled current rates")
}

func (p *Puller) persistRate(ctx context.Context, name string, rate float64) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "persistRate")
	defer span.Finish()
	span.SetTag("rate", name)

	err := p.storage.SaveRate(ctx, name, rate)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to save rate", zap.Error(err), zap.String("rate", name))
	}
}

func (p *Puller) nonBaseCurrencies() []string {
	var relatives []string
	for _, curr := range currency.Currencies {
		if curr != p.baseCurrency {
			relatives = append(relatives, curr)
		}
	}
	return relatives
}
