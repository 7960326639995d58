// Package pipeline orchestrates one extraction run: input normalization,
// classification, all fact extractors, summary generation and result
// caching.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/jkratochvil/stavex/internal/cache"
	"github.com/jkratochvil/stavex/internal/extract"
	"github.com/jkratochvil/stavex/internal/model"
	"github.com/jkratochvil/stavex/internal/nlp"
)

// Pipeline runs the full extraction over one document text. Extraction is
// deterministic: identical text always produces an identical result.
//
// The NLP engine is the one expensive dependency; it is constructed lazily
// on the first extraction and shared read-only by all later (possibly
// concurrent) calls.
type Pipeline struct {
	cfg    *model.Config
	logger *zap.Logger
	cache  cache.Cache

	classifier   *extract.Classifier
	measurements *extract.MeasurementExtractor
	dates        *extract.DateExtractor
	prices       *extract.PriceExtractor
	specs        *extract.TechSpecExtractor

	engineOnce sync.Once
	engineErr  error
	engine     nlp.Engine
	milestones *extract.MilestoneExtractor
	keywords   *extract.EntityKeywordExtractor
}

// New creates a pipeline. A nil logger disables logging; the result cache
// is attached according to the configuration.
func New(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
		}
	}

	return &Pipeline{
		cfg:          cfg,
		logger:       logger,
		cache:        c,
		classifier:   extract.NewClassifier(),
		measurements: extract.NewMeasurementExtractor(logger),
		dates:        extract.NewDateExtractor(logger),
		prices:       extract.NewPriceExtractor(logger),
		specs:        extract.NewTechSpecExtractor(),
	}
}

// init constructs the NLP engine and the extractors that depend on it,
// exactly once. A failed initialization is remembered and returned to
// every caller; the pipeline never proceeds with a partial capability.
func (p *Pipeline) init() error {
	p.engineOnce.Do(func() {
		engine, err := nlp.NewEngine(p.cfg.NLP)
		if err != nil {
			p.engineErr = fmt.Errorf("initialize NLP engine: %w", err)
			return
		}
		p.engine = engine
		p.milestones = extract.NewMilestoneExtractor(engine, p.dates, p.logger)
		p.keywords = extract.NewEntityKeywordExtractor(engine)
		p.logger.Info("NLP engine ready", zap.String("provider", engine.Name()))
	})
	return p.engineErr
}

// Extract runs classification and every extractor against the text and
// assembles the aggregate result. The caller receives either a complete
// result or an error, never something partial. Empty or whitespace-only
// input is not an error: it yields an unknown classification, empty fact
// lists and a minimal summary.
func (p *Pipeline) Extract(ctx context.Context, text string) (*model.ExtractionResult, error) {
	if err := p.init(); err != nil {
		return nil, err
	}

	if p.cache != nil {
		if cached, found := p.cache.Get(cache.TextKey(text)); found {
			var result model.ExtractionResult
			if err := json.Unmarshal(cached, &result); err == nil {
				p.logger.Debug("extraction cache hit")
				return &result, nil
			}
		}
	}

	result := model.NewExtractionResult()
	result.DocumentType = p.classifier.Classify(text)
	result.Measurements = p.measurements.Extract(text)
	result.Dates = p.dates.Extract(text)
	result.Prices = p.prices.Extract(text)
	result.TechnicalSpecs = p.specs.Extract(text)

	milestones, err := p.milestones.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract milestones: %w", err)
	}
	result.Milestones = milestones

	entities, err := p.keywords.Entities(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}
	result.Entities = entities

	keywords, err := p.keywords.Keywords(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract keywords: %w", err)
	}
	result.Keywords = keywords

	result.Summary = extract.GenerateSummary(result.DocumentType, result.Measurements,
		result.Dates, result.Milestones, result.Prices)

	p.logger.Info("extraction complete",
		zap.String("document_type", result.DocumentType.String()),
		zap.Int("measurements", len(result.Measurements)),
		zap.Int("dates", len(result.Dates)),
		zap.Int("milestones", len(result.Milestones)))

	if p.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := p.cache.Set(cache.TextKey(text), data, 0); err != nil {
				p.logger.Warn("cache write failed", zap.Error(err))
			}
		}
	}
	return result, nil
}
