package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jkratochvil/stavex/internal/model"
)

// PriceExtractor recovers monetary amounts from document text
type PriceExtractor struct {
	logger *zap.Logger
}

// NewPriceExtractor creates a price extractor. A nil logger disables
// logging.
func NewPriceExtractor(logger *zap.Logger) *PriceExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceExtractor{logger: logger}
}

// Extract runs the price pattern families in declared order. A value span
// already claimed by an earlier family is skipped, so an amount like
// "cena: 1 500,50 Kč" yields one fact, not one per family. Thousands
// separators (spaces) are stripped and the decimal comma normalized before
// parsing; a parse failure skips only that match.
func (e *PriceExtractor) Extract(text string) []model.PriceFact {
	prices := []model.PriceFact{}
	var claimed [][2]int

	for _, pat := range pricePatterns {
		for _, m := range pat.re.FindAllStringSubmatchIndex(text, -1) {
			valueStart, valueEnd := m[2], m[3]
			if overlapsAny(claimed, valueStart, valueEnd) {
				continue
			}

			raw := group(text, m, 1)
			value, err := parsePriceValue(raw)
			if err != nil {
				e.logger.Warn("skipping unparsable price",
					zap.String("raw", raw), zap.Error(err))
				continue
			}

			currency := group(text, m, 2)
			if currency == "" {
				currency = defaultCurrency
			}

			claimed = append(claimed, [2]int{valueStart, valueEnd})
			prices = append(prices, model.PriceFact{
				Value:      value,
				Currency:   currency,
				Kind:       pat.kind,
				Context:    contextWindow(text, m[0], m[1], priceContextRadius),
				Confidence: 0.8,
			})
		}
	}
	return prices
}

func overlapsAny(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

// parsePriceValue normalizes "1 500,50" style amounts before parsing
func parsePriceValue(raw string) (float64, error) {
	normalized := strings.ReplaceAll(raw, " ", "")
	return parseDecimal(normalized)
}
