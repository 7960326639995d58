package extract

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jkratochvil/stavex/internal/model"
)

// MeasurementExtractor recovers dimensional, load, environmental and
// electrical values from document text
type MeasurementExtractor struct {
	logger *zap.Logger
}

// NewMeasurementExtractor creates a measurement extractor. A nil logger
// disables logging.
func NewMeasurementExtractor(logger *zap.Logger) *MeasurementExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeasurementExtractor{logger: logger}
}

// Extract runs every measurement pattern against the text in declared
// order. Dimensional matches expand into one measurement per axis; a value
// that fails numeric parsing skips only that match. Results are not
// deduplicated across pattern families.
func (e *MeasurementExtractor) Extract(text string) []model.Measurement {
	measurements := []model.Measurement{}

	for _, pat := range measurementPatterns {
		for _, m := range pat.re.FindAllStringSubmatchIndex(text, -1) {
			ctx := contextWindow(text, m[0], m[1], measurementContextRadius)

			switch pat.kind {
			case kindDimensions3D:
				values, unit, ok := e.dimensionValues(text, m, 3)
				if !ok {
					continue
				}
				for i, kind := range []model.MeasurementKind{model.MeasurementLength, model.MeasurementWidth, model.MeasurementHeight} {
					measurements = append(measurements, model.Measurement{
						Value: values[i], Unit: unit, Kind: kind, Context: ctx, Confidence: 0.9,
					})
				}

			case kindDimensions2D:
				values, unit, ok := e.dimensionValues(text, m, 2)
				if !ok {
					continue
				}
				for i, kind := range []model.MeasurementKind{model.MeasurementLength, model.MeasurementWidth} {
					measurements = append(measurements, model.Measurement{
						Value: values[i], Unit: unit, Kind: kind, Context: ctx, Confidence: 0.8,
					})
				}

			default:
				value, err := parseDecimal(group(text, m, 1))
				if err != nil {
					e.logger.Warn("skipping unparsable measurement",
						zap.String("raw", group(text, m, 1)), zap.Error(err))
					continue
				}
				measurements = append(measurements, model.Measurement{
					Value:      value,
					Unit:       group(text, m, 2),
					Kind:       pat.kind,
					Context:    ctx,
					Confidence: 0.7,
				})
			}
		}
	}
	return measurements
}

// dimensionValues parses the n axis values of a dimensional match and
// returns them with the shared unit
func (e *MeasurementExtractor) dimensionValues(text string, m []int, n int) ([]float64, string, bool) {
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := parseDecimal(group(text, m, i+1))
		if err != nil {
			e.logger.Warn("skipping unparsable dimension",
				zap.String("raw", group(text, m, i+1)), zap.Error(err))
			return nil, "", false
		}
		values[i] = v
	}
	return values, group(text, m, n+1), true
}

// group returns submatch i of a FindAllStringSubmatchIndex match, or ""
// when the pattern has no such group or it did not participate
func group(text string, m []int, i int) string {
	if 2*i+1 >= len(m) {
		return ""
	}
	lo, hi := m[2*i], m[2*i+1]
	if lo < 0 || hi < 0 {
		return ""
	}
	return text[lo:hi]
}

// parseDecimal parses a number that may use a decimal comma
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
