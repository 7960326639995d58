package extract

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jkratochvil/stavex/internal/model"
)

// DateExtractor recovers calendar dates from document text, classifies
// their role from the surrounding context and scores confidence with
// recency/future-window heuristics
type DateExtractor struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewDateExtractor creates a date extractor using the wall clock as the
// confidence reference. A nil logger disables logging.
func NewDateExtractor(logger *zap.Logger) *DateExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DateExtractor{logger: logger, now: time.Now}
}

// WithClock overrides the reference clock; tests use this to pin the
// recency heuristics
func (e *DateExtractor) WithClock(now func() time.Time) *DateExtractor {
	e.now = now
	return e
}

// Extract runs every date pattern against the text. A match that does not
// form a valid calendar date is discarded and scanning continues; nothing
// partial is ever emitted.
func (e *DateExtractor) Extract(text string) []model.DateFact {
	facts := []model.DateFact{}

	for _, pat := range datePatterns {
		for _, m := range pat.re.FindAllStringSubmatchIndex(text, -1) {
			var day, month, year int
			if pat.dayFirst {
				day = atoi(group(text, m, 1))
				month = atoi(group(text, m, 2))
				year = atoi(group(text, m, 3))
			} else {
				year = atoi(group(text, m, 1))
				month = atoi(group(text, m, 2))
				day = atoi(group(text, m, 3))
			}

			date, ok := calendarDate(year, month, day)
			if !ok {
				e.logger.Warn("skipping invalid calendar date",
					zap.String("raw", text[m[0]:m[1]]))
				continue
			}

			ctx := contextWindow(text, m[0], m[1], dateContextRadius)
			facts = append(facts, model.DateFact{
				Date:       date,
				Kind:       classifyDateRole(ctx),
				Context:    ctx,
				Confidence: e.dateConfidence(ctx, date),
			})
		}
	}
	return facts
}

// calendarDate builds a UTC midnight date and rejects combinations the
// calendar does not accept (time.Date would silently normalize them)
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// classifyDateRole scans the context for role vocabularies in declared
// priority order
func classifyDateRole(context string) model.DateKind {
	lower := strings.ToLower(context)
	for _, role := range dateRoles {
		for _, kw := range role.keywords {
			if strings.Contains(lower, kw) {
				return role.kind
			}
		}
	}
	return model.DateGeneral
}

// dateConfidence starts at 0.5, rewards deadline/start vocabulary in the
// context, penalizes dates more than a year in the past and rewards dates
// within the next three years. The result is clamped to [0.1, 1.0].
func (e *DateExtractor) dateConfidence(context string, date time.Time) float64 {
	confidence := 0.5

	lower := strings.ToLower(context)
	for _, kw := range dateConfidenceKeywords {
		if strings.Contains(lower, kw) {
			confidence += 0.3
			break
		}
	}

	now := e.now()
	if date.Before(now.AddDate(0, 0, -365)) {
		confidence -= 0.2
	}
	if date.After(now) && date.Before(now.AddDate(0, 0, 1095)) {
		confidence += 0.2
	}

	return clampConfidence(confidence)
}

// clampConfidence bounds a heuristic score to [0.1, 1.0]
func clampConfidence(c float64) float64 {
	if c < 0.1 {
		return 0.1
	}
	if c > 1.0 {
		return 1.0
	}
	return c
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
