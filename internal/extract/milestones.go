package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jkratochvil/stavex/internal/model"
	"github.com/jkratochvil/stavex/internal/nlp"
)

// MilestoneExtractor flags sentences describing project events and
// enriches them with a date, priority and status
type MilestoneExtractor struct {
	engine nlp.Engine
	dates  *DateExtractor
	logger *zap.Logger
}

// NewMilestoneExtractor creates a milestone extractor. It reuses the date
// extractor per sentence to attach a milestone date.
func NewMilestoneExtractor(engine nlp.Engine, dates *DateExtractor, logger *zap.Logger) *MilestoneExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MilestoneExtractor{engine: engine, dates: dates, logger: logger}
}

// Extract splits the text into sentences and emits one milestone per
// sentence that contains a milestone keyword. Sentence splitting failure is
// an NLP capability failure and propagates.
func (e *MilestoneExtractor) Extract(ctx context.Context, text string) ([]model.Milestone, error) {
	sentences, err := e.engine.Sentences(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("sentence split: %w", err)
	}

	milestones := []model.Milestone{}
	for _, sent := range sentences {
		lower := strings.ToLower(sent.Text)
		if _, ok := matchCategory(lower); !ok {
			continue
		}

		// First date in the sentence, if any
		var date *time.Time
		if dates := e.dates.Extract(sent.Text); len(dates) > 0 {
			d := dates[0].Date
			date = &d
		}

		milestones = append(milestones, model.Milestone{
			Description: sent.Text,
			Date:        date,
			Priority:    milestonePriority(lower),
			Status:      milestoneStatus(lower),
			Confidence:  milestoneConfidence(sent.Text, date),
		})
	}
	return milestones, nil
}

// matchCategory returns the first milestone category whose keyword set
// matches; a sentence matching several categories belongs to the first
func matchCategory(lower string) (string, bool) {
	for _, cat := range milestoneCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.name, true
			}
		}
	}
	return "", false
}

func milestonePriority(lower string) model.MilestonePriority {
	for _, kw := range priorityHighKeywords {
		if strings.Contains(lower, kw) {
			return model.PriorityHigh
		}
	}
	for _, kw := range priorityLowKeywords {
		if strings.Contains(lower, kw) {
			return model.PriorityLow
		}
	}
	return model.PriorityMedium
}

func milestoneStatus(lower string) model.MilestoneStatus {
	switch {
	case containsAnyWord(lower, statusCompletedKeywords):
		return model.StatusCompleted
	case containsAnyWord(lower, statusInProgressKeywords):
		return model.StatusInProgress
	case containsAnyWord(lower, statusPlannedKeywords):
		return model.StatusPlanned
	default:
		return model.StatusUnknown
	}
}

func containsAnyWord(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// milestoneConfidence starts at 0.6 and rewards an attached date,
// structural punctuation and numbered-list markers, capped at 1.0
func milestoneConfidence(sentence string, date *time.Time) float64 {
	confidence := 0.6
	if date != nil {
		confidence += 0.2
	}
	if strings.ContainsAny(sentence, ":-•") {
		confidence += 0.1
	}
	if numberedItemRe.MatchString(strings.TrimSpace(sentence)) {
		confidence += 0.1
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
