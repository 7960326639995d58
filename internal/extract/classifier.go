package extract

import (
	"strings"

	"github.com/jkratochvil/stavex/internal/model"
)

// Classifier assigns a document type from keyword evidence in the text
type Classifier struct{}

// NewClassifier creates a new document classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scores the text against each document type's keyword set (one
// point per keyword present, case-insensitive) and returns the type with
// the strictly highest score. Ties keep the earlier entry of the declared
// type order. A text matching no keyword at all is unknown. There is no
// error path; Classify always returns a type.
func (c *Classifier) Classify(text string) model.DocumentType {
	lower := strings.ToLower(text)

	best := model.DocumentTypeUnknown
	bestScore := 0
	for _, entry := range classifierKeywords {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.docType
			bestScore = score
		}
	}
	return best
}
