package extract

import (
	"testing"

	"github.com/jkratochvil/stavex/internal/model"
)

func TestClassifier_BudgetDocument(t *testing.T) {
	c := NewClassifier()

	text := `Rozpočet stavby
Cena za materiál: 250 000 Kč
Kalkulace nákladů na dokončení.`

	got := c.Classify(text)
	if got != model.DocumentTypeBudget {
		t.Errorf("Expected budget, got %s", got)
	}
}

func TestClassifier_TechnicalDrawing(t *testing.T) {
	c := NewClassifier()

	text := "Technický výkres, řez A-A, rozměr v detailu."

	got := c.Classify(text)
	if got != model.DocumentTypeTechnicalDrawing {
		t.Errorf("Expected technical_drawing, got %s", got)
	}
}

func TestClassifier_NoKeywordsIsUnknown(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("Dobrý den, posíláme pozdrav z hor.")
	if got != model.DocumentTypeUnknown {
		t.Errorf("Expected unknown, got %s", got)
	}
}

func TestClassifier_EmptyTextIsUnknown(t *testing.T) {
	c := NewClassifier()

	if got := c.Classify(""); got != model.DocumentTypeUnknown {
		t.Errorf("Expected unknown for empty text, got %s", got)
	}
}

func TestClassifier_TieKeepsEarlierType(t *testing.T) {
	c := NewClassifier()

	// One technical_drawing keyword and one budget keyword: a tie must
	// resolve to the type declared first.
	got := c.Classify("výkres a cena")
	if got != model.DocumentTypeTechnicalDrawing {
		t.Errorf("Expected technical_drawing on tie, got %s", got)
	}
}

func TestClassifier_RepeatedKeywordCountsOnce(t *testing.T) {
	c := NewClassifier()

	// "rozpočet" five times is still one budget point; two distinct
	// safety keywords must win.
	text := "rozpočet rozpočet rozpočet rozpočet rozpočet bezpečnost riziko"
	got := c.Classify(text)
	if got != model.DocumentTypeSafetyDocument {
		t.Errorf("Expected safety_document, got %s", got)
	}
}
