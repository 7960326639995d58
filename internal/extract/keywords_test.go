package extract

import (
	"context"
	"reflect"
	"testing"

	"github.com/jkratochvil/stavex/internal/nlp"
)

func TestEntityKeywordExtractor_NounPhraseAndSingles(t *testing.T) {
	e := NewEntityKeywordExtractor(nlp.NewRuleEngine())

	got, err := e.Keywords(context.Background(), "ocelová konstrukce")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"konstrukce", "ocelová", "ocelová konstrukce"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestEntityKeywordExtractor_StopwordsExcluded(t *testing.T) {
	e := NewEntityKeywordExtractor(nlp.NewRuleEngine())

	got, err := e.Keywords(context.Background(), "konstrukce bude na staveništi")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, kw := range got {
		if kw == "bude" || kw == "na" {
			t.Errorf("Stop-word %q leaked into keywords: %v", kw, got)
		}
	}
}

func TestEntityKeywordExtractor_ShortTokensExcluded(t *testing.T) {
	e := NewEntityKeywordExtractor(nlp.NewRuleEngine())

	got, err := e.Keywords(context.Background(), "nosná zeď")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// "zeď" has three runes, below the single-token cutoff; the phrase
	// "nosná zeď" passes the phrase cutoff.
	for _, kw := range got {
		if kw == "zeď" {
			t.Errorf("Short token leaked into keywords: %v", got)
		}
	}
}

func TestEntityKeywordExtractor_Deduplicated(t *testing.T) {
	e := NewEntityKeywordExtractor(nlp.NewRuleEngine())

	got, err := e.Keywords(context.Background(), "konstrukce a konstrukce a konstrukce")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	count := 0
	for _, kw := range got {
		if kw == "konstrukce" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected konstrukce exactly once, got %v", got)
	}
}

func TestEntityKeywordExtractor_OrganizationWithLegalForm(t *testing.T) {
	e := NewEntityKeywordExtractor(nlp.NewRuleEngine())

	got, err := e.Entities(context.Background(), "Dodavatel: Metrostav a.s., Praha")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var org, loc bool
	for _, ent := range got {
		if ent.Text == "Metrostav" && ent.Label == "ORG" {
			org = true
		}
		if ent.Text == "Praha" && ent.Label == "LOC" {
			loc = true
		}
		if ent.Confidence != 0.7 {
			t.Errorf("Expected entity confidence 0.7, got %g for %q", ent.Confidence, ent.Text)
		}
	}
	if !org {
		t.Errorf("Expected Metrostav as ORG, got %+v", got)
	}
	if !loc {
		t.Errorf("Expected Praha as LOC, got %+v", got)
	}
}

func TestEntityKeywordExtractor_PersonName(t *testing.T) {
	e := NewEntityKeywordExtractor(nlp.NewRuleEngine())

	got, err := e.Entities(context.Background(), "Stavbyvedoucím je pan Jan Novák a práce pokračují.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var per bool
	for _, ent := range got {
		if ent.Text == "Jan Novák" && ent.Label == "PER" {
			per = true
		}
	}
	if !per {
		t.Errorf("Expected Jan Novák as PER, got %+v", got)
	}
}

func TestEntityKeywordExtractor_SentenceInitialWordNotEntity(t *testing.T) {
	e := NewEntityKeywordExtractor(nlp.NewRuleEngine())

	got, err := e.Entities(context.Background(), "Stavba pokračuje podle plánu.")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no entities, got %+v", got)
	}
}
