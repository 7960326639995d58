package nlp

import (
	"testing"

	"github.com/jkratochvil/stavex/internal/model"
)

func TestNewEngine_DefaultsToRules(t *testing.T) {
	engine, err := NewEngine(model.NLPConfig{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if engine.Name() != "rules" {
		t.Errorf("Expected rules engine, got %s", engine.Name())
	}
}

func TestNewEngine_ExplicitRules(t *testing.T) {
	engine, err := NewEngine(model.NLPConfig{Provider: "rules"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := engine.(*RuleEngine); !ok {
		t.Errorf("Expected *RuleEngine, got %T", engine)
	}
}

func TestNewEngine_OpenAIRequiresAPIKey(t *testing.T) {
	if _, err := NewEngine(model.NLPConfig{Provider: "openai"}); err == nil {
		t.Error("Expected an error without an API key")
	}
}

func TestNewEngine_OpenAIWithKey(t *testing.T) {
	engine, err := NewEngine(model.NLPConfig{Provider: "openai", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if engine.Name() != "openai" {
		t.Errorf("Expected openai engine, got %s", engine.Name())
	}
}

func TestNewEngine_UnknownProvider(t *testing.T) {
	if _, err := NewEngine(model.NLPConfig{Provider: "spacy"}); err == nil {
		t.Error("Expected an error for an unknown provider")
	}
}
