package extract

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jkratochvil/stavex/internal/model"
	"github.com/jkratochvil/stavex/internal/nlp"
)

// entityConfidence marks "recognized by the external tagger"; NER
// confidence is not independently computed
const entityConfidence = 0.7

// EntityKeywordExtractor adapts the NLP engine's entities and token
// annotations into the pipeline's entity and keyword outputs
type EntityKeywordExtractor struct {
	engine nlp.Engine
}

// NewEntityKeywordExtractor creates the extractor on top of an NLP engine
func NewEntityKeywordExtractor(engine nlp.Engine) *EntityKeywordExtractor {
	return &EntityKeywordExtractor{engine: engine}
}

// Entities returns the engine's named entities verbatim with a bounded
// context window and the fixed tagger confidence
func (e *EntityKeywordExtractor) Entities(ctx context.Context, text string) ([]model.Entity, error) {
	recognized, err := e.engine.Entities(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("entity recognition: %w", err)
	}

	entities := []model.Entity{}
	for _, ent := range recognized {
		entities = append(entities, model.Entity{
			Text:       ent.Text,
			Label:      ent.Label,
			Context:    contextWindow(text, ent.Start, ent.End, entityContextRadius),
			Confidence: entityConfidence,
		})
	}
	return entities, nil
}

// Keywords returns the sorted, duplicate-free keyword set: multi-word noun
// phrases longer than 3 characters, lowercased, plus single nouns and
// adjectives longer than 4 characters that are neither stop-words nor
// punctuation, lemmatized and lowercased
func (e *EntityKeywordExtractor) Keywords(ctx context.Context, text string) ([]string, error) {
	tokens, err := e.engine.Tokens(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	seen := make(map[string]struct{})

	for _, phrase := range nounPhrases(text, tokens) {
		if utf8.RuneCountInString(phrase) > 3 {
			seen[strings.ToLower(phrase)] = struct{}{}
		}
	}

	for _, tok := range tokens {
		if tok.IsStop || tok.IsPunct {
			continue
		}
		if tok.POS != "NOUN" && tok.POS != "ADJ" {
			continue
		}
		if utf8.RuneCountInString(tok.Text) > 4 {
			seen[strings.ToLower(tok.Lemma)] = struct{}{}
		}
	}

	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords, nil
}

// nounPhrases approximates noun chunks: maximal runs of two or more
// adjacent content tokens (adjectives, nouns, proper nouns) separated by
// single spaces
func nounPhrases(text string, tokens []nlp.Token) []string {
	var phrases []string

	isContent := func(t nlp.Token) bool {
		if t.IsStop || t.IsPunct {
			return false
		}
		return t.POS == "NOUN" || t.POS == "ADJ" || t.POS == "PROPN"
	}

	i := 0
	for i < len(tokens) {
		if !isContent(tokens[i]) {
			i++
			continue
		}
		j := i
		for j+1 < len(tokens) && isContent(tokens[j+1]) &&
			tokens[j+1].Start == tokens[j].End+1 && text[tokens[j].End] == ' ' {
			j++
		}
		if j > i {
			phrases = append(phrases, text[tokens[i].Start:tokens[j].End])
		}
		i = j + 1
	}
	return phrases
}
