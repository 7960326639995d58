// Package nlp provides the language-analysis capability the extraction
// pipeline depends on: sentence boundary detection, tokenization with
// part-of-speech and lemma information, and named-entity recognition.
//
// Two bindings exist: a deterministic rule-based engine (default, no
// external dependencies at runtime) and a hosted engine that delegates
// entity recognition to an OpenAI-compatible API. The pipeline's output
// shape does not change with the binding.
package nlp

import "context"

// Sentence is one sentence span within the analyzed text
type Sentence struct {
	Text  string // Trimmed sentence text
	Start int    // Byte offset of the first rune in the source text
	End   int    // Byte offset past the last rune
}

// Token is one token with its linguistic annotations
type Token struct {
	Text    string // Surface form
	Lemma   string // Base form, lowercased
	POS     string // Coarse tag: NOUN, ADJ, VERB, PROPN, NUM, PUNCT, X
	Start   int    // Byte offset in the source text
	End     int
	IsStop  bool // Member of the stop-word list
	IsPunct bool // Consists of punctuation/symbol runes only
}

// NamedEntity is a recognized named entity with its span and label
type NamedEntity struct {
	Text  string
	Label string // ORG, PER, LOC, MISC
	Start int    // Byte offset in the source text
	End   int
}

// Engine is the NLP capability contract. Implementations must be safe for
// concurrent use once constructed; expensive setup happens during
// construction, not per call.
type Engine interface {
	// Name identifies the binding ("rules", "openai")
	Name() string

	// Sentences returns sentence spans covering the text in order
	Sentences(ctx context.Context, text string) ([]Sentence, error)

	// Tokens returns annotated tokens covering the text in order
	Tokens(ctx context.Context, text string) ([]Token, error)

	// Entities returns recognized named entities in order of appearance
	Entities(ctx context.Context, text string) ([]NamedEntity, error)
}
