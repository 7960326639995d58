package nlp

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuleEngine is the built-in deterministic binding of the Engine contract.
// It approximates sentence splitting, tagging, lemmatization and entity
// recognition with hand-written rules tuned for Czech construction
// documents. Given the same text it always produces the same output.
type RuleEngine struct {
	lex *lexicon
}

// NewRuleEngine constructs the rule engine. The shared lexicon is built on
// first construction and reused afterwards.
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{lex: loadLexicon()}
}

// Name returns the binding name
func (e *RuleEngine) Name() string { return "rules" }

// Sentences splits text into sentence spans. A sentence ends at '.', '!' or
// '?' followed by whitespace, or at a line break. A period after a short
// all-digit token (list markers, "15. 03. 2024" day/month parts) does not
// end a sentence.
func (e *RuleEngine) Sentences(_ context.Context, text string) ([]Sentence, error) {
	var sentences []Sentence
	segStart := 0

	flush := func(end int) {
		s := trimSpan(text, segStart, end)
		if s.Text != "" {
			sentences = append(sentences, s)
		}
		segStart = end
	}

	for i, r := range text {
		switch r {
		case '\n':
			flush(i)
		case '.', '!', '?':
			next := i + utf8.RuneLen(r)
			atEnd := next >= len(text)
			if !atEnd && !isSpaceByte(text[next]) {
				continue
			}
			if r == '.' && isShortNumberBefore(text, segStart, i) {
				continue
			}
			flush(next)
		}
	}
	flush(len(text))
	return sentences, nil
}

// trimSpan trims whitespace from both ends of text[start:end], keeping
// offsets aligned with the source text
func trimSpan(text string, start, end int) Sentence {
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return Sentence{Text: text[start:end], Start: start, End: end}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isShortNumberBefore reports whether the token immediately before position
// dot is an all-digit token of at most two digits
func isShortNumberBefore(text string, segStart, dot int) bool {
	i := dot
	digits := 0
	for i > segStart {
		r, size := utf8.DecodeLastRuneInString(text[segStart:i])
		if !unicode.IsDigit(r) {
			break
		}
		digits++
		i -= size
	}
	if digits == 0 || digits > 2 {
		return false
	}
	if i == segStart {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[segStart:i])
	return unicode.IsSpace(r)
}

// Tokens tokenizes the text and annotates each token with a coarse
// part-of-speech tag, a lemma, and stop-word/punctuation flags
func (e *RuleEngine) Tokens(ctx context.Context, text string) ([]Token, error) {
	starts, err := e.sentenceStarts(ctx, text)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			end := i + size
			for end < len(text) {
				nr, nsize := utf8.DecodeRuneInString(text[end:])
				if !unicode.IsLetter(nr) && !unicode.IsDigit(nr) {
					break
				}
				end += nsize
			}
			word := text[i:end]
			tokens = append(tokens, e.annotate(word, i, end, starts[i]))
			i = end
		default:
			// Single punctuation/symbol rune per token
			tokens = append(tokens, Token{
				Text:    text[i : i+size],
				Lemma:   text[i : i+size],
				POS:     "PUNCT",
				Start:   i,
				End:     i + size,
				IsPunct: true,
			})
			i += size
		}
	}
	return tokens, nil
}

// annotate assigns POS, lemma and flags to one word token
func (e *RuleEngine) annotate(word string, start, end int, sentInitial bool) Token {
	lower := strings.ToLower(word)
	tok := Token{
		Text:  word,
		Lemma: e.lemma(lower),
		Start: start,
		End:   end,
	}

	switch {
	case isNumeric(word):
		tok.POS = "NUM"
	case e.isStopword(lower):
		tok.POS = "X"
		tok.IsStop = true
	case e.looksAdjective(lower):
		tok.POS = "ADJ"
	case isCapitalized(word) && !sentInitial:
		tok.POS = "PROPN"
	case utf8.RuneCountInString(word) > 2:
		tok.POS = "NOUN"
	default:
		tok.POS = "X"
	}
	return tok
}

// sentenceStarts returns the byte offsets at which sentences begin
func (e *RuleEngine) sentenceStarts(ctx context.Context, text string) (map[int]bool, error) {
	sentences, err := e.Sentences(ctx, text)
	if err != nil {
		return nil, err
	}
	starts := make(map[int]bool, len(sentences))
	for _, s := range sentences {
		starts[s.Start] = true
	}
	return starts, nil
}

func (e *RuleEngine) isStopword(lower string) bool {
	_, ok := e.lex.stopwords[lower]
	return ok
}

// looksAdjective tests frequent Czech adjective endings
func (e *RuleEngine) looksAdjective(lower string) bool {
	if utf8.RuneCountInString(lower) < 5 {
		return false
	}
	for _, suf := range e.lex.adjSuffix {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}

// lemma strips one frequent case/number ending when the word is long enough
// to keep a recognizable stem. It is a light stemmer, not a full
// lemmatizer; callers treat the result as a normalized key.
func (e *RuleEngine) lemma(lower string) string {
	if utf8.RuneCountInString(lower) < 7 {
		return lower
	}
	for _, suf := range e.lex.lemSuffix {
		if strings.HasSuffix(lower, suf) {
			stem := strings.TrimSuffix(lower, suf)
			if utf8.RuneCountInString(stem) >= 4 {
				return stem
			}
		}
	}
	return lower
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return word != ""
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func isAllUpper(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// Entities recognizes named entities from capitalization patterns: runs of
// capitalized words become organizations or person names, known city names
// become locations, and standalone capitalized words inside a sentence
// become miscellaneous entities.
func (e *RuleEngine) Entities(ctx context.Context, text string) ([]NamedEntity, error) {
	tokens, err := e.Tokens(ctx, text)
	if err != nil {
		return nil, err
	}
	starts, err := e.sentenceStarts(ctx, text)
	if err != nil {
		return nil, err
	}

	var entities []NamedEntity
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.IsPunct || tok.POS == "NUM" || !isCapitalized(tok.Text) {
			i++
			continue
		}

		// Grow a run of adjacent capitalized words separated by single
		// spaces only
		j := i
		for j+1 < len(tokens) {
			next := tokens[j+1]
			if next.IsPunct || next.POS == "NUM" || !isCapitalized(next.Text) {
				break
			}
			if next.Start != tokens[j].End+1 || text[tokens[j].End] != ' ' {
				break
			}
			j++
		}

		run := tokens[i : j+1]
		ent, ok := e.classifyRun(text, run, starts)
		if ok {
			entities = append(entities, ent)
		}
		i = j + 1
	}
	return entities, nil
}

// classifyRun labels a run of capitalized tokens, or rejects it
func (e *RuleEngine) classifyRun(text string, run []Token, sentStarts map[int]bool) (NamedEntity, bool) {
	start := run[0].Start
	end := run[len(run)-1].End
	surface := text[start:end]
	lower := strings.ToLower(surface)

	if _, ok := e.lex.cities[lower]; ok {
		return NamedEntity{Text: surface, Label: "LOC", Start: start, End: end}, true
	}

	if followedByLegalForm(text, end) {
		return NamedEntity{Text: surface, Label: "ORG", Start: start, End: end}, true
	}

	if len(run) >= 2 {
		label := "PER"
		if len(run) > 2 || isAllUpper(run[0].Text) || isAllUpper(run[len(run)-1].Text) {
			label = "ORG"
		}
		return NamedEntity{Text: surface, Label: label, Start: start, End: end}, true
	}

	tok := run[0]
	if sentStarts[tok.Start] {
		return NamedEntity{}, false
	}
	n := utf8.RuneCountInString(tok.Text)
	if isAllUpper(tok.Text) && n >= 2 && n <= 6 {
		return NamedEntity{Text: surface, Label: "ORG", Start: start, End: end}, true
	}
	if n > 2 {
		return NamedEntity{Text: surface, Label: "MISC", Start: start, End: end}, true
	}
	return NamedEntity{}, false
}

// followedByLegalForm detects a company legal form right after the span
func followedByLegalForm(text string, end int) bool {
	tail := text[end:min(end+12, len(text))]
	tail = strings.TrimLeft(tail, " ,")
	return strings.HasPrefix(tail, "s.r.o") || strings.HasPrefix(tail, "a.s.") ||
		strings.HasPrefix(tail, "spol.")
}
