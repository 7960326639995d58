package nlp

import "sync"

// lexicon holds the static language data the rule engine needs. It is built
// once per process and shared read-only afterwards.
type lexicon struct {
	stopwords map[string]struct{}
	cities    map[string]struct{}
	adjSuffix []string
	lemSuffix []string
}

var (
	lexOnce   sync.Once
	sharedLex *lexicon
)

// loadLexicon builds the shared lexicon exactly once
func loadLexicon() *lexicon {
	lexOnce.Do(func() {
		sharedLex = &lexicon{
			stopwords: toSet(czechStopwords),
			cities:    toSet(czechCities),
			// Frequent Czech adjective endings, longest first
			adjSuffix: []string{
				"ového", "ovou", "ická", "ické", "ický", "ová", "ové", "ový",
				"ská", "ské", "ský", "cká", "cké", "cký", "ální", "ální",
				"ní", "ný", "ná", "né",
			},
			// Case/number endings stripped by the light lemmatizer,
			// longest first; only applied to words long enough to keep a
			// recognizable stem
			lemSuffix: []string{
				"ového", "ovými", "ami", "ách", "ech", "ích", "ové", "ům",
				"emi", "ou",
			},
		}
	})
	return sharedLex
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// czechStopwords covers the high-frequency function words of Czech plus a
// few English ones that show up in mixed construction documents
var czechStopwords = []string{
	"a", "aby", "ale", "ani", "ano", "bude", "budou", "by", "byl", "byla",
	"bylo", "být", "co", "což", "či", "dle", "do", "i", "jak", "jako", "je",
	"jeho", "její", "jejich", "jen", "ještě", "již", "jsem", "jsi", "jsme",
	"jsou", "k", "kde", "kdy", "která", "které", "který", "ke", "má", "mezi",
	"mít", "na", "nad", "ne", "nebo", "není", "o", "od", "po", "pod", "pro",
	"před", "přes", "při", "s", "se", "si", "své", "ta", "tak", "také",
	"tato", "ten", "tento", "to", "tohoto", "tom", "toto", "tuto", "ty", "u",
	"už", "v", "ve", "však", "z", "za", "ze", "že",
	"the", "and", "of", "in", "to", "is", "for", "on", "with",
}

// czechCities backs the LOC heuristic of the rule-based NER
var czechCities = []string{
	"praha", "brno", "ostrava", "plzeň", "liberec", "olomouc",
	"české budějovice", "hradec králové", "ústí nad labem", "pardubice",
	"zlín", "kladno",
}
