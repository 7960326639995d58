package extract

import (
	"github.com/jkratochvil/stavex/internal/model"
)

// TechSpecExtractor recovers material mentions and standards codes
// (EN/ISO/ČSN/DIN) from document text
type TechSpecExtractor struct{}

// NewTechSpecExtractor creates a technical-spec extractor
func NewTechSpecExtractor() *TechSpecExtractor {
	return &TechSpecExtractor{}
}

// Extract runs the material and standards vocabularies as two independent
// scans. Certifications and technical parameters are present in the output
// shape but stay empty in this version.
func (e *TechSpecExtractor) Extract(text string) model.TechnicalSpecs {
	specs := model.NewTechnicalSpecs()

	for _, re := range materialPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			specs.Materials = append(specs.Materials, model.MaterialRef{
				Material: group(text, m, 1),
				Context:  contextWindow(text, m[0], m[1], specContextRadius),
			})
		}
	}

	for _, re := range standardPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			specs.Standards = append(specs.Standards, model.StandardRef{
				Standard: group(text, m, 1),
				Context:  contextWindow(text, m[0], m[1], specContextRadius),
			})
		}
	}

	return specs
}
