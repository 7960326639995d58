package model

import "time"

// ExtractionResult is the aggregate output of one extraction run over one
// document text. It is built once by the pipeline and never mutated after;
// downstream consumers persist or render it directly, so field presence and
// semantics are stable.
type ExtractionResult struct {
	DocumentType   DocumentType   `json:"document_type"`
	Measurements   []Measurement  `json:"measurements"`
	Dates          []DateFact     `json:"dates"`
	Milestones     []Milestone    `json:"milestones"`
	Prices         []PriceFact    `json:"prices"`
	TechnicalSpecs TechnicalSpecs `json:"technical_specifications"`
	Entities       []Entity       `json:"entities"`
	Keywords       []string       `json:"keywords"` // Sorted, duplicate-free
	Summary        string         `json:"summary"`
}

// NewExtractionResult returns a result with every list allocated, so an
// empty document still serializes with empty arrays
func NewExtractionResult() *ExtractionResult {
	return &ExtractionResult{
		DocumentType:   DocumentTypeUnknown,
		Measurements:   []Measurement{},
		Dates:          []DateFact{},
		Milestones:     []Milestone{},
		Prices:         []PriceFact{},
		TechnicalSpecs: NewTechnicalSpecs(),
		Entities:       []Entity{},
		Keywords:       []string{},
	}
}

// Report wraps one ExtractionResult with provenance for batch processing
// and rendering
type Report struct {
	ID          string            `json:"id"`           // Random UUID assigned per run
	SourcePath  string            `json:"source_path"`  // File the text came from
	ExtractedAt time.Time         `json:"extracted_at"` // When extraction ran (UTC)
	TextLength  int               `json:"text_length"`  // Characters of normalized input
	Result      *ExtractionResult `json:"result"`
}
