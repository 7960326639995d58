package model

import "time"

// MeasurementKind tags what a measured value describes
type MeasurementKind string

const (
	MeasurementLength       MeasurementKind = "length"
	MeasurementWidth        MeasurementKind = "width"
	MeasurementHeight       MeasurementKind = "height"
	MeasurementSingle       MeasurementKind = "single_measurement"
	MeasurementLoadCapacity MeasurementKind = "load_capacity"
	MeasurementLoadRating   MeasurementKind = "load_rating"
	MeasurementTemperature  MeasurementKind = "temperature"
	MeasurementHumidity     MeasurementKind = "humidity"
	MeasurementElectrical   MeasurementKind = "electrical"
)

// Measurement is a dimensional, load, environmental or electrical value
// recovered from document text
type Measurement struct {
	Value      float64         `json:"value"`      // Numeric value, decimal comma normalized
	Unit       string          `json:"unit"`       // Short unit string (mm, kg, kN/m², ...)
	Kind       MeasurementKind `json:"kind"`       // What the value describes
	Context    string          `json:"context"`    // Bounded text window around the match
	Confidence float64         `json:"confidence"` // Heuristic reliability in [0.1, 1.0]
}

// DateKind classifies the role a date plays in the document
type DateKind string

const (
	DateDeadline   DateKind = "deadline"
	DateStart      DateKind = "start_date"
	DateDelivery   DateKind = "delivery_date"
	DateInspection DateKind = "inspection_date"
	DateGeneral    DateKind = "general_date"
)

// DateFact is a calendar date recovered from document text.
// Date is always a valid calendar day at midnight UTC; matches that do not
// form a valid day/month/year combination are discarded, never stored.
type DateFact struct {
	Date       time.Time `json:"date"`
	Kind       DateKind  `json:"kind"`
	Context    string    `json:"context"`
	Confidence float64   `json:"confidence"`
}

// MilestonePriority ranks how urgent a milestone sentence reads
type MilestonePriority string

const (
	PriorityHigh   MilestonePriority = "high"
	PriorityMedium MilestonePriority = "medium"
	PriorityLow    MilestonePriority = "low"
)

// MilestoneStatus captures the completion state stated in the sentence
type MilestoneStatus string

const (
	StatusCompleted  MilestoneStatus = "completed"
	StatusInProgress MilestoneStatus = "in_progress"
	StatusPlanned    MilestoneStatus = "planned"
	StatusUnknown    MilestoneStatus = "unknown"
)

// Milestone is a sentence identified as describing a project event.
// Date carries the first date extracted from the sentence, if any.
type Milestone struct {
	Description string            `json:"description"`
	Date        *time.Time        `json:"date,omitempty"`
	Priority    MilestonePriority `json:"priority"`
	Status      MilestoneStatus   `json:"status"`
	Confidence  float64           `json:"confidence"`
}

// Entity is a named entity recognized by the NLP engine. Confidence is a
// constant 0.7 marking "recognized by the tagger"; it is not independently
// computed.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Context    string  `json:"context"`
	Confidence float64 `json:"confidence"`
}

// PriceKind tags which price pattern family produced the fact
type PriceKind string

const (
	PricePlain PriceKind = "price"       // number + explicit currency
	PriceValue PriceKind = "price_value" // "cena:" labelled value
	PriceTotal PriceKind = "total_price" // "celkem:" labelled value
)

// PriceFact is a monetary amount recovered from document text
type PriceFact struct {
	Value      float64   `json:"value"`
	Currency   string    `json:"currency"`
	Kind       PriceKind `json:"kind"`
	Context    string    `json:"context"`
	Confidence float64   `json:"confidence"`
}

// MaterialRef is a material mention with its surrounding context
type MaterialRef struct {
	Material string `json:"material"`
	Context  string `json:"context"`
}

// StandardRef is a standards-code mention (EN/ISO/ČSN/DIN) with context
type StandardRef struct {
	Standard string `json:"standard"`
	Context  string `json:"context"`
}

// CertificationRef is reserved; no extractor populates it yet
type CertificationRef struct {
	Certification string `json:"certification"`
	Context       string `json:"context"`
}

// TechnicalParameter is reserved; no extractor populates it yet
type TechnicalParameter struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Context string `json:"context"`
}

// TechnicalSpecs aggregates material and standards mentions. The
// certification and parameter lists are part of the output shape but stay
// empty in this version.
type TechnicalSpecs struct {
	Materials           []MaterialRef        `json:"materials"`
	Standards           []StandardRef        `json:"standards"`
	Certifications      []CertificationRef   `json:"certifications"`
	TechnicalParameters []TechnicalParameter `json:"technical_parameters"`
}

// NewTechnicalSpecs returns a TechnicalSpecs with all lists allocated so the
// serialized form always carries arrays, never nulls
func NewTechnicalSpecs() TechnicalSpecs {
	return TechnicalSpecs{
		Materials:           []MaterialRef{},
		Standards:           []StandardRef{},
		Certifications:      []CertificationRef{},
		TechnicalParameters: []TechnicalParameter{},
	}
}
