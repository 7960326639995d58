// Package extract implements the structured-fact extraction pipeline for
// construction-project document text: document classification, measurement,
// date, milestone, price and technical-spec extraction, entity and keyword
// extraction, and summary generation.
//
// All pattern tables in this file are ordered; extractors try entries in
// declared order and classifiers resolve ties toward earlier entries, so
// the ordering is part of the contract.
package extract

import (
	"regexp"

	"github.com/jkratochvil/stavex/internal/model"
)

// Context radii in bytes around a match, clipped to rune boundaries
const (
	measurementContextRadius = 50
	dateContextRadius        = 30
	priceContextRadius       = 40
	specContextRadius        = 30
	entityContextRadius      = 30
)

// numStart blocks a value match from starting inside a longer number or
// right after a dimension separator, keeping the patterns anchored
const numStart = `(?:^|[^x\d.,])`

// Measurement pattern families. Families that expand into several
// measurements (dimensions) are handled specially by the extractor; the
// rest map one match to one measurement of the given kind.
type measurementPattern struct {
	re   *regexp.Regexp
	kind model.MeasurementKind
}

const (
	kindDimensions3D model.MeasurementKind = "dimensions_3d"
	kindDimensions2D model.MeasurementKind = "dimensions_2d"
)

var measurementPatterns = []measurementPattern{
	// Dimensional, largest arity first
	{regexp.MustCompile(`(?i)` + numStart + `(\d+(?:[.,]\d+)?)\s*x\s*(\d+(?:[.,]\d+)?)\s*x\s*(\d+(?:[.,]\d+)?)\s*(mm|cm|m)\b`), kindDimensions3D},
	{regexp.MustCompile(`(?i)` + numStart + `(\d+(?:[.,]\d+)?)\s*x\s*(\d+(?:[.,]\d+)?)\s*(mm|cm|m)\b`), kindDimensions2D},
	{regexp.MustCompile(`(?i)` + numStart + `(\d+(?:[.,]\d+)?)\s*(mm|cm|m|kg|t|kN|MPa)\b`), model.MeasurementSingle},

	// Load capacity and rating
	{regexp.MustCompile(`(?i)` + numStart + `(\d+(?:[.,]\d+)?)\s*(kg/m²|t/m²|kN/m²)`), model.MeasurementLoadCapacity},
	{regexp.MustCompile(`(?i)nosnost[:\s]*(\d+(?:[.,]\d+)?)\s*(kg|t|kN)\b`), model.MeasurementLoadCapacity},
	{regexp.MustCompile(`(?i)zatížení[:\s]*(\d+(?:[.,]\d+)?)\s*(kg|t|kN)\b`), model.MeasurementLoadRating},

	// Environmental conditions
	{regexp.MustCompile(`(?i)` + numStart + `(-?\d+(?:[.,]\d+)?)\s*°?C\b`), model.MeasurementTemperature},
	{regexp.MustCompile(`(?i)vlhkost[:\s]*(\d+(?:[.,]\d+)?)\s*%`), model.MeasurementHumidity},

	// Electrical parameters
	{regexp.MustCompile(`(?i)` + numStart + `(\d+(?:[.,]\d+)?)\s*(V|A|W|kW)\b`), model.MeasurementElectrical},
}

// Date pattern families. The spaced day-month-year variant requires real
// whitespace after the dots so a compact date matches exactly one family.
type datePattern struct {
	re       *regexp.Regexp
	dayFirst bool
}

var datePatterns = []datePattern{
	{regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{4})`), true},
	{regexp.MustCompile(`(\d{4})[.\-/](\d{1,2})[.\-/](\d{1,2})`), false},
	{regexp.MustCompile(`(\d{1,2})\.\s+(\d{1,2})\.\s+(\d{4})`), true},
}

// Date role vocabularies, tried in declared priority order
type dateRole struct {
	kind     model.DateKind
	keywords []string
}

var dateRoles = []dateRole{
	{model.DateDeadline, []string{"termín", "deadline", "dokončení"}},
	{model.DateStart, []string{"začátek", "start", "zahájení"}},
	{model.DateDelivery, []string{"dodání", "dodávka"}},
	{model.DateInspection, []string{"kontrola", "revize"}},
}

// dateConfidenceKeywords raise date confidence when present in the context
var dateConfidenceKeywords = []string{"termín", "deadline", "dokončení", "začátek"}

// Milestone keyword categories, tried in declared order; a sentence is
// attributed to the first category that matches
type milestoneCategory struct {
	name     string
	keywords []string
}

var milestoneCategories = []milestoneCategory{
	{"deadline", []string{"termín", "deadline", "dokončení", "ukončení", "finalizace"}},
	{"start", []string{"začátek", "start", "zahájení", "spuštění"}},
	{"milestone", []string{"milník", "fáze", "etapa", "krok", "úkol"}},
	{"delivery", []string{"dodání", "dodávka", "předání", "instalace"}},
	{"inspection", []string{"kontrola", "revize", "audit", "přejímka"}},
}

var (
	priorityHighKeywords = []string{"kritický", "důležitý", "prioritní", "urgentní"}
	priorityLowKeywords  = []string{"volitelný", "dodatečný", "nice-to-have"}

	statusCompletedKeywords  = []string{"dokončeno", "hotovo", "splněno", "completed"}
	statusInProgressKeywords = []string{"probíhá", "in progress", "zpracovává"}
	statusPlannedKeywords    = []string{"plánováno", "planned", "naplánováno"}
)

// numberedItemRe marks numbered list items ("1. ...") for the milestone
// confidence bonus
var numberedItemRe = regexp.MustCompile(`^\d+\.`)

// Price pattern families
type pricePattern struct {
	re   *regexp.Regexp
	kind model.PriceKind
}

var pricePatterns = []pricePattern{
	{regexp.MustCompile(`(?i)(\d+(?:\s?\d{3})*(?:[.,]\d{2})?)\s*(Kč|CZK|EUR|€)`), model.PricePlain},
	{regexp.MustCompile(`(?i)cena[:\s]*(\d+(?:\s?\d{3})*(?:[.,]\d{2})?)`), model.PriceValue},
	{regexp.MustCompile(`(?i)celkem[:\s]*(\d+(?:\s?\d{3})*(?:[.,]\d{2})?)`), model.PriceTotal},
}

// defaultCurrency applies when a labelled price carries no currency
const defaultCurrency = "CZK"

// Material and standards-code vocabularies
var materialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(ocel|kov|hliník|nerez|pozink)`),
	regexp.MustCompile(`(?i)(S\d{3}|EN\s?\d+)`),
}

var standardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(EN\s?\d+(?:-\d+)?)`),
	regexp.MustCompile(`(?i)(ISO\s?\d+(?:-\d+)?)`),
	regexp.MustCompile(`(?i)(ČSN\s?\d+(?:\s?\d+)?)`),
	regexp.MustCompile(`(?i)(DIN\s?\d+)`),
}

// Document-type keyword sets in declared priority order; ties between
// scores resolve to the earlier entry
type classifierEntry struct {
	docType  model.DocumentType
	keywords []string
}

var classifierKeywords = []classifierEntry{
	{model.DocumentTypeTechnicalDrawing, []string{"výkres", "schéma", "rozměr", "technický", "detail", "řez"}},
	{model.DocumentTypeBudget, []string{"rozpočet", "cena", "kalkulace", "náklad", "faktura", "cenová"}},
	{model.DocumentTypeProgressReport, []string{"postup", "progress", "stav", "dokončeno", "procent"}},
	{model.DocumentTypeSpecification, []string{"specifikace", "požadavek", "norma", "standard", "parametr"}},
	{model.DocumentTypeSafetyDocument, []string{"bezpečnost", "ochrana", "riziko", "nebezpečí", "bozp"}},
}
