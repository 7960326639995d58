package model

// DocumentType classifies a construction-project document by its content
type DocumentType string

const (
	DocumentTypeTechnicalDrawing DocumentType = "technical_drawing" // Drawings, schematics, sections
	DocumentTypeBudget           DocumentType = "budget"            // Budgets, calculations, invoices
	DocumentTypeProgressReport   DocumentType = "progress_report"   // Site progress and status reports
	DocumentTypeSpecification    DocumentType = "specification"     // Requirements, norms, parameters
	DocumentTypeSafetyDocument   DocumentType = "safety_document"   // Safety and risk documentation
	DocumentTypeUnknown          DocumentType = "unknown"           // No classifier keyword matched
)

// ClassifiedTypes lists every classifiable type in its declared priority
// order. Ties between keyword scores resolve to the earlier entry, so this
// order is part of the classifier contract, not an implementation detail.
var ClassifiedTypes = []DocumentType{
	DocumentTypeTechnicalDrawing,
	DocumentTypeBudget,
	DocumentTypeProgressReport,
	DocumentTypeSpecification,
	DocumentTypeSafetyDocument,
}

func (t DocumentType) String() string {
	return string(t)
}
