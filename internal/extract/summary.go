package extract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jkratochvil/stavex/internal/model"
)

// GenerateSummary composes the short textual digest of one extraction run:
// a semicolon-joined sequence of clauses for the document type, non-zero
// fact counts, and the total of price and total_price amounts when
// positive.
func GenerateSummary(docType model.DocumentType, measurements []model.Measurement,
	dates []model.DateFact, milestones []model.Milestone, prices []model.PriceFact) string {

	parts := []string{fmt.Sprintf("Typ dokumentu: %s", docType)}

	if len(measurements) > 0 {
		parts = append(parts, fmt.Sprintf("Nalezeno %d měření", len(measurements)))
	}
	if len(dates) > 0 {
		parts = append(parts, fmt.Sprintf("Nalezeno %d dat", len(dates)))
	}
	if len(milestones) > 0 {
		parts = append(parts, fmt.Sprintf("Nalezeno %d milníků", len(milestones)))
	}

	total := 0.0
	for _, p := range prices {
		if p.Kind == model.PricePlain || p.Kind == model.PriceTotal {
			total += p.Value
		}
	}
	if total > 0 {
		parts = append(parts, fmt.Sprintf("Celková hodnota: %s", formatAmount(total)))
	}

	return strings.Join(parts, "; ")
}

// formatAmount renders an amount with two decimals and comma thousands
// separators ("1,234,567.50")
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String() + "." + fracPart
}
