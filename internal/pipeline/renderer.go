package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jkratochvil/stavex/internal/model"
)

// Renderer writes extraction reports as JSON, Markdown, or a short stdout
// digest
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report to path as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder
	res := report.Result

	fmt.Fprintf(&b, "# Extraction Report\n\n")
	fmt.Fprintf(&b, "- **Source**: %s\n", report.SourcePath)
	fmt.Fprintf(&b, "- **Extracted**: %s\n", report.ExtractedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- **Document type**: %s\n", res.DocumentType)
	fmt.Fprintf(&b, "- **Summary**: %s\n\n", res.Summary)

	if len(res.Measurements) > 0 {
		fmt.Fprintf(&b, "## Measurements (%d)\n\n", len(res.Measurements))
		fmt.Fprintf(&b, "| Value | Unit | Kind | Confidence |\n|---|---|---|---|\n")
		for _, m := range res.Measurements {
			fmt.Fprintf(&b, "| %g | %s | %s | %.2f |\n", m.Value, m.Unit, m.Kind, m.Confidence)
		}
		b.WriteString("\n")
	}

	if len(res.Dates) > 0 {
		fmt.Fprintf(&b, "## Dates (%d)\n\n", len(res.Dates))
		fmt.Fprintf(&b, "| Date | Kind | Confidence |\n|---|---|---|\n")
		for _, d := range res.Dates {
			fmt.Fprintf(&b, "| %s | %s | %.2f |\n", d.Date.Format("2006-01-02"), d.Kind, d.Confidence)
		}
		b.WriteString("\n")
	}

	if len(res.Milestones) > 0 {
		fmt.Fprintf(&b, "## Milestones (%d)\n\n", len(res.Milestones))
		for _, m := range res.Milestones {
			date := "n/a"
			if m.Date != nil {
				date = m.Date.Format("2006-01-02")
			}
			fmt.Fprintf(&b, "- [%s/%s] %s (date: %s, confidence %.2f)\n",
				m.Priority, m.Status, m.Description, date, m.Confidence)
		}
		b.WriteString("\n")
	}

	if len(res.Prices) > 0 {
		fmt.Fprintf(&b, "## Prices (%d)\n\n", len(res.Prices))
		fmt.Fprintf(&b, "| Value | Currency | Kind |\n|---|---|---|\n")
		for _, p := range res.Prices {
			fmt.Fprintf(&b, "| %.2f | %s | %s |\n", p.Value, p.Currency, p.Kind)
		}
		b.WriteString("\n")
	}

	if len(res.TechnicalSpecs.Materials) > 0 || len(res.TechnicalSpecs.Standards) > 0 {
		fmt.Fprintf(&b, "## Technical specifications\n\n")
		for _, m := range res.TechnicalSpecs.Materials {
			fmt.Fprintf(&b, "- Material: %s\n", m.Material)
		}
		for _, s := range res.TechnicalSpecs.Standards {
			fmt.Fprintf(&b, "- Standard: %s\n", s.Standard)
		}
		b.WriteString("\n")
	}

	if len(res.Entities) > 0 {
		fmt.Fprintf(&b, "## Entities (%d)\n\n", len(res.Entities))
		for _, e := range res.Entities {
			fmt.Fprintf(&b, "- %s (%s)\n", e.Text, e.Label)
		}
		b.WriteString("\n")
	}

	if len(res.Keywords) > 0 {
		fmt.Fprintf(&b, "## Keywords\n\n%s\n\n", strings.Join(res.Keywords, ", "))
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\nGenerated by stavex (report %s)\n", report.ID)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

// RenderDigest prints the one-line summary and counts to stdout
func (r *Renderer) RenderDigest(report *model.Report) {
	res := report.Result
	fmt.Println(res.Summary)
	fmt.Printf("  measurements=%d dates=%d milestones=%d prices=%d entities=%d keywords=%d\n",
		len(res.Measurements), len(res.Dates), len(res.Milestones),
		len(res.Prices), len(res.Entities), len(res.Keywords))
}
