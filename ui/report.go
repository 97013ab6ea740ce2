package ui

import (
	"fmt"
	"strings"

	"fprsim/domain/sim"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// familyWiseContextK is the number of repeated tests shown in the report's
// multiple-testing context line
const familyWiseContextK = 20

// runReportMarkdown builds the markdown summary for one run. Rates are
// rounded to 3 decimals here for display only; significance thresholding
// happened upstream on unrounded p-values.
func runReportMarkdown(result *sim.SimulationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Simulation run %s\n\n", result.RunID)
	fmt.Fprintf(&b, "## Parameters\n\n")
	fmt.Fprintf(&b, "- Treatment population: N(%.3f, %.3f)\n", result.Spec.MeanTreatment, result.Spec.SDTreatment)
	fmt.Fprintf(&b, "- Control population: N(%.3f, %.3f)\n", result.Spec.MeanControl, result.Spec.SDControl)
	fmt.Fprintf(&b, "- Participants per group: %d\n", result.Participants)
	fmt.Fprintf(&b, "- Trials: %d\n", result.Trials)
	fmt.Fprintf(&b, "- Alpha: %.3f\n", result.Alpha)
	fmt.Fprintf(&b, "- Seed: %d\n\n", result.Seed)

	fmt.Fprintf(&b, "## Outcome\n\n")
	fmt.Fprintf(&b, "- Significant trials: %d of %d\n", result.Significant, result.Trials)
	fmt.Fprintf(&b, "- Empirical rate: %.3f (binomial SE %.3f)\n", result.EmpiricalRate, result.StandardError())

	if fw, err := sim.NewFamilyWiseResult(result.Alpha, familyWiseContextK); err == nil {
		fmt.Fprintf(&b, "- Analytic family-wise rate across %d such tests: %.3f\n", fw.K, fw.Rate)
	}

	return b.String()
}

// renderHTML converts report markdown to HTML
func renderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
