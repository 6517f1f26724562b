package allocation

import (
	"fmt"
	"strings"
)

// GeneralPrinciple is the standing statement opening every allocation
// narrative.
const GeneralPrinciple = "Costs follow the event, subject to adjustment for the parties' procedural conduct."

// RenderTemplate produces the deterministic allocation narrative: four
// fixed sections filled from the metrics with fixed phrasing. This is the
// guaranteed path; it never fails and never touches an external service.
// Ratios and percentages render to one decimal place.
func RenderTemplate(m Metrics) string {
	var b strings.Builder

	b.WriteString("## I. General Principle\n\n")
	b.WriteString(GeneralPrinciple)
	b.WriteString("\n\n")

	b.WriteString("## II. Document Production Conduct\n\n")
	for _, pm := range m.Parties() {
		name := pm.Party.Title()
		if pm.Conduct.Total == 0 {
			fmt.Fprintf(&b, "%s filed no document-production requests; its rejection rate of 0.0%% is within reasonable limits.\n", name)
			continue
		}
		fmt.Fprintf(&b, "%s filed %d requests of which %d were denied, a rejection rate of %.1f%%.\n",
			name, pm.Conduct.Total, pm.Conduct.Rejected, pm.Conduct.Ratio)
		if pm.Conduct.PenaltyTriggered {
			fmt.Fprintf(&b, "This exceeds the %.1f%% proportionality threshold; %s shall bear 100%% of its own document-production costs.\n",
				m.Settings.DocProdThreshold, name)
		} else {
			fmt.Fprintf(&b, "This is within the %.1f%% proportionality threshold and within reasonable limits.\n",
				m.Settings.DocProdThreshold)
		}
	}
	b.WriteString("\n")

	b.WriteString("## III. Procedural Delay\n\n")
	if m.NoDelays() {
		b.WriteString("No deductions: neither party has outstanding overdue obligations.\n")
	} else {
		for _, pm := range m.Parties() {
			name := pm.Party.Title()
			if pm.Delay.TotalPercent == 0 {
				fmt.Fprintf(&b, "%s: no delay deductions.\n", name)
				continue
			}
			fmt.Fprintf(&b, "%s accrues a cost deduction of %.1f%% for overdue obligations:\n", name, pm.Delay.TotalPercent)
			for _, line := range pm.Delay.Log {
				fmt.Fprintf(&b, "  - %s\n", line)
			}
		}
	}
	b.WriteString("\n")

	b.WriteString("## IV. Synthesis\n\n")
	fmt.Fprintf(&b, "Recoverable costs stand at %.2f for Claimant, %.2f for Respondent, and %.2f in common costs.\n",
		m.Claimant.Costs.Total, m.Respondent.Costs.Total, m.CommonCost.Total)
	b.WriteString("The adjustments in Sections II and III apply to the allocation that follows the event; any sealed-offer reversal is applied by the tribunal on top of this baseline.\n")

	return b.String()
}
