package allocation

import (
	"fmt"
	"strings"
)

// BuildPrompt compiles the closed-form drafting prompt for the generative
// narrative service. The prompt embeds the exact structured metrics; the
// service is asked to phrase, not to compute, so the numbers in the
// output are pinned here.
func BuildPrompt(m Metrics) string {
	var b strings.Builder

	b.WriteString("You are drafting the cost-allocation section of an arbitral award.\n")
	b.WriteString("Write a formal narrative with exactly four sections, in order: ")
	b.WriteString("I. General Principle; II. Document Production Conduct; III. Procedural Delay; IV. Synthesis.\n")
	fmt.Fprintf(&b, "The general principle is: %q\n\n", GeneralPrinciple)

	b.WriteString("Use exactly these figures, to one decimal place, without recomputing them:\n")
	for _, pm := range m.Parties() {
		fmt.Fprintf(&b, "- %s: %d document requests filed, %d denied, rejection rate %.1f%%, threshold %.1f%%, penalty triggered: %t\n",
			pm.Party.Title(), pm.Conduct.Total, pm.Conduct.Rejected, pm.Conduct.Ratio,
			m.Settings.DocProdThreshold, pm.Conduct.PenaltyTriggered)
	}
	for _, pm := range m.Parties() {
		fmt.Fprintf(&b, "- %s: delay deduction %.1f%%", pm.Party.Title(), pm.Delay.TotalPercent)
		if len(pm.Delay.Log) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(pm.Delay.Log, "; "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "- Recoverable costs: Claimant %.2f, Respondent %.2f, common %.2f\n",
		m.Claimant.Costs.Total, m.Respondent.Costs.Total, m.CommonCost.Total)

	b.WriteString("\nIf a party's penalty was triggered, state that it bears 100% of its own document-production costs. ")
	b.WriteString("If neither party accrued delay deductions, state that explicitly. Do not invent additional figures.")

	return b.String()
}
