package allocation

import (
	"tribunal/domain/core"
	"tribunal/domain/costs"
	"tribunal/domain/docprod"
	"tribunal/domain/timetable"
)

// PartyMetrics bundles one side's procedural-conduct analysis.
type PartyMetrics struct {
	Party   core.Party              `json:"party"`
	Conduct docprod.ConductScore    `json:"conduct"`
	Delay   timetable.PenaltyResult `json:"delay"`
	Costs   costs.Summary           `json:"costs"`
}

// Metrics is the full structured input to narrative synthesis: both
// sides' conduct scores and delay penalties plus the settings they were
// computed under. The narrative is a pure function of this value.
type Metrics struct {
	CaseID     core.CaseID    `json:"case_id"`
	Claimant   PartyMetrics   `json:"claimant"`
	Respondent PartyMetrics   `json:"respondent"`
	Settings   costs.Settings `json:"settings"`
	CommonCost costs.Summary  `json:"common_cost"`
}

// Parties returns both sides' metrics in conventional order.
func (m Metrics) Parties() []PartyMetrics {
	return []PartyMetrics{m.Claimant, m.Respondent}
}

// NoDelays reports whether neither side accrued any delay deduction.
func (m Metrics) NoDelays() bool {
	return m.Claimant.Delay.TotalPercent == 0 && m.Respondent.Delay.TotalPercent == 0
}
