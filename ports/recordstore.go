package ports

import (
	"context"

	"tribunal/domain/core"
	"tribunal/domain/costs"
	"tribunal/domain/docprod"
	"tribunal/domain/timetable"
)

// Section names the record slices a case is persisted under.
type Section string

const (
	SectionDocProd  Section = "doc_prod"
	SectionTimeline Section = "timeline"
	SectionDelays   Section = "delays"
	SectionCosts    Section = "costs"
	SectionMeta     Section = "meta"
)

// Meta is the per-case configuration section.
type Meta struct {
	CaseName     string                 `json:"case_name"`
	Seat         string                 `json:"seat,omitempty"`
	CostSettings costs.SettingsOverride `json:"cost_settings"`
}

// CaseRecord is the whole procedural record for one case, assembled from
// its persisted sections. Mutation is whole-section read-modify-write;
// concurrent editors of the same case are last-write-wins.
type CaseRecord struct {
	CaseID   core.CaseID           `json:"case_id"`
	DocProd  docprod.Schedule      `json:"doc_prod"`
	Timeline []timetable.Event     `json:"timeline"`
	Delays   []timetable.Extension `json:"delays"`
	Costs    costs.Ledger          `json:"costs"`
	Meta     Meta                  `json:"meta"`
}

// Settings returns the case's effective cost settings, with defaults
// filled in for anything the meta section leaves unset.
func (r *CaseRecord) Settings() costs.Settings {
	return r.Meta.CostSettings.Resolve()
}

// RecordStore is the durable case-record collaborator. Load returns the
// full assembled record; SaveSection writes one section back wholesale.
type RecordStore interface {
	Load(ctx context.Context, caseID core.CaseID) (*CaseRecord, error)
	SaveSection(ctx context.Context, caseID core.CaseID, section Section, value any) error
	CreateCase(ctx context.Context, caseID core.CaseID, meta Meta) error
	ListCases(ctx context.Context) ([]core.CaseID, error)
}
