package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tribunal/domain/core"
	"tribunal/ports"
)

// RecordStoreImpl implements ports.RecordStore for PostgreSQL. Each case
// section is one JSONB row; a section is always written back wholesale,
// so concurrent editors of the same case are last-write-wins.
type RecordStoreImpl struct {
	db *sqlx.DB
}

// NewRecordStore creates a new PostgreSQL record store
func NewRecordStore(db *sqlx.DB) *RecordStoreImpl {
	return &RecordStoreImpl{db: db}
}

// EnsureSchema creates the case_sections table when absent.
func (r *RecordStoreImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS case_sections (
			case_id    TEXT NOT NULL,
			section    TEXT NOT NULL,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (case_id, section)
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// CreateCase initializes a case with its meta section.
func (r *RecordStoreImpl) CreateCase(ctx context.Context, caseID core.CaseID, meta ports.Meta) error {
	return r.SaveSection(ctx, caseID, ports.SectionMeta, meta)
}

// Load assembles the full case record from its stored sections. Sections
// never written remain zero-valued; a case with no rows at all is
// ErrCaseNotFound.
func (r *RecordStoreImpl) Load(ctx context.Context, caseID core.CaseID) (*ports.CaseRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT section, payload FROM case_sections WHERE case_id = $1`, caseID.String())
	if err != nil {
		return nil, fmt.Errorf("load case %s: %w", caseID, err)
	}
	defer rows.Close()

	record := &ports.CaseRecord{CaseID: caseID}
	found := false
	for rows.Next() {
		var section string
		var payload []byte
		if err := rows.Scan(&section, &payload); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		found = true
		if err := decodeSection(record, ports.Section(section), payload); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load case %s: %w", caseID, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", core.ErrCaseNotFound, caseID)
	}
	return record, nil
}

func decodeSection(record *ports.CaseRecord, section ports.Section, payload []byte) error {
	var dst any
	switch section {
	case ports.SectionDocProd:
		dst = &record.DocProd
	case ports.SectionTimeline:
		dst = &record.Timeline
	case ports.SectionDelays:
		dst = &record.Delays
	case ports.SectionCosts:
		dst = &record.Costs
	case ports.SectionMeta:
		dst = &record.Meta
	default:
		// Unknown sections are tolerated: older records may carry
		// sections this version no longer reads.
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode section %s: %w", section, err)
	}
	return nil
}

// SaveSection upserts one section's JSON payload wholesale.
func (r *RecordStoreImpl) SaveSection(ctx context.Context, caseID core.CaseID, section ports.Section, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode section %s: %w", section, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO case_sections (case_id, section, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (case_id, section) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW()`,
		caseID.String(), string(section), payload)
	if err != nil {
		return fmt.Errorf("save section %s for case %s: %w", section, caseID, err)
	}
	return nil
}

// ListCases returns every case with at least one stored section.
func (r *RecordStoreImpl) ListCases(ctx context.Context) ([]core.CaseID, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		`SELECT DISTINCT case_id FROM case_sections ORDER BY case_id`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	out := make([]core.CaseID, len(ids))
	for i, id := range ids {
		out[i] = core.CaseID(id)
	}
	return out, nil
}
