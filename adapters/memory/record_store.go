package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"tribunal/domain/core"
	"tribunal/ports"
)

// RecordStore is an in-memory ports.RecordStore used in tests and local
// development. Sections round-trip through JSON so it exercises the same
// encode/decode path as the Postgres store.
type RecordStore struct {
	mu    sync.Mutex
	cases map[core.CaseID]map[ports.Section][]byte
}

// NewRecordStore creates an empty in-memory store.
func NewRecordStore() *RecordStore {
	return &RecordStore{cases: map[core.CaseID]map[ports.Section][]byte{}}
}

func (s *RecordStore) CreateCase(ctx context.Context, caseID core.CaseID, meta ports.Meta) error {
	return s.SaveSection(ctx, caseID, ports.SectionMeta, meta)
}

func (s *RecordStore) Load(_ context.Context, caseID core.CaseID) (*ports.CaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sections, ok := s.cases[caseID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrCaseNotFound, caseID)
	}
	record := &ports.CaseRecord{CaseID: caseID}
	for section, payload := range sections {
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
			continue
		}
		if err := json.Unmarshal(payload, dst); err != nil {
			return nil, fmt.Errorf("decode section %s: %w", section, err)
		}
	}
	return record, nil
}

func (s *RecordStore) SaveSection(_ context.Context, caseID core.CaseID, section ports.Section, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode section %s: %w", section, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cases[caseID] == nil {
		s.cases[caseID] = map[ports.Section][]byte{}
	}
	s.cases[caseID][section] = payload
	return nil
}

func (s *RecordStore) ListCases(context.Context) ([]core.CaseID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]core.CaseID, 0, len(s.cases))
	for id := range s.cases {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
