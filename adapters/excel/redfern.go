package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tribunal/domain/core"
	"tribunal/domain/docprod"
)

// redfernHeaders are the columns of the exported schedule, in the
// conventional Redfern order.
var redfernHeaders = []string{
	"No.", "Requesting Party", "Documents Requested", "Relevance and Materiality",
	"Objection", "Reply", "Tribunal Decision", "Status",
}

// WriteRedfernSchedule renders both parties' document-production requests
// as a single worksheet and writes the workbook to w.
func WriteRedfernSchedule(w io.Writer, schedule docprod.Schedule) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Redfern Schedule"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range redfernHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	row := 2
	for _, party := range core.Sides() {
		for i, req := range schedule.ForParty(party) {
			values := []any{
				fmt.Sprintf("%s-%d", partyPrefix(party), i+1),
				party.Title(),
				req.Description,
				req.Relevance,
				req.Objection,
				req.Reply,
				req.Decision,
				string(req.Status),
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return fmt.Errorf("cell name: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return fmt.Errorf("write row %d: %w", row, err)
				}
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func partyPrefix(p core.Party) string {
	if p == core.PartyClaimant {
		return "C"
	}
	return "R"
}
