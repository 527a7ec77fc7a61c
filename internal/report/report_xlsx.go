package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	XLSXFilename    = "attendance-summary.xlsx"
	SummarySheet    = "Daily Summary"
)

var summaryHeader = []any{"Employee", "Date", "Entry Time", "Exit Time", "Worked Hours"}

// DocumentSink encodes report rows into a downloadable document.
type DocumentSink interface {
	Build(rows []Row) (Document, error)
}

type XLSXSink struct{}

func NewXLSXSink() XLSXSink {
	return XLSXSink{}
}

func (XLSXSink) Build(rows []Row) (Document, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return Document{}, fmt.Errorf("rename sheet: %w", err)
	}

	header := summaryHeader
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return Document{}, fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return Document{}, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(SummarySheet, 1, 1, bold); err != nil {
		return Document{}, fmt.Errorf("header style: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return Document{}, err
		}
		values := []any{r.Employee, r.Date, r.EntryTime, r.ExitTime, r.WorkedHours}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return Document{}, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SummarySheet, "A", "A", 32); err != nil {
		return Document{}, err
	}
	if err := f.SetColWidth(SummarySheet, "B", "E", 14); err != nil {
		return Document{}, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Document{}, fmt.Errorf("encode workbook: %w", err)
	}

	return Document{
		Content:     buf.Bytes(),
		ContentType: XLSXContentType,
		Filename:    XLSXFilename,
	}, nil
}
