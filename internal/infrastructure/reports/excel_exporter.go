package reports

import (
	"context"
	"fmt"

	"agroexport/internal/domain/entities"
	"agroexport/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Estimate"

// ExcelReportExporter renders an estimate into an XLSX workbook with
// the same table the export report always carried: one row per product
// with quantity, unit price and total, closed by the retail price.

type ExcelReportExporter struct{}

var _ interfaces.IReportExporter = (*ExcelReportExporter)(nil)

func NewExcelReportExporter() *ExcelReportExporter {
	return &ExcelReportExporter{}
}

func (x *ExcelReportExporter) BuildEstimateReport(ctx context.Context, e entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := [][]interface{}{
		{fmt.Sprintf("Export Estimate Report - %s", e.ContainerID)},
		{"Destination", e.Destination},
		{"Date", e.Date.Format("2006-01-02")},
		{},
		{"Product", "Qty", "Unit Price", "Total Value"},
	}
	row := 1
	for _, cells := range header {
		if len(cells) > 0 {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(reportSheet, cell, &cells); err != nil {
				return nil, err
			}
		}
		row++
	}

	for _, line := range e.Products {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		cells := []interface{}{line.Product, line.Quantity, line.UnitPrice, line.TotalValue}
		if err := f.SetSheetRow(reportSheet, cell, &cells); err != nil {
			return nil, err
		}
		row++
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, err
	}
	footer := []interface{}{"", "", "Retail Price", e.Results.RetailPrice}
	if err := f.SetSheetRow(reportSheet, cell, &footer); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return buf.Bytes(), nil
}
