package interfaces

import (
	"context"

	"agroexport/internal/domain/entities"
)

// IReportExporter renders an estimate into a downloadable report
// document (spreadsheet today). The exporter only reads the estimate;
// formatting concerns stay out of the core.
type IReportExporter interface {
	BuildEstimateReport(ctx context.Context, e entities.Estimate) ([]byte, error)
}
