package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agroexport/internal/domain/entities"
	"agroexport/internal/domain/pricing"
	"agroexport/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound     = errors.New("estimate not found")
	ErrInvalidEstimateID    = errors.New("invalid estimate id")
	ErrInvalidContainerID   = errors.New("invalid container id")
	ErrInvalidDestination   = errors.New("invalid destination country")
	ErrInvalidEstimateDate  = errors.New("invalid estimate date")
	ErrUnknownProduct       = errors.New("unknown product")
	ErrNegativeQuantity     = errors.New("negative quantity")
	ErrNegativeUnitPrice    = errors.New("negative unit price")
	ErrNegativeCost         = errors.New("negative cost input")
	ErrDutyOutOfRange       = errors.New("export duty out of range")
	ErrNegativeMargin       = errors.New("negative margin")
	ErrExporterNotAvailable = errors.New("report exporter not configured")
)

// CreateEstimateCommand is the validated input boundary for a new
// estimate. Line-item totals are recomputed from quantity and unit
// price; values supplied in TotalValue are ignored.
type CreateEstimateCommand struct {
	ContainerID string
	Destination string
	Date        time.Time
	Products    []entities.LineItem
	Costs       entities.CostInputs
	Margins     entities.MarginInputs
}

// IEstimateUseCase exposes the estimate lifecycle:
//   - CreateEstimate validates the boundary, runs the markup chain and
//     appends the record to the store
//   - ListEstimates / ListActive back the history and dashboard views
//   - ExportReport renders one estimate for download

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListEstimates(ctx context.Context) ([]entities.Estimate, error)
	ListActive(ctx context.Context) ([]entities.Estimate, error)
	ExportReport(ctx context.Context, id string) ([]byte, error)
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	catalog  interfaces.IProductRepository
	exporter interfaces.IReportExporter
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, catalog interfaces.IProductRepository, exporter interfaces.IReportExporter) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, catalog: catalog, exporter: exporter}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error) {
	containerID := strings.TrimSpace(cmd.ContainerID)
	if containerID == "" {
		return entities.Estimate{}, ErrInvalidContainerID
	}
	if !entities.IsValidDestination(cmd.Destination) {
		return entities.Estimate{}, ErrInvalidDestination
	}
	if cmd.Date.IsZero() {
		return entities.Estimate{}, ErrInvalidEstimateDate
	}
	if err := validateCosts(cmd.Costs); err != nil {
		return entities.Estimate{}, err
	}
	if err := validateMargins(cmd.Margins); err != nil {
		return entities.Estimate{}, err
	}

	lines, err := u.resolveLineItems(ctx, cmd.Products)
	if err != nil {
		return entities.Estimate{}, err
	}

	results := pricing.Calculate(lines, cmd.Costs, cmd.Margins)

	e := entities.Estimate{
		ID:          uuid.NewString(),
		ContainerID: containerID,
		Destination: cmd.Destination,
		Date:        cmd.Date,
		Products:    lines,
		Costs:       cmd.Costs,
		Margins:     cmd.Margins,
		Results:     results,
		Status:      entities.EstimateStatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.repo.Append(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] created id=%s container=%s retail_price=%.2f margin=%.2f",
		created.ID, created.ContainerID, created.Results.RetailPrice, created.Results.Margin)
	return created, nil
}

// resolveLineItems validates each line against the catalog and rebuilds
// it with the derived total, so the store never holds an inconsistent
// quantity/price/total triple.
func (u *EstimateUseCase) resolveLineItems(ctx context.Context, items []entities.LineItem) ([]entities.LineItem, error) {
	lines := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Product)
		if name == "" {
			return nil, ErrUnknownProduct
		}
		if item.Quantity < 0 {
			return nil, ErrNegativeQuantity
		}
		if item.UnitPrice < 0 {
			return nil, ErrNegativeUnitPrice
		}
		p, err := u.catalog.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if p.Name == "" {
			return nil, ErrUnknownProduct
		}
		lines = append(lines, entities.NewLineItem(p.Name, item.Quantity, item.UnitPrice))
	}
	return lines, nil
}

func validateCosts(c entities.CostInputs) error {
	if c.Transport < 0 || c.Packing < 0 || c.Fumigation < 0 || c.Customs < 0 {
		return ErrNegativeCost
	}
	if c.DutyPercent < 0 || c.DutyPercent > 100 {
		return ErrDutyOutOfRange
	}
	return nil
}

func validateMargins(m entities.MarginInputs) error {
	if m.Importer < 0 || m.Distributor < 0 || m.Retailer < 0 {
		return ErrNegativeMargin
	}
	return nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.ListAll(ctx)
}

func (u *EstimateUseCase) ListActive(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.ListByStatus(ctx, entities.EstimateStatusActive)
}

func (u *EstimateUseCase) ExportReport(ctx context.Context, id string) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrExporterNotAvailable
	}

	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.exporter.BuildEstimateReport(ctx, e)
}
