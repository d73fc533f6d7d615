package project_summary

import (
	"context"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/domain/services"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
)

// Handler computes status counts and costs for a project.
type Handler struct {
	readModel contracts.ReadModel
	summary   *services.SummaryCalculator
	cost      *services.CostCalculator
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{
		readModel: r,
		summary:   services.NewSummaryCalculator(),
		cost:      services.NewCostCalculator(),
	}
}

func (h *Handler) Execute(ctx context.Context, projectID string) (*dto.ProjectSummaryDTO, error) {
	p, err := h.readModel.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	materials, err := h.readModel.ListMaterials(ctx, projectID, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	project, err := shared.ProjectFromDTO(p, materials)
	if err != nil {
		return nil, err
	}

	s := h.summary.Summarize(project)
	c := h.cost.ProjectCost(project)
	return &dto.ProjectSummaryDTO{
		ProjectID:          project.ID(),
		TotalMaterials:     s.TotalMaterials,
		PendingMaterials:   s.PendingMaterials,
		OrderedMaterials:   s.OrderedMaterials,
		DeliveredMaterials: s.DeliveredMaterials,
		RecentChanges:      s.RecentChanges,
		TotalCost:          c.Total.StringFixed(2),
		PendingCost:        c.Pending.StringFixed(2),
		OrderedCost:        c.Ordered.StringFixed(2),
		DeliveredCost:      c.Delivered.StringFixed(2),
		UnpricedEntries:    c.Unpriced,
	}, nil
}
