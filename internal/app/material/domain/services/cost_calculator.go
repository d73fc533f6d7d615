package services

import (
	"github.com/shopspring/decimal"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
)

// CostBreakdown aggregates line costs (quantity x price) of a project's materials.
// Cancelled materials are excluded from Total.
type CostBreakdown struct {
	Total     decimal.Decimal
	Pending   decimal.Decimal
	Ordered   decimal.Decimal
	Delivered decimal.Decimal
	// Unpriced counts non-cancelled materials without a price.
	Unpriced int
}

// CostCalculator is a domain service for material cost calculations.
type CostCalculator struct{}

// NewCostCalculator creates a new CostCalculator instance.
func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// LineCost returns quantity x price, or zero when the material has no price.
func (cc *CostCalculator) LineCost(m domain.Material) decimal.Decimal {
	price := m.Price()
	if price == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(m.Quantity()).Mul(decimal.NewFromFloat(*price))
}

// ProjectCost sums line costs by status.
func (cc *CostCalculator) ProjectCost(project *domain.Project) CostBreakdown {
	out := CostBreakdown{
		Total:     decimal.Zero,
		Pending:   decimal.Zero,
		Ordered:   decimal.Zero,
		Delivered: decimal.Zero,
	}
	for _, m := range project.Materials() {
		if m.Status() == domain.MaterialStatusCancelled {
			continue
		}
		if m.Price() == nil {
			out.Unpriced++
			continue
		}
		line := cc.LineCost(m)
		out.Total = out.Total.Add(line)
		switch m.Status() {
		case domain.MaterialStatusPending:
			out.Pending = out.Pending.Add(line)
		case domain.MaterialStatusOrdered:
			out.Ordered = out.Ordered.Add(line)
		case domain.MaterialStatusDelivered:
			out.Delivered = out.Delivered.Add(line)
		}
	}
	return out
}
