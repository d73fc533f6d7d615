package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
)

var now = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func material(t *testing.T, status domain.MaterialStatus, quantity float64, price *float64, dirty bool) domain.Material {
	t.Helper()
	m, err := domain.NewMaterial(domain.MaterialInput{
		Name:     "item",
		Quantity: quantity,
		Price:    price,
		Status:   status,
	}, "u1", now)
	require.NoError(t, err)
	if dirty {
		m, err = m.Update(domain.Patch{domain.FieldQuantity: domain.NumberValue(quantity + 1)}, "u2", now)
		require.NoError(t, err)
	}
	return m
}

func price(f float64) *float64 { return &f }

func TestSummarize_CountsByStatus(t *testing.T) {
	project := domain.ReconstructProject("prj_1", "House", domain.ProjectStatusInProgress, "u1", now, now, []domain.Material{
		material(t, domain.MaterialStatusPending, 1, nil, false),
		material(t, domain.MaterialStatusPending, 1, nil, true),
		material(t, domain.MaterialStatusOrdered, 1, nil, false),
		material(t, domain.MaterialStatusDelivered, 1, nil, true),
		material(t, domain.MaterialStatusCancelled, 1, nil, false),
	})

	s := NewSummaryCalculator().Summarize(project)

	assert.Equal(t, ProjectSummary{
		TotalMaterials:     5,
		PendingMaterials:   2,
		OrderedMaterials:   1,
		DeliveredMaterials: 1,
		RecentChanges:      2,
	}, s)
	assert.LessOrEqual(t, s.PendingMaterials+s.OrderedMaterials+s.DeliveredMaterials, s.TotalMaterials)
}

func TestSummarize_EmptyAndNilProject(t *testing.T) {
	sc := NewSummaryCalculator()

	assert.Equal(t, ProjectSummary{}, sc.Summarize(nil))
	empty := domain.ReconstructProject("prj_1", "Empty", domain.ProjectStatusPlanning, "u1", now, now, nil)
	assert.Equal(t, ProjectSummary{}, sc.Summarize(empty))
}

func TestSummarize_ReconstructedConfirmedFlag(t *testing.T) {
	clean := domain.ReconstructMaterial(domain.MaterialState{ID: "mat_a", Status: domain.MaterialStatusOrdered, Confirmed: true})
	dirty := domain.ReconstructMaterial(domain.MaterialState{ID: "mat_b", Status: domain.MaterialStatusOrdered, Confirmed: false})

	s := NewSummaryCalculator().SummarizeMaterials([]domain.Material{clean, dirty})
	assert.Equal(t, 2, s.OrderedMaterials)
	assert.Equal(t, 1, s.RecentChanges)
}

func TestProjectCost(t *testing.T) {
	project := domain.ReconstructProject("prj_1", "House", domain.ProjectStatusInProgress, "u1", now, now, []domain.Material{
		material(t, domain.MaterialStatusPending, 3, price(2.5), false),
		material(t, domain.MaterialStatusOrdered, 10, price(0.1), false),
		material(t, domain.MaterialStatusDelivered, 2, price(100), false),
		material(t, domain.MaterialStatusDelivered, 2, nil, false),
		material(t, domain.MaterialStatusCancelled, 50, price(9), false),
	})

	cost := NewCostCalculator().ProjectCost(project)

	assert.True(t, decimal.RequireFromString("7.5").Equal(cost.Pending), cost.Pending.String())
	assert.True(t, decimal.RequireFromString("1").Equal(cost.Ordered), cost.Ordered.String())
	assert.True(t, decimal.RequireFromString("200").Equal(cost.Delivered), cost.Delivered.String())
	assert.True(t, decimal.RequireFromString("208.5").Equal(cost.Total), cost.Total.String())
	assert.Equal(t, 1, cost.Unpriced)
}

func TestLineCost_Unpriced(t *testing.T) {
	m := material(t, domain.MaterialStatusPending, 4, nil, false)
	assert.True(t, NewCostCalculator().LineCost(m).IsZero())
}
