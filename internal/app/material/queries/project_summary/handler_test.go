package project_summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	"github.com/murkotick/material-tracking-service/internal/app/material/repo"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite/sqlitetest"
)

func TestProjectSummary(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	p, err := domain.NewProject("House", domain.ProjectStatusInProgress, "u1", now)
	require.NoError(t, err)
	plan := commitplan.NewPlan()
	plan.Add(repo.NewProjectRepo().InsertMut(p))

	price := func(f float64) *float64 { return &f }
	inputs := []domain.MaterialInput{
		{Name: "Cement", Quantity: 4, Price: price(12.5), Status: domain.MaterialStatusPending},
		{Name: "Bricks", Quantity: 100, Price: price(0.35), Status: domain.MaterialStatusOrdered},
		{Name: "Tiles", Quantity: 3, Status: domain.MaterialStatusDelivered},
		{Name: "Paint", Quantity: 2, Price: price(30), Status: domain.MaterialStatusCancelled},
	}
	for _, in := range inputs {
		in.ProjectID = p.ID()
		m, err := domain.NewMaterial(in, "u1", now)
		require.NoError(t, err)
		if in.Name == "Bricks" {
			// stored with a pending change
			m, err = m.Update(domain.Patch{domain.FieldQuantity: domain.NumberValue(120)}, "u2", now)
			require.NoError(t, err)
		}
		plan.Add(repo.NewMaterialRepo().InsertMut(m))
		plan.AddAll(repo.NewHistoryRepo().Muts(m))
	}
	require.NoError(t, sqlite.NewCommitter(db).Apply(ctx, plan))

	got, err := NewHandler(sqlite.NewReadModel(db)).Execute(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, &dto.ProjectSummaryDTO{
		ProjectID:          p.ID(),
		TotalMaterials:     4,
		PendingMaterials:   1,
		OrderedMaterials:   1,
		DeliveredMaterials: 1,
		RecentChanges:      1,
		TotalCost:          "92.00",
		PendingCost:        "50.00",
		OrderedCost:        "42.00",
		DeliveredCost:      "0.00",
		UnpricedEntries:    1,
	}, got)
}

func TestProjectSummary_UnknownProject(t *testing.T) {
	db := sqlitetest.Open(t)
	_, err := NewHandler(sqlite.NewReadModel(db)).Execute(context.Background(), "prj_missing")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
