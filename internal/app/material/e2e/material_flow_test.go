package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/change_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/list_materials"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/project_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/confirm_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/update_material"
)

func createProjectWithMaterial(ctx context.Context, t *testing.T, price *float64) (string, string) {
	t.Helper()
	projectID, err := createProjectUC.Execute(ctx, create_project.Request{Name: "E2E House", ActingUserID: "u1"})
	require.NoError(t, err)

	materialID, err := createMaterialUC.Execute(ctx, create_material.Request{
		ProjectID:    projectID,
		Name:         "Cement",
		Category:     "masonry",
		Quantity:     10,
		Unit:         "bag",
		Price:        price,
		ActingUserID: "u1",
	})
	require.NoError(t, err)
	return projectID, materialID
}

func TestMaterialCreationFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	price := 7.25
	projectID, materialID := createProjectWithMaterial(ctx, t, &price)

	m, err := get_material.NewHandler(readModel).Execute(ctx, materialID)
	require.NoError(t, err)
	assert.Equal(t, projectID, m.ProjectID)
	assert.Equal(t, "Cement", m.Name)
	assert.Equal(t, "pending", m.Status)
	assert.True(t, m.Confirmed)
	require.NotNil(t, m.Price)
	assert.Equal(t, 7.25, *m.Price)
	assert.Nil(t, m.Supplier)
	assert.Empty(t, m.History)

	events := mustFetchOutboxEvents(ctx, t, spClient, materialID)
	require.Len(t, events, 1)
	assert.Equal(t, "material.created", events[0].EventType)
	assert.Equal(t, "pending", events[0].Status)
}

func TestUpdateAndConfirmFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projectID, materialID := createProjectWithMaterial(ctx, t, nil)

	clk.Advance(time.Minute)
	_, err := updateUC.Execute(ctx, update_material.Request{
		MaterialID: materialID,
		Patch: domain.Patch{
			domain.FieldQuantity: domain.NumberValue(12),
			domain.FieldStatus:   domain.StringValue("ordered"),
		},
		ActingUserID: "u2",
	})
	require.NoError(t, err)

	cs, err := change_summary.NewHandler(readModel).Execute(ctx, materialID)
	require.NoError(t, err)
	assert.Equal(t, 2, cs.Pending)
	assert.Contains(t, cs.Summary, "quantity: 10 → 12")

	summary, err := project_summary.NewHandler(readModel).Execute(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.OrderedMaterials)
	assert.Equal(t, 1, summary.RecentChanges)

	clk.Advance(time.Minute)
	confirmed, err := confirmUC.Execute(ctx, confirm_material.Request{MaterialID: materialID, ActingUserID: "u3"})
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed())

	m, err := get_material.NewHandler(readModel).Execute(ctx, materialID)
	require.NoError(t, err)
	assert.True(t, m.Confirmed)
	require.Len(t, m.History, 2)
	for _, h := range m.History {
		assert.True(t, h.Confirmed)
		require.NotNil(t, h.ConfirmedBy)
		assert.Equal(t, "u3", *h.ConfirmedBy)
	}

	events := mustFetchOutboxEvents(ctx, t, spClient, materialID)
	require.Len(t, events, 3)
	assert.Equal(t, "material.created", events[0].EventType)
	assert.Equal(t, "material.updated", events[1].EventType)
	assert.Equal(t, "material.confirmed", events[2].EventType)
}

func TestListMaterialsPagination(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projectID, _ := createProjectWithMaterial(ctx, t, nil)
	for _, name := range []string{"Brick", "Sand"} {
		_, err := createMaterialUC.Execute(ctx, create_material.Request{
			ProjectID: projectID, Name: name, Quantity: 1, Unit: "pcs", ActingUserID: "u1",
		})
		require.NoError(t, err)
	}

	list := list_materials.NewHandler(readModel)
	page, err := list.Execute(ctx, projectID, nil, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Brick", page[0].Name)
	assert.Equal(t, "Cement", page[1].Name)

	rest, err := list.Execute(ctx, projectID, nil, 0, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "Sand", rest[0].Name)
}

func TestCreateMaterial_UnknownProject(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := createMaterialUC.Execute(ctx, create_material.Request{
		ProjectID: "prj_missing", Name: "Ghost", Quantity: 1, ActingUserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
