package confirm_material

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/repo"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/update_material"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite/sqlitetest"
)

var t0 = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

func TestConfirmMaterial_Scenario(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	rm := sqlite.NewReadModel(db)
	committer := sqlite.NewCommitter(db)
	clk := clock.NewFake(t0)

	p, err := domain.NewProject("House", "", "u1", t0)
	require.NoError(t, err)
	m, err := domain.NewMaterial(domain.MaterialInput{ProjectID: p.ID(), Name: "Cement", Quantity: 10, Unit: "bag"}, "u1", t0)
	require.NoError(t, err)
	plan := commitplan.NewPlan()
	plan.Add(repo.NewProjectRepo().InsertMut(p))
	plan.Add(repo.NewMaterialRepo().InsertMut(m))
	require.NoError(t, committer.Apply(ctx, plan))

	update := update_material.NewInteractor(repo.NewMaterialRepo(), repo.NewHistoryRepo(), repo.NewOutboxRepo(), committer, rm, clk)
	confirm := NewInteractor(repo.NewMaterialRepo(), repo.NewHistoryRepo(), repo.NewOutboxRepo(), committer, rm, clk)

	clk.Advance(time.Hour)
	_, err = update.Execute(ctx, update_material.Request{
		MaterialID:   m.ID(),
		Patch:        domain.Patch{domain.FieldQuantity: domain.NumberValue(12)},
		ActingUserID: "u2",
	})
	require.NoError(t, err)

	clk.Advance(time.Hour)
	confirmed, err := confirm.Execute(ctx, Request{MaterialID: m.ID(), ActingUserID: "u3"})
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed())
	assert.Equal(t, domain.NoUnconfirmedChanges, confirmed.ChangeSummary())

	got, err := rm.GetMaterial(ctx, m.ID())
	require.NoError(t, err)
	assert.True(t, got.Confirmed)
	require.Len(t, got.History, 1)
	h := got.History[0]
	assert.True(t, h.Confirmed)
	require.NotNil(t, h.ConfirmedBy)
	assert.Equal(t, "u3", *h.ConfirmedBy)
	require.NotNil(t, h.ConfirmedAt)
	assert.Equal(t, "2024-02-01T11:00:00Z", *h.ConfirmedAt)

	// A second confirm is a no-op and keeps the original stamp.
	clk.Advance(time.Hour)
	_, err = confirm.Execute(ctx, Request{MaterialID: m.ID(), ActingUserID: "u4"})
	require.NoError(t, err)

	got, err = rm.GetMaterial(ctx, m.ID())
	require.NoError(t, err)
	assert.Equal(t, "u3", *got.History[0].ConfirmedBy)

	events, err := rm.OutboxEvents(ctx, m.ID())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "material.updated", events[0].EventType)
	assert.Equal(t, "material.confirmed", events[1].EventType)
}

func TestConfirmMaterial_Errors(t *testing.T) {
	db := sqlitetest.Open(t)
	it := NewInteractor(repo.NewMaterialRepo(), repo.NewHistoryRepo(), repo.NewOutboxRepo(),
		sqlite.NewCommitter(db), sqlite.NewReadModel(db), clock.NewFake(t0))

	_, err := it.Execute(context.Background(), Request{MaterialID: "mat_missing", ActingUserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}
