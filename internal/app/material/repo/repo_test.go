package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	domain "github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/models/m_history"
	"github.com/murkotick/material-tracking-service/internal/models/m_material"
	"github.com/murkotick/material-tracking-service/internal/models/m_outbox"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newMaterial(t *testing.T, price *float64, supplier string) domain.Material {
	t.Helper()
	m, err := domain.NewMaterial(domain.MaterialInput{
		ProjectID: "prj_1",
		Name:      "Cement",
		Category:  "masonry",
		Quantity:  10,
		Unit:      "bag",
		Price:     price,
		Supplier:  supplier,
	}, "u1", t0)
	require.NoError(t, err)
	return m
}

// TestInsertMut_OptionalColumnsAreNull verifies absent price/supplier map to NULL.
func TestInsertMut_OptionalColumnsAreNull(t *testing.T) {
	m := newMaterial(t, nil, "")

	values := buildInsertValues(m)

	v, ok := values[m_material.ColPrice]
	require.True(t, ok, "expected key %s in insert map", m_material.ColPrice)
	assert.Nil(t, v)
	v, ok = values[m_material.ColSupplier]
	require.True(t, ok, "expected key %s in insert map", m_material.ColSupplier)
	assert.Nil(t, v)

	assert.Equal(t, true, values[m_material.ColConfirmed])
	assert.Equal(t, "pending", values[m_material.ColStatus])

	w := NewMaterialRepo().InsertMut(m)
	require.NotNil(t, w)
	assert.Equal(t, commitplan.OpInsert, w.Op)
	assert.Equal(t, m.ID(), w.Key())
}

func TestInsertMut_WithPriceAndSupplier(t *testing.T) {
	p := 4.5
	m := newMaterial(t, &p, "BuildCo")

	values := buildInsertValues(m)
	assert.Equal(t, 4.5, values[m_material.ColPrice])
	assert.Equal(t, "BuildCo", values[m_material.ColSupplier])
}

// TestUpdateMut_OnlyDirtyColumns verifies UpdateMut writes only the columns the tracker marked.
func TestUpdateMut_OnlyDirtyColumns(t *testing.T) {
	r := NewMaterialRepo()
	m := newMaterial(t, nil, "")
	loaded := domain.ReconstructMaterial(domain.MaterialState{
		ID: m.ID(), ProjectID: m.ProjectID(), Name: m.Name(), Category: m.Category(),
		Quantity: m.Quantity(), Unit: m.Unit(), Status: m.Status(), Confirmed: true,
		CreatedBy: "u1", CreatedAt: t0, UpdatedAt: t0,
	})

	assert.Nil(t, r.UpdateMut(loaded), "clean material must not produce a write")

	updated, err := loaded.Update(domain.Patch{domain.FieldQuantity: domain.NumberValue(12)}, "u2", t0.Add(time.Hour))
	require.NoError(t, err)

	w := r.UpdateMut(updated)
	require.NotNil(t, w)
	assert.Equal(t, commitplan.OpUpdate, w.Op)
	assert.Equal(t, map[string]interface{}{
		m_material.ColMaterialID: m.ID(),
		m_material.ColQuantity:   12.0,
		m_material.ColConfirmed:  false,
		m_material.ColUpdatedAt:  t0.Add(time.Hour),
	}, w.Values)
}

func TestUpdateMut_ClearedPriceIsNull(t *testing.T) {
	p := 3.0
	m := newMaterial(t, &p, "BuildCo")
	loaded := domain.ReconstructMaterial(domain.MaterialState{
		ID: m.ID(), Name: m.Name(), Quantity: m.Quantity(), Price: &p, Supplier: "BuildCo",
		Status: m.Status(), Confirmed: true,
	})

	updated, err := loaded.Update(domain.Patch{
		domain.FieldPrice:    domain.NoValue(),
		domain.FieldSupplier: domain.NoValue(),
	}, "u2", t0)
	require.NoError(t, err)

	w := NewMaterialRepo().UpdateMut(updated)
	require.NotNil(t, w)
	v, ok := w.Values[m_material.ColPrice]
	require.True(t, ok)
	assert.Nil(t, v)
	v, ok = w.Values[m_material.ColSupplier]
	require.True(t, ok)
	assert.Nil(t, v)
}

// TestHistoryMuts_UpdateThenConfirm verifies added entries are inserted once with their
// position as seq, and confirmations of stored entries become updates.
func TestHistoryMuts_UpdateThenConfirm(t *testing.T) {
	r := NewHistoryRepo()
	loaded := domain.ReconstructMaterial(domain.MaterialState{
		ID: "mat_1", Name: "Cement", Quantity: 10, Unit: "bag",
		Status: domain.MaterialStatusPending, Confirmed: true,
	})

	updated, err := loaded.Update(domain.Patch{
		domain.FieldQuantity: domain.NumberValue(12),
		domain.FieldUnit:     domain.StringValue("pallet"),
	}, "u2", t0)
	require.NoError(t, err)

	ws := r.Muts(updated)
	require.Len(t, ws, 2)
	for i, w := range ws {
		assert.Equal(t, commitplan.OpInsert, w.Op)
		assert.Equal(t, m_history.TableName, w.Table)
		assert.Equal(t, int64(i), w.Values[m_history.ColSeq])
		assert.Equal(t, false, w.Values[m_history.ColConfirmed])
		assert.Nil(t, w.Values[m_history.ColConfirmedAt])
	}
	assert.Equal(t, "quantity", ws[0].Values[m_history.ColField])
	assert.Equal(t, "number", ws[0].Values[m_history.ColOldKind])
	assert.Equal(t, "10", ws[0].Values[m_history.ColOldValue])
	assert.Equal(t, "12", ws[0].Values[m_history.ColNewValue])
	assert.Equal(t, "unit", ws[1].Values[m_history.ColField])

	// Persisted, then confirmed in a later request.
	stored := domain.ReconstructMaterial(domain.MaterialState{
		ID: "mat_1", Name: "Cement", Quantity: 12, Unit: "pallet",
		Status: domain.MaterialStatusPending, Confirmed: false, History: updated.History(),
	})
	confirmed, err := stored.Confirm("u3", t0.Add(time.Minute))
	require.NoError(t, err)

	ws = r.Muts(confirmed)
	require.Len(t, ws, 2)
	for _, w := range ws {
		assert.Equal(t, commitplan.OpUpdate, w.Op)
		assert.Equal(t, true, w.Values[m_history.ColConfirmed])
		assert.Equal(t, "u3", w.Values[m_history.ColConfirmedBy])
		assert.Equal(t, t0.Add(time.Minute), w.Values[m_history.ColConfirmedAt])
		_, hasField := w.Values[m_history.ColField]
		assert.False(t, hasField, "confirm update must not rewrite the change itself")
	}
}

func TestHistoryMuts_UpdateAndConfirmInOneStep(t *testing.T) {
	loaded := domain.ReconstructMaterial(domain.MaterialState{
		ID: "mat_1", Name: "Cement", Quantity: 10, Status: domain.MaterialStatusPending, Confirmed: true,
	})
	updated, err := loaded.Update(domain.Patch{domain.FieldQuantity: domain.NumberValue(1)}, "u2", t0)
	require.NoError(t, err)
	confirmed, err := updated.Confirm("u2", t0)
	require.NoError(t, err)

	ws := NewHistoryRepo().Muts(confirmed)
	require.Len(t, ws, 1)
	assert.Equal(t, commitplan.OpInsert, ws[0].Op)
	assert.Equal(t, true, ws[0].Values[m_history.ColConfirmed])
}

func TestHistoryMuts_CleanMaterial(t *testing.T) {
	assert.Empty(t, NewHistoryRepo().Muts(newMaterial(t, nil, "")))
}

func TestOutboxInsertMut(t *testing.T) {
	r := NewOutboxRepo()
	assert.Nil(t, r.InsertMut(nil))

	w := r.InsertMut(&contracts.OutboxEvent{
		EventID: "ev1", EventType: "material.created", AggregateID: "mat_1",
		PayloadJSON: `{}`, Status: "pending", CreatedAtUTC: t0,
	})
	require.NotNil(t, w)
	assert.Equal(t, m_outbox.TableName, w.Table)
	assert.Equal(t, "ev1", w.Key())
	assert.Nil(t, w.Values[m_outbox.ColProcessedAt])
}

func TestProjectInsertMut(t *testing.T) {
	p, err := domain.NewProject("House", "", "u1", t0)
	require.NoError(t, err)

	w := NewProjectRepo().InsertMut(p)
	require.NotNil(t, w)
	assert.Equal(t, p.ID(), w.Key())
	assert.Equal(t, "planning", w.Values["status"])
	assert.Nil(t, NewProjectRepo().InsertMut(nil))
}
