package repo

import (
	domain "github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/models/m_material"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// MaterialRepo is the write-side repository for material rows.
// It returns writes but never applies them.
type MaterialRepo struct{}

func NewMaterialRepo() *MaterialRepo {
	return &MaterialRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map.
func buildInsertValues(m domain.Material) map[string]interface{} {
	return m_material.BuildInsertMap(
		m.ID(),
		m.ProjectID(),
		m.Name(),
		m.Category(),
		m.Quantity(),
		m.Unit(),
		m.Price(),
		m.Supplier(),
		string(m.Status()),
		m.Confirmed(),
		m.CreatedBy(),
		m.CreatedAt().UTC(),
		m.UpdatedAt().UTC(),
	)
}

// InsertMut builds an insert for a new material.
func (r *MaterialRepo) InsertMut(m domain.Material) *commitplan.Write {
	return m_material.InsertWrite(buildInsertValues(m))
}

// buildUpdateValues returns the columns touched according to the ChangeTracker.
func buildUpdateValues(m domain.Material) map[string]interface{} {
	ct := m.Changes()
	updates := map[string]interface{}{}

	if ct.Dirty(domain.FieldName) {
		updates[m_material.ColName] = m.Name()
	}
	if ct.Dirty(domain.FieldCategory) {
		updates[m_material.ColCategory] = m.Category()
	}
	if ct.Dirty(domain.FieldQuantity) {
		updates[m_material.ColQuantity] = m.Quantity()
	}
	if ct.Dirty(domain.FieldUnit) {
		updates[m_material.ColUnit] = m.Unit()
	}
	if ct.Dirty(domain.FieldPrice) {
		if p := m.Price(); p != nil {
			updates[m_material.ColPrice] = *p
		} else {
			updates[m_material.ColPrice] = nil
		}
	}
	if ct.Dirty(domain.FieldSupplier) {
		if s := m.Supplier(); s != "" {
			updates[m_material.ColSupplier] = s
		} else {
			updates[m_material.ColSupplier] = nil
		}
	}
	if ct.Dirty(domain.FieldStatus) {
		updates[m_material.ColStatus] = string(m.Status())
	}
	if ct.Dirty(domain.FieldConfirmed) {
		updates[m_material.ColConfirmed] = m.Confirmed()
	}
	if ct.Dirty(domain.FieldUpdatedAt) {
		updates[m_material.ColUpdatedAt] = m.UpdatedAt().UTC()
	}
	return updates
}

// UpdateMut builds an update using the aggregate's ChangeTracker.
// It updates only dirty columns and returns nil when nothing changed.
func (r *MaterialRepo) UpdateMut(m domain.Material) *commitplan.Write {
	updates := buildUpdateValues(m)
	if len(updates) == 0 {
		return nil
	}
	return m_material.UpdateWrite(m.ID(), updates)
}
