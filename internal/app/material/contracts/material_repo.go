package contracts

import (
	domain "github.com/murkotick/material-tracking-service/internal/app/material/domain"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// MaterialRepo is the write-side repository interface for materials.
// Methods return writes; they do not apply them.
type MaterialRepo interface {
	// InsertMut returns a write that inserts the material row.
	InsertMut(m domain.Material) *commitplan.Write

	// UpdateMut returns a write that updates the material according to its ChangeTracker (or nil).
	UpdateMut(m domain.Material) *commitplan.Write
}

// HistoryRepo is the write-side repository interface for material history rows.
type HistoryRepo interface {
	// Muts returns inserts for entries added and updates for entries confirmed
	// since the material was loaded.
	Muts(m domain.Material) []*commitplan.Write
}

// ProjectRepo is the write-side repository interface for projects.
type ProjectRepo interface {
	InsertMut(p *domain.Project) *commitplan.Write
}
