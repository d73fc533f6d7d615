package repo

import (
	domain "github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/models/m_history"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// HistoryRepo is the write-side repository for material history rows.
type HistoryRepo struct{}

func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{}
}

func toEntry(h domain.MaterialHistory, seq int) m_history.Entry {
	oldKind, oldRaw := h.OldValue.Encode()
	newKind, newRaw := h.NewValue.Encode()
	e := m_history.Entry{
		HistoryID:   h.ID,
		MaterialID:  h.MaterialID,
		Seq:         int64(seq),
		Field:       string(h.Field),
		OldKind:     oldKind,
		OldValue:    oldRaw,
		NewKind:     newKind,
		NewValue:    newRaw,
		ChangedAt:   h.ChangedAt.UTC(),
		ChangedBy:   h.ChangedBy,
		Confirmed:   h.Confirmed,
		ConfirmedBy: h.ConfirmedBy,
	}
	if h.ConfirmedAt != nil {
		at := h.ConfirmedAt.UTC()
		e.ConfirmedAt = &at
	}
	return e
}

// Muts returns inserts for entries added since load, in history order,
// followed by confirmation updates for pre-existing entries.
func (r *HistoryRepo) Muts(m domain.Material) []*commitplan.Write {
	ct := m.Changes()
	if !ct.HasChanges() {
		return nil
	}

	history := m.History()
	var out []*commitplan.Write
	for seq, h := range history {
		if ct.EntryAdded(h.ID) {
			out = append(out, m_history.InsertWrite(m_history.BuildInsertMap(toEntry(h, seq))))
		}
	}
	for _, id := range ct.ConfirmedEntries() {
		if ct.EntryAdded(id) {
			continue
		}
		for seq, h := range history {
			if h.ID == id {
				out = append(out, m_history.UpdateWrite(id, m_history.BuildConfirmMap(toEntry(h, seq))))
				break
			}
		}
	}
	return out
}
