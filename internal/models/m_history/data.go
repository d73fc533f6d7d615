package m_history

import (
	"time"

	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// Entry carries the column values of one history row.
type Entry struct {
	HistoryID   string
	MaterialID  string
	Seq         int64
	Field       string
	OldKind     string
	OldValue    string
	NewKind     string
	NewValue    string
	ChangedAt   time.Time
	ChangedBy   string
	Confirmed   bool
	ConfirmedBy string
	ConfirmedAt *time.Time
}

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(e Entry) map[string]interface{} {
	m := map[string]interface{}{
		ColHistoryID:  e.HistoryID,
		ColMaterialID: e.MaterialID,
		ColSeq:        e.Seq,
		ColField:      e.Field,
		ColOldKind:    e.OldKind,
		ColOldValue:   e.OldValue,
		ColNewKind:    e.NewKind,
		ColNewValue:   e.NewValue,
		ColChangedAt:  e.ChangedAt,
		ColChangedBy:  e.ChangedBy,
	}
	for col, v := range BuildConfirmMap(e) {
		m[col] = v
	}
	return m
}

// BuildConfirmMap returns the confirmation columns of the entry.
func BuildConfirmMap(e Entry) map[string]interface{} {
	m := map[string]interface{}{
		ColConfirmed:   e.Confirmed,
		ColConfirmedBy: nil,
		ColConfirmedAt: nil,
	}
	if e.Confirmed {
		m[ColConfirmedBy] = e.ConfirmedBy
		if e.ConfirmedAt != nil {
			m[ColConfirmedAt] = *e.ConfirmedAt
		}
	}
	return m
}

// InsertWrite builds an insert for a history row.
func InsertWrite(values map[string]interface{}) *commitplan.Write {
	return &commitplan.Write{Op: commitplan.OpInsert, Table: TableName, KeyColumn: ColHistoryID, Values: values}
}

// UpdateWrite builds an update for a history row.
func UpdateWrite(historyID string, values map[string]interface{}) *commitplan.Write {
	row := make(map[string]interface{}, len(values)+1)
	for col, v := range values {
		row[col] = v
	}
	row[ColHistoryID] = historyID
	return &commitplan.Write{Op: commitplan.OpUpdate, Table: TableName, KeyColumn: ColHistoryID, Values: row}
}
