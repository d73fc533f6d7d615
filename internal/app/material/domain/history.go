package domain

import "time"

// MaterialHistory is one field-level change record of a material.
// Entries are appended by Material.Update and only ever change when
// Material.Confirm stamps them.
type MaterialHistory struct {
	ID          string
	MaterialID  string
	Field       Field
	OldValue    Value
	NewValue    Value
	ChangedAt   time.Time
	ChangedBy   string
	Confirmed   bool
	ConfirmedBy string
	ConfirmedAt *time.Time
}

func (h MaterialHistory) clone() MaterialHistory {
	if h.ConfirmedAt != nil {
		t := *h.ConfirmedAt
		h.ConfirmedAt = &t
	}
	return h
}

func cloneHistory(in []MaterialHistory) []MaterialHistory {
	if in == nil {
		return nil
	}
	out := make([]MaterialHistory, len(in))
	for i, h := range in {
		out[i] = h.clone()
	}
	return out
}
