package domain

// ChangeTracker tracks which fields of a material were modified and which
// history entries were added or confirmed since it was loaded.
// This enables repositories to emit writes for changed columns and touched
// history rows only.
type ChangeTracker struct {
	dirtyFields map[Field]bool
	added       []string
	confirmed   []string
}

// NewChangeTracker creates a new ChangeTracker instance.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[Field]bool),
	}
}

// MarkDirty marks a field as dirty (modified).
func (ct *ChangeTracker) MarkDirty(field Field) {
	ct.dirtyFields[field] = true
}

// Dirty checks if a specific field has been marked dirty.
func (ct *ChangeTracker) Dirty(field Field) bool {
	return ct.dirtyFields[field]
}

// MarkEntryAdded records a history entry that does not exist in storage yet.
func (ct *ChangeTracker) MarkEntryAdded(id string) {
	ct.added = append(ct.added, id)
}

// MarkEntryConfirmed records a history entry whose confirmation state changed.
func (ct *ChangeTracker) MarkEntryConfirmed(id string) {
	for _, existing := range ct.confirmed {
		if existing == id {
			return
		}
	}
	ct.confirmed = append(ct.confirmed, id)
}

// EntryAdded reports whether the history entry was created in this session.
func (ct *ChangeTracker) EntryAdded(id string) bool {
	for _, existing := range ct.added {
		if existing == id {
			return true
		}
	}
	return false
}

// AddedEntries returns the ids of new history entries in insertion order.
func (ct *ChangeTracker) AddedEntries() []string {
	return append([]string(nil), ct.added...)
}

// ConfirmedEntries returns the ids of history entries confirmed in this session.
func (ct *ChangeTracker) ConfirmedEntries() []string {
	return append([]string(nil), ct.confirmed...)
}

// HasChanges returns true if any field or history entry has been touched.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0 || len(ct.added) > 0 || len(ct.confirmed) > 0
}

// Clone returns an independent copy.
func (ct *ChangeTracker) Clone() *ChangeTracker {
	if ct == nil {
		return NewChangeTracker()
	}
	out := &ChangeTracker{
		dirtyFields: make(map[Field]bool, len(ct.dirtyFields)),
		added:       append([]string(nil), ct.added...),
		confirmed:   append([]string(nil), ct.confirmed...),
	}
	for f, v := range ct.dirtyFields {
		out.dirtyFields[f] = v
	}
	return out
}
