package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaterialStatus represents the procurement state of a material.
type MaterialStatus string

const (
	// MaterialStatusPending indicates a material that still has to be ordered.
	MaterialStatusPending MaterialStatus = "pending"

	// MaterialStatusOrdered indicates a material that was ordered from a supplier.
	MaterialStatusOrdered MaterialStatus = "ordered"

	// MaterialStatusDelivered indicates a material that arrived on site.
	MaterialStatusDelivered MaterialStatus = "delivered"

	// MaterialStatusCancelled indicates a material that is no longer needed.
	MaterialStatusCancelled MaterialStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s MaterialStatus) Valid() bool {
	switch s {
	case MaterialStatusPending, MaterialStatusOrdered, MaterialStatusDelivered, MaterialStatusCancelled:
		return true
	}
	return false
}

// MaterialInput carries the caller-supplied attributes of a new material.
type MaterialInput struct {
	ProjectID string
	Name      string
	Category  string
	Quantity  float64
	Unit      string
	Price     *float64
	Supplier  string
	// Status defaults to pending when empty.
	Status MaterialStatus
}

// MaterialState is the persisted shape of a material, used to reconstruct it.
type MaterialState struct {
	ID        string
	ProjectID string
	Name      string
	Category  string
	Quantity  float64
	Unit      string
	Price     *float64
	Supplier  string
	Status    MaterialStatus
	Confirmed bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	History   []MaterialHistory
}

// Material is the aggregate root for a purchasable line item of a project.
// It is an immutable value: Update and Confirm return a new Material and
// leave the receiver untouched.
type Material struct {
	id        string
	projectID string
	name      string
	category  string
	quantity  float64
	unit      string
	price     *float64
	supplier  string
	status    MaterialStatus
	confirmed bool
	createdBy string
	createdAt time.Time
	updatedAt time.Time
	history   []MaterialHistory
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewMaterial creates a material with a fresh id.
// New materials start confirmed with an empty history.
func NewMaterial(in MaterialInput, actingUserID string, now time.Time) (Material, error) {
	if strings.TrimSpace(actingUserID) == "" {
		return Material{}, ErrMissingActingUser
	}
	if err := validateMaterialName(in.Name); err != nil {
		return Material{}, err
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return Material{}, err
	}
	if err := validatePrice(in.Price); err != nil {
		return Material{}, err
	}

	status := in.Status
	if status == "" {
		status = MaterialStatusPending
	}
	if !status.Valid() {
		return Material{}, fmt.Errorf("%w: %q", ErrInvalidMaterialStatus, status)
	}

	var price *float64
	if in.Price != nil {
		p := *in.Price
		price = &p
	}

	m := Material{
		id:        NewMaterialID(),
		projectID: in.ProjectID,
		name:      strings.TrimSpace(in.Name),
		category:  strings.TrimSpace(in.Category),
		quantity:  in.Quantity,
		unit:      strings.TrimSpace(in.Unit),
		price:     price,
		supplier:  strings.TrimSpace(in.Supplier),
		status:    status,
		confirmed: true,
		createdBy: actingUserID,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
	}

	m.events = append(m.events, &MaterialCreatedEvent{
		MaterialID: m.id,
		ProjectID:  m.projectID,
		Name:       m.name,
		Category:   m.category,
		Quantity:   m.quantity,
		Unit:       m.unit,
		Status:     m.status,
		CreatedBy:  actingUserID,
		CreatedAt:  now,
	})

	return m, nil
}

// ReconstructMaterial rebuilds a Material from persisted state.
// Used by usecases when loading from the read model.
func ReconstructMaterial(s MaterialState) Material {
	var price *float64
	if s.Price != nil {
		p := *s.Price
		price = &p
	}
	return Material{
		id:        s.ID,
		projectID: s.ProjectID,
		name:      s.Name,
		category:  s.Category,
		quantity:  s.Quantity,
		unit:      s.Unit,
		price:     price,
		supplier:  s.Supplier,
		status:    s.Status,
		confirmed: s.Confirmed,
		createdBy: s.CreatedBy,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
		history:   cloneHistory(s.History),
		changes:   NewChangeTracker(),
	}
}

// Getters

func (m Material) ID() string {
	return m.id
}

func (m Material) ProjectID() string {
	return m.projectID
}

func (m Material) Name() string {
	return m.name
}

func (m Material) Category() string {
	return m.category
}

func (m Material) Quantity() float64 {
	return m.quantity
}

func (m Material) Unit() string {
	return m.unit
}

// Price returns a copy of the price, nil when unpriced.
func (m Material) Price() *float64 {
	if m.price == nil {
		return nil
	}
	p := *m.price
	return &p
}

func (m Material) Supplier() string {
	return m.supplier
}

func (m Material) Status() MaterialStatus {
	return m.status
}

// Confirmed is false while the material carries unacknowledged changes.
func (m Material) Confirmed() bool {
	return m.confirmed
}

// Ordered is derived from the status.
func (m Material) Ordered() bool {
	return m.status == MaterialStatusOrdered
}

// Delivered is derived from the status.
func (m Material) Delivered() bool {
	return m.status == MaterialStatusDelivered
}

func (m Material) CreatedBy() string {
	return m.createdBy
}

func (m Material) CreatedAt() time.Time {
	return m.createdAt
}

func (m Material) UpdatedAt() time.Time {
	return m.updatedAt
}

// History returns a copy of the change log in chronological order.
func (m Material) History() []MaterialHistory {
	return cloneHistory(m.history)
}

// UnconfirmedChanges returns the history entries still awaiting confirmation.
func (m Material) UnconfirmedChanges() []MaterialHistory {
	var out []MaterialHistory
	for _, h := range m.history {
		if !h.Confirmed {
			out = append(out, h.clone())
		}
	}
	return out
}

// Changes returns a copy of the dirty state, for repositories building writes.
func (m Material) Changes() *ChangeTracker {
	return m.changes.Clone()
}

func (m Material) DomainEvents() []DomainEvent {
	return append([]DomainEvent(nil), m.events...)
}

// Value returns the current value of a mutable field.
func (m Material) Value(field Field) Value {
	switch field {
	case FieldName:
		return StringValue(m.name)
	case FieldCategory:
		return StringValue(m.category)
	case FieldQuantity:
		return NumberValue(m.quantity)
	case FieldUnit:
		return StringValue(m.unit)
	case FieldPrice:
		if m.price == nil {
			return NoValue()
		}
		return NumberValue(*m.price)
	case FieldSupplier:
		if m.supplier == "" {
			return NoValue()
		}
		return StringValue(m.supplier)
	case FieldStatus:
		return StringValue(string(m.status))
	}
	return NoValue()
}

// Business Methods

// Update applies a partial update. Every field whose new value differs from
// the current one produces an unconfirmed history entry and clears the
// confirmed flag. A patch without effective differences returns the
// material unchanged.
func (m Material) Update(patch Patch, actingUserID string, now time.Time) (Material, error) {
	if strings.TrimSpace(actingUserID) == "" {
		return Material{}, ErrMissingActingUser
	}
	normalized, err := patch.normalized()
	if err != nil {
		return Material{}, err
	}

	out := m.clone()
	var changes []FieldChange
	for _, field := range mutableFields {
		next, ok := normalized[field]
		if !ok {
			continue
		}
		prev := m.Value(field)
		if prev.Equal(next) {
			continue
		}

		out.set(field, next)
		entry := MaterialHistory{
			ID:         NewHistoryID(),
			MaterialID: m.id,
			Field:      field,
			OldValue:   prev,
			NewValue:   next,
			ChangedAt:  now,
			ChangedBy:  actingUserID,
		}
		out.history = append(out.history, entry)
		out.changes.MarkDirty(field)
		out.changes.MarkEntryAdded(entry.ID)
		changes = append(changes, FieldChange{Field: field, OldValue: prev, NewValue: next})
	}

	if len(changes) == 0 {
		return m, nil
	}

	out.confirmed = false
	out.updatedAt = now
	out.changes.MarkDirty(FieldConfirmed)
	out.changes.MarkDirty(FieldUpdatedAt)
	out.events = append(out.events, &MaterialUpdatedEvent{
		MaterialID: m.id,
		Changes:    changes,
		ChangedBy:  actingUserID,
		UpdatedAt:  now,
	})

	return out, nil
}

// Confirm acknowledges every pending change. Entries that are already
// confirmed keep their original confirmer and timestamp, so confirming
// twice is a no-op.
func (m Material) Confirm(actingUserID string, now time.Time) (Material, error) {
	if strings.TrimSpace(actingUserID) == "" {
		return Material{}, ErrMissingActingUser
	}

	out := m.clone()
	var confirmed []string
	for i := range out.history {
		if out.history[i].Confirmed {
			continue
		}
		at := now
		out.history[i].Confirmed = true
		out.history[i].ConfirmedBy = actingUserID
		out.history[i].ConfirmedAt = &at
		out.changes.MarkEntryConfirmed(out.history[i].ID)
		confirmed = append(confirmed, out.history[i].ID)
	}

	if len(confirmed) == 0 && m.confirmed {
		return m, nil
	}

	out.confirmed = true
	out.changes.MarkDirty(FieldConfirmed)
	out.events = append(out.events, &MaterialConfirmedEvent{
		MaterialID:  m.id,
		EntryIDs:    confirmed,
		ConfirmedBy: actingUserID,
		ConfirmedAt: now,
	})

	return out, nil
}

// NoUnconfirmedChanges is returned by ChangeSummary for a clean material.
const NoUnconfirmedChanges = "no unconfirmed changes"

// ChangeSummary renders the pending changes as "field: old → new" joined by ", ".
func (m Material) ChangeSummary() string {
	parts := make([]string, 0, len(m.history))
	for _, h := range m.history {
		if h.Confirmed {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s → %s", h.Field, h.OldValue, h.NewValue))
	}
	if len(parts) == 0 {
		return NoUnconfirmedChanges
	}
	return strings.Join(parts, ", ")
}

func (m Material) clone() Material {
	out := m
	out.price = m.Price()
	out.history = cloneHistory(m.history)
	out.changes = m.changes.Clone()
	out.events = append([]DomainEvent(nil), m.events...)
	return out
}

func (m *Material) set(field Field, v Value) {
	switch field {
	case FieldName:
		m.name, _ = v.AsString()
	case FieldCategory:
		m.category, _ = v.AsString()
	case FieldQuantity:
		m.quantity, _ = v.AsNumber()
	case FieldUnit:
		m.unit, _ = v.AsString()
	case FieldPrice:
		if n, ok := v.AsNumber(); ok {
			m.price = &n
		} else {
			m.price = nil
		}
	case FieldSupplier:
		m.supplier, _ = v.AsString()
	case FieldStatus:
		s, _ := v.AsString()
		m.status = MaterialStatus(s)
	}
}
