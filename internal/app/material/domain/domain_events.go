package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProjectCreatedEvent is raised when a new project is created.
type ProjectCreatedEvent struct {
	ProjectID string
	Name      string
	Status    ProjectStatus
	CreatedAt time.Time
}

func (e *ProjectCreatedEvent) EventType() string {
	return "project.created"
}

func (e *ProjectCreatedEvent) AggregateID() string {
	return e.ProjectID
}

func (e *ProjectCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// MaterialCreatedEvent is raised when a new material is added to a project.
type MaterialCreatedEvent struct {
	MaterialID string
	ProjectID  string
	Name       string
	Category   string
	Quantity   float64
	Unit       string
	Status     MaterialStatus
	CreatedBy  string
	CreatedAt  time.Time
}

func (e *MaterialCreatedEvent) EventType() string {
	return "material.created"
}

func (e *MaterialCreatedEvent) AggregateID() string {
	return e.MaterialID
}

func (e *MaterialCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// FieldChange is one old -> new pair carried by MaterialUpdatedEvent.
type FieldChange struct {
	Field    Field
	OldValue Value
	NewValue Value
}

// MaterialUpdatedEvent is raised when an update changed at least one field.
type MaterialUpdatedEvent struct {
	MaterialID string
	Changes    []FieldChange
	ChangedBy  string
	UpdatedAt  time.Time
}

func (e *MaterialUpdatedEvent) EventType() string {
	return "material.updated"
}

func (e *MaterialUpdatedEvent) AggregateID() string {
	return e.MaterialID
}

func (e *MaterialUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// MaterialConfirmedEvent is raised when pending changes are acknowledged.
type MaterialConfirmedEvent struct {
	MaterialID  string
	EntryIDs    []string
	ConfirmedBy string
	ConfirmedAt time.Time
}

func (e *MaterialConfirmedEvent) EventType() string {
	return "material.confirmed"
}

func (e *MaterialConfirmedEvent) AggregateID() string {
	return e.MaterialID
}

func (e *MaterialConfirmedEvent) OccurredAt() time.Time {
	return e.ConfirmedAt
}
