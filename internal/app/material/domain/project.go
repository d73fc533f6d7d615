package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProjectStatus represents the lifecycle state of a construction project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project owns a collection of materials. The summary services only read it.
type Project struct {
	id        string
	name      string
	status    ProjectStatus
	createdBy string
	createdAt time.Time
	updatedAt time.Time
	materials []Material
	events    []DomainEvent
}

// NewProject creates a project in planning status unless another status is given.
func NewProject(name string, status ProjectStatus, actingUserID string, now time.Time) (*Project, error) {
	if strings.TrimSpace(actingUserID) == "" {
		return nil, ErrMissingActingUser
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyProjectName
	}
	if status == "" {
		status = ProjectStatusPlanning
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProjectStatus, status)
	}

	p := &Project{
		id:        NewProjectID(),
		name:      strings.TrimSpace(name),
		status:    status,
		createdBy: actingUserID,
		createdAt: now,
		updatedAt: now,
	}
	p.events = append(p.events, &ProjectCreatedEvent{
		ProjectID: p.id,
		Name:      p.name,
		Status:    p.status,
		CreatedAt: now,
	})
	return p, nil
}

// ReconstructProject rebuilds a Project from persisted state.
func ReconstructProject(id, name string, status ProjectStatus, createdBy string, createdAt, updatedAt time.Time, materials []Material) *Project {
	return &Project{
		id:        id,
		name:      name,
		status:    status,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
		materials: append([]Material(nil), materials...),
	}
}

func (p *Project) ID() string {
	return p.id
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Status() ProjectStatus {
	return p.status
}

func (p *Project) CreatedBy() string {
	return p.createdBy
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

// Materials returns the project's materials. A nil project has none.
func (p *Project) Materials() []Material {
	if p == nil {
		return nil
	}
	return append([]Material(nil), p.materials...)
}

func (p *Project) DomainEvents() []DomainEvent {
	return p.events
}
