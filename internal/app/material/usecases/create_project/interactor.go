package create_project

import (
	"context"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// Request is the application-level create-project request.
type Request struct {
	Name         string
	Status       string // empty means planning
	ActingUserID string
}

// Interactor implements the create-project usecase following the Golden Mutation pattern.
type Interactor struct {
	ProjectRepo contracts.ProjectRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(projectRepo contracts.ProjectRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ProjectRepo: projectRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

// Execute creates a project, persists it and writes outbox events in a single commit.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	// 1. Build domain aggregate
	project, err := domain.NewProject(req.Name, domain.ProjectStatus(req.Status), req.ActingUserID, now)
	if err != nil {
		return "", err
	}

	// 2. Build commit plan
	plan := commitplan.NewPlan()
	plan.Add(it.ProjectRepo.InsertMut(project))

	// 3. Outbox events
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, project.DomainEvents(), now); err != nil {
		return "", err
	}

	// 4. Apply
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return project.ID(), nil
}
