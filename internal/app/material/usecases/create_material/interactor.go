package create_material

import (
	"context"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// Request is the application-level create-material request.
type Request struct {
	ProjectID    string
	Name         string
	Category     string
	Quantity     float64
	Unit         string
	Price        *float64
	Supplier     string
	Status       string // empty means pending
	ActingUserID string
}

// Interactor adds a material to an existing project.
type Interactor struct {
	MaterialRepo contracts.MaterialRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Clock        clock.Clock
}

func NewInteractor(materialRepo contracts.MaterialRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		MaterialRepo: materialRepo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
		Clock:        clk,
	}
}

// Execute creates the material and returns its id.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	// 1. The owning project must exist
	if _, err := it.ReadModel.GetProject(ctx, req.ProjectID); err != nil {
		return "", err
	}

	// 2. Build domain aggregate
	material, err := domain.NewMaterial(domain.MaterialInput{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Price:     req.Price,
		Supplier:  req.Supplier,
		Status:    domain.MaterialStatus(req.Status),
	}, req.ActingUserID, now)
	if err != nil {
		return "", err
	}

	// 3. Commit plan with outbox events
	plan := commitplan.NewPlan()
	plan.Add(it.MaterialRepo.InsertMut(material))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, material.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return material.ID(), nil
}
