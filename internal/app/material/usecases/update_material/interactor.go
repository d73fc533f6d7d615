package update_material

import (
	"context"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// Request represents a partial update. Fields absent from Patch are left as they are;
// NoValue clears price or supplier.
type Request struct {
	MaterialID   string
	Patch        domain.Patch
	ActingUserID string
}

// Interactor applies partial updates using the Golden Mutation Pattern.
type Interactor struct {
	MaterialRepo contracts.MaterialRepo
	HistoryRepo  contracts.HistoryRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Clock        clock.Clock
}

func NewInteractor(materialRepo contracts.MaterialRepo, historyRepo contracts.HistoryRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		MaterialRepo: materialRepo,
		HistoryRepo:  historyRepo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
		Clock:        clk,
	}
}

// Execute returns the updated material. An update without effective changes
// commits nothing and returns the stored material.
func (it *Interactor) Execute(ctx context.Context, req Request) (domain.Material, error) {
	now := it.Clock.Now()

	// 1. Load aggregate via read model
	dtoOut, err := it.ReadModel.GetMaterial(ctx, req.MaterialID)
	if err != nil {
		return domain.Material{}, err
	}
	material, err := shared.MaterialFromDTO(dtoOut)
	if err != nil {
		return domain.Material{}, err
	}

	// 2. Domain method
	updated, err := material.Update(req.Patch, req.ActingUserID, now)
	if err != nil {
		return domain.Material{}, err
	}
	if !updated.Changes().HasChanges() {
		return updated, nil
	}

	// 3. Collect writes: material row, history rows, outbox
	plan := commitplan.NewPlan()
	plan.Add(it.MaterialRepo.UpdateMut(updated))
	plan.AddAll(it.HistoryRepo.Muts(updated))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, updated.DomainEvents(), now); err != nil {
		return domain.Material{}, err
	}

	// 4. Apply via committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return domain.Material{}, err
	}
	return updated, nil
}
