package confirm_material

import (
	"context"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

type Request struct {
	MaterialID   string
	ActingUserID string
}

// Interactor acknowledges all pending changes of a material.
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

// Execute confirms the material. Confirming a clean material is a no-op.
func (it *Interactor) Execute(ctx context.Context, req Request) (domain.Material, error) {
	now := it.Clock.Now()

	dtoOut, err := it.ReadModel.GetMaterial(ctx, req.MaterialID)
	if err != nil {
		return domain.Material{}, err
	}
	material, err := shared.MaterialFromDTO(dtoOut)
	if err != nil {
		return domain.Material{}, err
	}

	confirmed, err := material.Confirm(req.ActingUserID, now)
	if err != nil {
		return domain.Material{}, err
	}
	if !confirmed.Changes().HasChanges() {
		return confirmed, nil
	}

	plan := commitplan.NewPlan()
	plan.Add(it.MaterialRepo.UpdateMut(confirmed))
	plan.AddAll(it.HistoryRepo.Muts(confirmed))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, confirmed.DomainEvents(), now); err != nil {
		return domain.Material{}, err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return domain.Material{}, err
	}
	return confirmed, nil
}
