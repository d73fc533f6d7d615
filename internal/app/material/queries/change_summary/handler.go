package change_summary

import (
	"context"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
)

// Result carries the rendered summary and the number of pending entries.
type Result struct {
	MaterialID string
	Summary    string
	Pending    int
}

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, materialID string) (*Result, error) {
	d, err := h.readModel.GetMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	m, err := shared.MaterialFromDTO(d)
	if err != nil {
		return nil, err
	}
	return &Result{
		MaterialID: m.ID(),
		Summary:    m.ChangeSummary(),
		Pending:    len(m.UnconfirmedChanges()),
	}, nil
}
