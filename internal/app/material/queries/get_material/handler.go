package get_material

import (
	"context"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, materialID string) (*dto.MaterialDTO, error) {
	return h.readModel.GetMaterial(ctx, materialID)
}
