package list_materials

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

// Execute lists the materials of an existing project.
func (h *Handler) Execute(ctx context.Context, projectID string, status *string, limit, offset int) ([]*dto.MaterialDTO, error) {
	if _, err := h.readModel.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return h.readModel.ListMaterials(ctx, projectID, status, limit, offset)
}
