package contracts

import (
	"context"

	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
)

// ReadModel is the query side shared by usecases (to load aggregates) and queries.
// Lookups of unknown ids return domain.ErrProjectNotFound / domain.ErrMaterialNotFound.
type ReadModel interface {
	GetProject(ctx context.Context, projectID string) (*dto.ProjectDTO, error)

	// GetMaterial returns the material with its full history.
	GetMaterial(ctx context.Context, materialID string) (*dto.MaterialDTO, error)

	// ListMaterials returns a project's materials without history, ordered by name.
	// A non-positive limit returns all rows.
	ListMaterials(ctx context.Context, projectID string, status *string, limit, offset int) ([]*dto.MaterialDTO, error)
}
