package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/list_materials"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	projectQ  *get_project.SpannerGetProjectQuery
	materialQ *get_material.SpannerGetMaterialQuery
	listQ     *list_materials.SpannerListMaterialsQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		projectQ:  get_project.NewSpannerGetProjectQuery(client),
		materialQ: get_material.NewSpannerGetMaterialQuery(client),
		listQ:     list_materials.NewSpannerListMaterialsQuery(client),
	}
}

func (rm *SpannerReadModel) GetProject(ctx context.Context, projectID string) (*dto.ProjectDTO, error) {
	return rm.projectQ.GetProject(ctx, projectID)
}

func (rm *SpannerReadModel) GetMaterial(ctx context.Context, materialID string) (*dto.MaterialDTO, error) {
	return rm.materialQ.GetMaterial(ctx, materialID)
}

func (rm *SpannerReadModel) ListMaterials(ctx context.Context, projectID string, status *string, limit, offset int) ([]*dto.MaterialDTO, error) {
	return rm.listQ.ListMaterials(ctx, projectID, status, limit, offset)
}
