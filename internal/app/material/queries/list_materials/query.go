package list_materials

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_material"
)

// SpannerListMaterialsQuery lists a project's materials with an optional status filter.
type SpannerListMaterialsQuery struct {
	Client *spanner.Client
}

func NewSpannerListMaterialsQuery(client *spanner.Client) *SpannerListMaterialsQuery {
	return &SpannerListMaterialsQuery{Client: client}
}

func (q *SpannerListMaterialsQuery) ListMaterials(ctx context.Context, projectID string, status *string, limit, offset int) ([]*dto.MaterialDTO, error) {
	baseSQL := `SELECT material_id, project_id, name, category, quantity, unit, price, supplier,
	                   status, confirmed, created_by, created_at, updated_at
		FROM materials
		WHERE project_id = @project`
	params := map[string]interface{}{"project": projectID}
	if status != nil {
		baseSQL += " AND status = @status"
		params["status"] = *status
	}
	baseSQL += " ORDER BY name ASC, material_id ASC"
	if limit > 0 {
		baseSQL += " LIMIT @limit OFFSET @offset"
		params["limit"] = int64(limit)
		params["offset"] = int64(offset)
	} else if offset > 0 {
		// Spanner requires LIMIT with OFFSET
		baseSQL += " LIMIT 9223372036854775807 OFFSET @offset"
		params["offset"] = int64(offset)
	}

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.MaterialDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		m, err := get_material.ScanMaterial(row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
}
