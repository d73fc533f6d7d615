package get_project

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	"github.com/murkotick/material-tracking-service/internal/app/material/utils"
)

// SpannerGetProjectQuery reads a project row from Spanner directly.
type SpannerGetProjectQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProjectQuery(client *spanner.Client) *SpannerGetProjectQuery {
	return &SpannerGetProjectQuery{Client: client}
}

func (q *SpannerGetProjectQuery) GetProject(ctx context.Context, projectID string) (*dto.ProjectDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT project_id, name, status, created_by, created_at, updated_at
		      FROM projects
		      WHERE project_id = @id`,
		Params: map[string]interface{}{"id": projectID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		id, name, status, createdBy string
		createdAt, updatedAt        time.Time
	)
	if err := row.Columns(&id, &name, &status, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &dto.ProjectDTO{
		ProjectID: id,
		Name:      name,
		Status:    status,
		CreatedBy: createdBy,
		CreatedAt: utils.FormatTimePtr(createdAt),
		UpdatedAt: utils.FormatTimePtr(updatedAt),
	}, nil
}
