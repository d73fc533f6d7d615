package get_material

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	"github.com/murkotick/material-tracking-service/internal/app/material/utils"
)

// SpannerGetMaterialQuery reads a material and its history from Spanner.
// Both reads run in one read-only transaction so they observe the same snapshot.
type SpannerGetMaterialQuery struct {
	Client *spanner.Client
}

func NewSpannerGetMaterialQuery(client *spanner.Client) *SpannerGetMaterialQuery {
	return &SpannerGetMaterialQuery{Client: client}
}

func (q *SpannerGetMaterialQuery) GetMaterial(ctx context.Context, materialID string) (*dto.MaterialDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	out, err := q.material(ctx, tx, materialID)
	if err != nil {
		return nil, err
	}
	out.History, err = q.history(ctx, tx, materialID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *SpannerGetMaterialQuery) material(ctx context.Context, tx *spanner.ReadOnlyTransaction, materialID string) (*dto.MaterialDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT material_id, project_id, name, category, quantity, unit, price, supplier,
		             status, confirmed, created_by, created_at, updated_at
		      FROM materials
		      WHERE material_id = @id`,
		Params: map[string]interface{}{"id": materialID},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrMaterialNotFound
	}
	if err != nil {
		return nil, err
	}
	return ScanMaterial(row)
}

func (q *SpannerGetMaterialQuery) history(ctx context.Context, tx *spanner.ReadOnlyTransaction, materialID string) ([]*dto.HistoryDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT history_id, material_id, seq, field, old_kind, old_value, new_kind, new_value,
		             changed_at, changed_by, confirmed, confirmed_by, confirmed_at
		      FROM material_history
		      WHERE material_id = @id
		      ORDER BY seq ASC`,
		Params: map[string]interface{}{"id": materialID},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.HistoryDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			h           dto.HistoryDTO
			changedAt   time.Time
			confirmedBy spanner.NullString
			confirmedAt spanner.NullTime
		)
		if err := row.Columns(&h.HistoryID, &h.MaterialID, &h.Seq, &h.Field, &h.OldKind, &h.OldValue,
			&h.NewKind, &h.NewValue, &changedAt, &h.ChangedBy, &h.Confirmed, &confirmedBy, &confirmedAt); err != nil {
			return nil, err
		}
		h.ChangedAt = utils.FormatTimePtr(changedAt)
		if confirmedBy.Valid {
			by := confirmedBy.StringVal
			h.ConfirmedBy = &by
		}
		if confirmedAt.Valid {
			h.ConfirmedAt = utils.FormatTimePtr(confirmedAt.Time)
		}
		out = append(out, &h)
	}
}

// ScanMaterial decodes a materials row selected in table column order.
func ScanMaterial(row *spanner.Row) (*dto.MaterialDTO, error) {
	var (
		m                    dto.MaterialDTO
		price                spanner.NullFloat64
		supplier             spanner.NullString
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&m.MaterialID, &m.ProjectID, &m.Name, &m.Category, &m.Quantity, &m.Unit,
		&price, &supplier, &m.Status, &m.Confirmed, &m.CreatedBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if price.Valid {
		p := price.Float64
		m.Price = &p
	}
	if supplier.Valid {
		s := supplier.StringVal
		m.Supplier = &s
	}
	m.CreatedAt = utils.FormatTimePtr(createdAt)
	m.UpdatedAt = utils.FormatTimePtr(updatedAt)
	return &m, nil
}
