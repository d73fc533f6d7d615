package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
)

// ReadModel satisfies contracts.ReadModel over the local SQLite schema.
type ReadModel struct {
	db *sql.DB
}

func NewReadModel(db *sql.DB) *ReadModel {
	return &ReadModel{db: db}
}

const materialColumns = `material_id, project_id, name, category, quantity, unit, price, supplier,
	status, confirmed, created_by, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func (rm *ReadModel) GetProject(ctx context.Context, projectID string) (*dto.ProjectDTO, error) {
	row := rm.db.QueryRowContext(ctx,
		`SELECT project_id, name, status, created_by, created_at, updated_at
		 FROM projects WHERE project_id = ?`, projectID)

	var (
		p                    dto.ProjectDTO
		createdAt, updatedAt string
	)
	err := row.Scan(&p.ProjectID, &p.Name, &p.Status, &p.CreatedBy, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	p.CreatedAt = &createdAt
	p.UpdatedAt = &updatedAt
	return &p, nil
}

func (rm *ReadModel) GetMaterial(ctx context.Context, materialID string) (*dto.MaterialDTO, error) {
	row := rm.db.QueryRowContext(ctx,
		`SELECT `+materialColumns+` FROM materials WHERE material_id = ?`, materialID)
	m, err := scanMaterial(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMaterialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}

	m.History, err = rm.history(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (rm *ReadModel) history(ctx context.Context, materialID string) ([]*dto.HistoryDTO, error) {
	rows, err := rm.db.QueryContext(ctx,
		`SELECT history_id, material_id, seq, field, old_kind, old_value, new_kind, new_value,
		        changed_at, changed_by, confirmed, confirmed_by, confirmed_at
		 FROM material_history WHERE material_id = ? ORDER BY seq ASC`, materialID)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*dto.HistoryDTO
	for rows.Next() {
		var (
			h           dto.HistoryDTO
			changedAt   string
			confirmedBy sql.NullString
			confirmedAt sql.NullString
		)
		if err := rows.Scan(&h.HistoryID, &h.MaterialID, &h.Seq, &h.Field, &h.OldKind, &h.OldValue,
			&h.NewKind, &h.NewValue, &changedAt, &h.ChangedBy, &h.Confirmed, &confirmedBy, &confirmedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		h.ChangedAt = &changedAt
		if confirmedBy.Valid {
			by := confirmedBy.String
			h.ConfirmedBy = &by
		}
		if confirmedAt.Valid {
			at := confirmedAt.String
			h.ConfirmedAt = &at
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

func (rm *ReadModel) ListMaterials(ctx context.Context, projectID string, status *string, limit, offset int) ([]*dto.MaterialDTO, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE project_id = ?`
	args := []interface{}{projectID}
	if status != nil {
		query += ` AND status = ?`
		args = append(args, *status)
	}
	if limit <= 0 {
		limit = -1 // no limit
	}
	if offset < 0 {
		offset = 0
	}
	query += ` ORDER BY name ASC, material_id ASC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := rm.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*dto.MaterialDTO
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMaterial(s scanner) (*dto.MaterialDTO, error) {
	var (
		m                    dto.MaterialDTO
		price                sql.NullFloat64
		supplier             sql.NullString
		createdAt, updatedAt string
	)
	if err := s.Scan(&m.MaterialID, &m.ProjectID, &m.Name, &m.Category, &m.Quantity, &m.Unit,
		&price, &supplier, &m.Status, &m.Confirmed, &m.CreatedBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if price.Valid {
		p := price.Float64
		m.Price = &p
	}
	if supplier.Valid {
		s := supplier.String
		m.Supplier = &s
	}
	m.CreatedAt = &createdAt
	m.UpdatedAt = &updatedAt
	return &m, nil
}
