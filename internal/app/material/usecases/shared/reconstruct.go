package shared

import (
	"fmt"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	"github.com/murkotick/material-tracking-service/internal/app/material/utils"
)

// MaterialFromDTO rebuilds the aggregate from a read-model row.
// A stored history value that cannot be decoded is reported as an error.
func MaterialFromDTO(d *dto.MaterialDTO) (domain.Material, error) {
	if d == nil {
		return domain.Material{}, domain.ErrMaterialNotFound
	}

	history := make([]domain.MaterialHistory, 0, len(d.History))
	for _, h := range d.History {
		oldValue, err := domain.DecodeValue(h.OldKind, h.OldValue)
		if err != nil {
			return domain.Material{}, fmt.Errorf("history %s old value: %w", h.HistoryID, err)
		}
		newValue, err := domain.DecodeValue(h.NewKind, h.NewValue)
		if err != nil {
			return domain.Material{}, fmt.Errorf("history %s new value: %w", h.HistoryID, err)
		}
		entry := domain.MaterialHistory{
			ID:          h.HistoryID,
			MaterialID:  h.MaterialID,
			Field:       domain.Field(h.Field),
			OldValue:    oldValue,
			NewValue:    newValue,
			ChangedAt:   utils.TimeOrZero(utils.ParseTimePtr(h.ChangedAt)),
			ChangedBy:   h.ChangedBy,
			Confirmed:   h.Confirmed,
			ConfirmedAt: utils.ParseTimePtr(h.ConfirmedAt),
		}
		if h.ConfirmedBy != nil {
			entry.ConfirmedBy = *h.ConfirmedBy
		}
		history = append(history, entry)
	}

	supplier := ""
	if d.Supplier != nil {
		supplier = *d.Supplier
	}

	return domain.ReconstructMaterial(domain.MaterialState{
		ID:        d.MaterialID,
		ProjectID: d.ProjectID,
		Name:      d.Name,
		Category:  d.Category,
		Quantity:  d.Quantity,
		Unit:      d.Unit,
		Price:     d.Price,
		Supplier:  supplier,
		Status:    domain.MaterialStatus(d.Status),
		Confirmed: d.Confirmed,
		CreatedBy: d.CreatedBy,
		CreatedAt: utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		UpdatedAt: utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
		History:   history,
	}), nil
}

// ProjectFromDTO rebuilds a project together with its materials.
func ProjectFromDTO(p *dto.ProjectDTO, materials []*dto.MaterialDTO) (*domain.Project, error) {
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	ms := make([]domain.Material, 0, len(materials))
	for _, d := range materials {
		m, err := MaterialFromDTO(d)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return domain.ReconstructProject(
		p.ProjectID,
		p.Name,
		domain.ProjectStatus(p.Status),
		p.CreatedBy,
		utils.TimeOrZero(utils.ParseTimePtr(p.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(p.UpdatedAt)),
		ms,
	), nil
}
