package material

import (
	"fmt"
	"sort"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/change_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/update_material"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
	"github.com/murkotick/material-tracking-service/internal/app/material/utils"
	materialv1 "github.com/murkotick/material-tracking-service/pkg/api/material/v1"
)

func mapCreateProjectRequest(req *materialv1.CreateProjectRequest) create_project.Request {
	return create_project.Request{
		Name:         req.Name,
		Status:       req.Status,
		ActingUserID: req.ActingUserId,
	}
}

func mapCreateMaterialRequest(req *materialv1.CreateMaterialRequest) create_material.Request {
	return create_material.Request{
		ProjectID:    req.ProjectId,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Price:        req.Price,
		Supplier:     req.Supplier,
		Status:       req.Status,
		ActingUserID: req.ActingUserId,
	}
}

// mapUpdateMaterialRequest converts the JSON change set into a typed patch.
// Keys are visited in sorted order so the first bad key is reported deterministically.
func mapUpdateMaterialRequest(req *materialv1.UpdateMaterialRequest) (update_material.Request, error) {
	keys := make([]string, 0, len(req.Changes))
	for k := range req.Changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	patch := make(domain.Patch, len(keys))
	for _, k := range keys {
		if !domain.Field(k).IsMutable() {
			return update_material.Request{}, fmt.Errorf("changes.%s: %w", k, domain.ErrImmutableField)
		}
		v, err := domain.ValueOf(req.Changes[k])
		if err != nil {
			return update_material.Request{}, fmt.Errorf("changes.%s: %w", k, err)
		}
		patch[domain.Field(k)] = v
	}
	return update_material.Request{
		MaterialID:   req.MaterialId,
		Patch:        patch,
		ActingUserID: req.ActingUserId,
	}, nil
}

func mapProjectDTOToProto(in *dto.ProjectDTO) *materialv1.Project {
	out := &materialv1.Project{
		Id:        in.ProjectID,
		Name:      in.Name,
		Status:    in.Status,
		CreatedBy: in.CreatedBy,
	}
	if in.CreatedAt != nil {
		out.CreatedAt = *in.CreatedAt
	}
	if in.UpdatedAt != nil {
		out.UpdatedAt = *in.UpdatedAt
	}
	return out
}

func mapMaterialDTOToProto(in *dto.MaterialDTO) (*materialv1.Material, error) {
	m, err := shared.MaterialFromDTO(in)
	if err != nil {
		return nil, err
	}
	return mapMaterialToProto(m, true), nil
}

func mapMaterialToProto(m domain.Material, withHistory bool) *materialv1.Material {
	out := &materialv1.Material{
		Id:        m.ID(),
		ProjectId: m.ProjectID(),
		Name:      m.Name(),
		Category:  m.Category(),
		Quantity:  m.Quantity(),
		Unit:      m.Unit(),
		Price:     m.Price(),
		Status:    string(m.Status()),
		Ordered:   m.Ordered(),
		Delivered: m.Delivered(),
		Confirmed: m.Confirmed(),
		CreatedBy: m.CreatedBy(),
		CreatedAt: utils.FormatTime(m.CreatedAt()),
		UpdatedAt: utils.FormatTime(m.UpdatedAt()),
	}
	if s := m.Supplier(); s != "" {
		out.Supplier = &s
	}
	if !withHistory {
		return out
	}

	history := m.History()
	out.History = make([]*materialv1.HistoryEntry, 0, len(history))
	for _, h := range history {
		e := &materialv1.HistoryEntry{
			Id:          h.ID,
			Field:       string(h.Field),
			OldValue:    h.OldValue.Interface(),
			NewValue:    h.NewValue.Interface(),
			ChangedAt:   utils.FormatTime(h.ChangedAt),
			ChangedBy:   h.ChangedBy,
			Confirmed:   h.Confirmed,
			ConfirmedBy: h.ConfirmedBy,
		}
		if h.ConfirmedAt != nil {
			e.ConfirmedAt = utils.FormatTime(*h.ConfirmedAt)
		}
		out.History = append(out.History, e)
	}
	return out
}

func mapMaterialSummariesToProto(items []*dto.MaterialDTO) ([]*materialv1.Material, error) {
	out := make([]*materialv1.Material, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		m, err := shared.MaterialFromDTO(it)
		if err != nil {
			return nil, err
		}
		out = append(out, mapMaterialToProto(m, false))
	}
	return out, nil
}

func mapProjectSummaryToProto(in *dto.ProjectSummaryDTO) *materialv1.ProjectSummary {
	return &materialv1.ProjectSummary{
		ProjectId:          in.ProjectID,
		TotalMaterials:     int32(in.TotalMaterials),
		PendingMaterials:   int32(in.PendingMaterials),
		OrderedMaterials:   int32(in.OrderedMaterials),
		DeliveredMaterials: int32(in.DeliveredMaterials),
		RecentChanges:      int32(in.RecentChanges),
		TotalCost:          in.TotalCost,
		PendingCost:        in.PendingCost,
		OrderedCost:        in.OrderedCost,
		DeliveredCost:      in.DeliveredCost,
		UnpricedMaterials:  int32(in.UnpricedEntries),
	}
}

func mapChangeSummaryToProto(in *change_summary.Result) *materialv1.GetChangeSummaryReply {
	return &materialv1.GetChangeSummaryReply{
		MaterialId:     in.MaterialID,
		Summary:        in.Summary,
		PendingChanges: int32(in.Pending),
	}
}
