package material

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/change_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/list_materials"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/project_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/confirm_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/update_material"
	materialv1 "github.com/murkotick/material-tracking-service/pkg/api/material/v1"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	CreateProject  *create_project.Interactor
	CreateMaterial *create_material.Interactor
	UpdateMaterial *update_material.Interactor
	Confirm        *confirm_material.Interactor
}

// Queries groups read handlers.
type Queries struct {
	GetProject     *get_project.Handler
	GetMaterial    *get_material.Handler
	ListMaterials  *list_materials.Handler
	ProjectSummary *project_summary.Handler
	ChangeSummary  *change_summary.Handler
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps wire messages <-> application DTOs and delegates to CQRS handlers.
type Handler struct {
	materialv1.UnimplementedMaterialServiceServer

	commands Commands
	queries  Queries
}

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

func (h *Handler) CreateProject(ctx context.Context, req *materialv1.CreateProjectRequest) (*materialv1.CreateProjectReply, error) {
	if err := validateCreateProject(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.commands.CreateProject.Execute(ctx, mapCreateProjectRequest(req))
	if err != nil {
		return nil, mapError(err)
	}
	return &materialv1.CreateProjectReply{ProjectId: id}, nil
}

func (h *Handler) GetProject(ctx context.Context, req *materialv1.GetProjectRequest) (*materialv1.GetProjectReply, error) {
	if req == nil || req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}

	dtoOut, err := h.queries.GetProject.Execute(ctx, req.ProjectId)
	if err != nil {
		return nil, mapError(err)
	}
	return &materialv1.GetProjectReply{Project: mapProjectDTOToProto(dtoOut)}, nil
}

func (h *Handler) CreateMaterial(ctx context.Context, req *materialv1.CreateMaterialRequest) (*materialv1.CreateMaterialReply, error) {
	if err := validateCreateMaterial(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	id, err := h.commands.CreateMaterial.Execute(ctx, mapCreateMaterialRequest(req))
	if err != nil {
		return nil, mapError(err)
	}
	return &materialv1.CreateMaterialReply{MaterialId: id}, nil
}

func (h *Handler) UpdateMaterial(ctx context.Context, req *materialv1.UpdateMaterialRequest) (*materialv1.UpdateMaterialReply, error) {
	if err := validateUpdateMaterial(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	appReq, err := mapUpdateMaterialRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	m, err := h.commands.UpdateMaterial.Execute(ctx, appReq)
	if err != nil {
		return nil, mapError(err)
	}
	return &materialv1.UpdateMaterialReply{Material: mapMaterialToProto(m, true)}, nil
}

func (h *Handler) ConfirmMaterial(ctx context.Context, req *materialv1.ConfirmMaterialRequest) (*materialv1.ConfirmMaterialReply, error) {
	if err := validateConfirmMaterial(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	m, err := h.commands.Confirm.Execute(ctx, confirm_material.Request{
		MaterialID:   req.MaterialId,
		ActingUserID: req.ActingUserId,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &materialv1.ConfirmMaterialReply{Material: mapMaterialToProto(m, true)}, nil
}

func (h *Handler) GetMaterial(ctx context.Context, req *materialv1.GetMaterialRequest) (*materialv1.GetMaterialReply, error) {
	if req == nil || req.MaterialId == "" {
		return nil, status.Error(codes.InvalidArgument, "material_id is required")
	}

	dtoOut, err := h.queries.GetMaterial.Execute(ctx, req.MaterialId)
	if err != nil {
		return nil, mapError(err)
	}

	pb, err := mapMaterialDTOToProto(dtoOut)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &materialv1.GetMaterialReply{Material: pb}, nil
}

func (h *Handler) ListMaterials(ctx context.Context, req *materialv1.ListMaterialsRequest) (*materialv1.ListMaterialsReply, error) {
	if req == nil || req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}

	limit := pageSize(req.PageSize)
	offset, err := decodePageToken(req.PageToken)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid page_token")
	}

	var statusFilter *string
	if req.Status != nil && *req.Status != "" {
		s := *req.Status
		if !domain.MaterialStatus(s).Valid() {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", s)
		}
		statusFilter = &s
	}

	items, err := h.queries.ListMaterials.Execute(ctx, req.ProjectId, statusFilter, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	materials, err := mapMaterialSummariesToProto(items)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	next := ""
	if len(items) == limit {
		next = encodePageToken(offset + len(items))
	}
	return &materialv1.ListMaterialsReply{Materials: materials, NextPageToken: next}, nil
}

func (h *Handler) GetProjectSummary(ctx context.Context, req *materialv1.GetProjectSummaryRequest) (*materialv1.GetProjectSummaryReply, error) {
	if req == nil || req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}

	s, err := h.queries.ProjectSummary.Execute(ctx, req.ProjectId)
	if err != nil {
		return nil, mapError(err)
	}
	return &materialv1.GetProjectSummaryReply{Summary: mapProjectSummaryToProto(s)}, nil
}

func (h *Handler) GetChangeSummary(ctx context.Context, req *materialv1.GetChangeSummaryRequest) (*materialv1.GetChangeSummaryReply, error) {
	if req == nil || req.MaterialId == "" {
		return nil, status.Error(codes.InvalidArgument, "material_id is required")
	}

	res, err := h.queries.ChangeSummary.Execute(ctx, req.MaterialId)
	if err != nil {
		return nil, mapError(err)
	}
	return mapChangeSummaryToProto(res), nil
}
