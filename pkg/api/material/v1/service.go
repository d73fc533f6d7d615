package materialv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "materials.v1.MaterialService"

const (
	MaterialService_CreateProject_FullMethodName     = "/" + ServiceName + "/CreateProject"
	MaterialService_GetProject_FullMethodName        = "/" + ServiceName + "/GetProject"
	MaterialService_CreateMaterial_FullMethodName    = "/" + ServiceName + "/CreateMaterial"
	MaterialService_UpdateMaterial_FullMethodName    = "/" + ServiceName + "/UpdateMaterial"
	MaterialService_ConfirmMaterial_FullMethodName   = "/" + ServiceName + "/ConfirmMaterial"
	MaterialService_GetMaterial_FullMethodName       = "/" + ServiceName + "/GetMaterial"
	MaterialService_ListMaterials_FullMethodName     = "/" + ServiceName + "/ListMaterials"
	MaterialService_GetProjectSummary_FullMethodName = "/" + ServiceName + "/GetProjectSummary"
	MaterialService_GetChangeSummary_FullMethodName  = "/" + ServiceName + "/GetChangeSummary"
)

// MaterialServiceServer is the server API for the MaterialService service.
type MaterialServiceServer interface {
	CreateProject(context.Context, *CreateProjectRequest) (*CreateProjectReply, error)
	GetProject(context.Context, *GetProjectRequest) (*GetProjectReply, error)
	CreateMaterial(context.Context, *CreateMaterialRequest) (*CreateMaterialReply, error)
	UpdateMaterial(context.Context, *UpdateMaterialRequest) (*UpdateMaterialReply, error)
	ConfirmMaterial(context.Context, *ConfirmMaterialRequest) (*ConfirmMaterialReply, error)
	GetMaterial(context.Context, *GetMaterialRequest) (*GetMaterialReply, error)
	ListMaterials(context.Context, *ListMaterialsRequest) (*ListMaterialsReply, error)
	GetProjectSummary(context.Context, *GetProjectSummaryRequest) (*GetProjectSummaryReply, error)
	GetChangeSummary(context.Context, *GetChangeSummaryRequest) (*GetChangeSummaryReply, error)
}

// UnimplementedMaterialServiceServer can be embedded to have forward compatible implementations.
type UnimplementedMaterialServiceServer struct{}

func (UnimplementedMaterialServiceServer) CreateProject(context.Context, *CreateProjectRequest) (*CreateProjectReply, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProject not implemented")
}
func (UnimplementedMaterialServiceServer) GetProject(context.Context, *GetProjectRequest) (*GetProjectReply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProject not implemented")
}
func (UnimplementedMaterialServiceServer) CreateMaterial(context.Context, *CreateMaterialRequest) (*CreateMaterialReply, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMaterial not implemented")
}
func (UnimplementedMaterialServiceServer) UpdateMaterial(context.Context, *UpdateMaterialRequest) (*UpdateMaterialReply, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateMaterial not implemented")
}
func (UnimplementedMaterialServiceServer) ConfirmMaterial(context.Context, *ConfirmMaterialRequest) (*ConfirmMaterialReply, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmMaterial not implemented")
}
func (UnimplementedMaterialServiceServer) GetMaterial(context.Context, *GetMaterialRequest) (*GetMaterialReply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMaterial not implemented")
}
func (UnimplementedMaterialServiceServer) ListMaterials(context.Context, *ListMaterialsRequest) (*ListMaterialsReply, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMaterials not implemented")
}
func (UnimplementedMaterialServiceServer) GetProjectSummary(context.Context, *GetProjectSummaryRequest) (*GetProjectSummaryReply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProjectSummary not implemented")
}
func (UnimplementedMaterialServiceServer) GetChangeSummary(context.Context, *GetChangeSummaryRequest) (*GetChangeSummaryReply, error) {
	return nil, status.Error(codes.Unimplemented, "method GetChangeSummary not implemented")
}

// RegisterMaterialServiceServer registers srv with s.
func RegisterMaterialServiceServer(s grpc.ServiceRegistrar, srv MaterialServiceServer) {
	s.RegisterService(&MaterialService_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req any, Reply any](fullMethod string, call func(MaterialServiceServer, context.Context, *Req) (*Reply, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MaterialServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(MaterialServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// MaterialService_ServiceDesc is the grpc.ServiceDesc for MaterialService.
var MaterialService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MaterialServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateProject", Handler: unary(MaterialService_CreateProject_FullMethodName, MaterialServiceServer.CreateProject)},
		{MethodName: "GetProject", Handler: unary(MaterialService_GetProject_FullMethodName, MaterialServiceServer.GetProject)},
		{MethodName: "CreateMaterial", Handler: unary(MaterialService_CreateMaterial_FullMethodName, MaterialServiceServer.CreateMaterial)},
		{MethodName: "UpdateMaterial", Handler: unary(MaterialService_UpdateMaterial_FullMethodName, MaterialServiceServer.UpdateMaterial)},
		{MethodName: "ConfirmMaterial", Handler: unary(MaterialService_ConfirmMaterial_FullMethodName, MaterialServiceServer.ConfirmMaterial)},
		{MethodName: "GetMaterial", Handler: unary(MaterialService_GetMaterial_FullMethodName, MaterialServiceServer.GetMaterial)},
		{MethodName: "ListMaterials", Handler: unary(MaterialService_ListMaterials_FullMethodName, MaterialServiceServer.ListMaterials)},
		{MethodName: "GetProjectSummary", Handler: unary(MaterialService_GetProjectSummary_FullMethodName, MaterialServiceServer.GetProjectSummary)},
		{MethodName: "GetChangeSummary", Handler: unary(MaterialService_GetChangeSummary_FullMethodName, MaterialServiceServer.GetChangeSummary)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "materials/v1/material_service",
}
