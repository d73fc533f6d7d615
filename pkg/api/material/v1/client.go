package materialv1

import (
	"context"

	"google.golang.org/grpc"
)

// MaterialServiceClient is the client API for the MaterialService service.
type MaterialServiceClient interface {
	CreateProject(ctx context.Context, in *CreateProjectRequest, opts ...grpc.CallOption) (*CreateProjectReply, error)
	GetProject(ctx context.Context, in *GetProjectRequest, opts ...grpc.CallOption) (*GetProjectReply, error)
	CreateMaterial(ctx context.Context, in *CreateMaterialRequest, opts ...grpc.CallOption) (*CreateMaterialReply, error)
	UpdateMaterial(ctx context.Context, in *UpdateMaterialRequest, opts ...grpc.CallOption) (*UpdateMaterialReply, error)
	ConfirmMaterial(ctx context.Context, in *ConfirmMaterialRequest, opts ...grpc.CallOption) (*ConfirmMaterialReply, error)
	GetMaterial(ctx context.Context, in *GetMaterialRequest, opts ...grpc.CallOption) (*GetMaterialReply, error)
	ListMaterials(ctx context.Context, in *ListMaterialsRequest, opts ...grpc.CallOption) (*ListMaterialsReply, error)
	GetProjectSummary(ctx context.Context, in *GetProjectSummaryRequest, opts ...grpc.CallOption) (*GetProjectSummaryReply, error)
	GetChangeSummary(ctx context.Context, in *GetChangeSummaryRequest, opts ...grpc.CallOption) (*GetChangeSummaryReply, error)
}

type materialServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMaterialServiceClient returns a client that always calls with the json codec.
func NewMaterialServiceClient(cc grpc.ClientConnInterface) MaterialServiceClient {
	return &materialServiceClient{cc: cc}
}

func invoke[Reply any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Reply, error) {
	out := new(Reply)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *materialServiceClient) CreateProject(ctx context.Context, in *CreateProjectRequest, opts ...grpc.CallOption) (*CreateProjectReply, error) {
	return invoke[CreateProjectReply](ctx, c.cc, MaterialService_CreateProject_FullMethodName, in, opts)
}

func (c *materialServiceClient) GetProject(ctx context.Context, in *GetProjectRequest, opts ...grpc.CallOption) (*GetProjectReply, error) {
	return invoke[GetProjectReply](ctx, c.cc, MaterialService_GetProject_FullMethodName, in, opts)
}

func (c *materialServiceClient) CreateMaterial(ctx context.Context, in *CreateMaterialRequest, opts ...grpc.CallOption) (*CreateMaterialReply, error) {
	return invoke[CreateMaterialReply](ctx, c.cc, MaterialService_CreateMaterial_FullMethodName, in, opts)
}

func (c *materialServiceClient) UpdateMaterial(ctx context.Context, in *UpdateMaterialRequest, opts ...grpc.CallOption) (*UpdateMaterialReply, error) {
	return invoke[UpdateMaterialReply](ctx, c.cc, MaterialService_UpdateMaterial_FullMethodName, in, opts)
}

func (c *materialServiceClient) ConfirmMaterial(ctx context.Context, in *ConfirmMaterialRequest, opts ...grpc.CallOption) (*ConfirmMaterialReply, error) {
	return invoke[ConfirmMaterialReply](ctx, c.cc, MaterialService_ConfirmMaterial_FullMethodName, in, opts)
}

func (c *materialServiceClient) GetMaterial(ctx context.Context, in *GetMaterialRequest, opts ...grpc.CallOption) (*GetMaterialReply, error) {
	return invoke[GetMaterialReply](ctx, c.cc, MaterialService_GetMaterial_FullMethodName, in, opts)
}

func (c *materialServiceClient) ListMaterials(ctx context.Context, in *ListMaterialsRequest, opts ...grpc.CallOption) (*ListMaterialsReply, error) {
	return invoke[ListMaterialsReply](ctx, c.cc, MaterialService_ListMaterials_FullMethodName, in, opts)
}

func (c *materialServiceClient) GetProjectSummary(ctx context.Context, in *GetProjectSummaryRequest, opts ...grpc.CallOption) (*GetProjectSummaryReply, error) {
	return invoke[GetProjectSummaryReply](ctx, c.cc, MaterialService_GetProjectSummary_FullMethodName, in, opts)
}

func (c *materialServiceClient) GetChangeSummary(ctx context.Context, in *GetChangeSummaryRequest, opts ...grpc.CallOption) (*GetChangeSummaryReply, error) {
	return invoke[GetChangeSummaryReply](ctx, c.cc, MaterialService_GetChangeSummary_FullMethodName, in, opts)
}
