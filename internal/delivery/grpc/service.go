package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service exposed by CategoryServer.
// Requests and responses travel as google.protobuf.Struct, so clients need no
// generated code.
const ServiceName = "category.v1.CategoryService"

type CategoryServiceServer interface {
	CreateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCategory(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

var CategoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateCategory", Handler: unary("CreateCategory", CategoryServiceServer.CreateCategory)},
		{MethodName: "GetCategory", Handler: unary("GetCategory", CategoryServiceServer.GetCategory)},
		{MethodName: "ListCategories", Handler: unary("ListCategories", CategoryServiceServer.ListCategories)},
		{MethodName: "UpdateCategory", Handler: unary("UpdateCategory", CategoryServiceServer.UpdateCategory)},
		{MethodName: "DeleteCategory", Handler: unary("DeleteCategory", CategoryServiceServer.DeleteCategory)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "category/v1/category.proto",
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryServiceDesc, srv)
}

func unary[Resp any](method string, call func(CategoryServiceServer, context.Context, *structpb.Struct) (Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CategoryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CategoryServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CategoryClient calls CategoryService over an existing connection.
type CategoryClient struct {
	cc grpc.ClientConnInterface
}

func NewCategoryClient(cc grpc.ClientConnInterface) *CategoryClient {
	return &CategoryClient{cc: cc}
}

func (c *CategoryClient) invoke(ctx context.Context, method string, in *structpb.Struct, out any, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *CategoryClient) CreateCategory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "CreateCategory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CategoryClient) GetCategory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "GetCategory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CategoryClient) ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "ListCategories", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CategoryClient) UpdateCategory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "UpdateCategory", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CategoryClient) DeleteCategory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "DeleteCategory", in, new(emptypb.Empty), opts...)
}
