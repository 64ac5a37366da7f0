package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "zkbounty.v1.BountyService"

// BountyServiceServer is the server API for zkbounty.v1.BountyService.
// Messages are generic structs so the service needs no generated code.
type BountyServiceServer interface {
	ReadBounty(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReadProposal(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WaitForFinalization(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(BountyServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BountyServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BountyServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var BountyServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BountyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("ReadBounty", BountyServiceServer.ReadBounty),
		unaryHandler("ReadProposal", BountyServiceServer.ReadProposal),
		unaryHandler("GetFee", BountyServiceServer.GetFee),
		unaryHandler("WaitForFinalization", BountyServiceServer.WaitForFinalization),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "zkbounty/v1/bounty.proto",
}

func RegisterBountyServiceServer(s grpc.ServiceRegistrar, srv BountyServiceServer) {
	s.RegisterService(&BountyServiceDesc, srv)
}

// BountyServiceClient calls zkbounty.v1.BountyService over conn
type BountyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBountyServiceClient(cc grpc.ClientConnInterface) *BountyServiceClient {
	return &BountyServiceClient{cc: cc}
}

func (c *BountyServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
