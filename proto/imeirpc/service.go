package imeirpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "imei.v1.IMEIService"

const (
	FullMethodGenerate      = "/" + ServiceName + "/Generate"
	FullMethodGenerateBatch = "/" + ServiceName + "/GenerateBatch"
	FullMethodValidate      = "/" + ServiceName + "/Validate"
	FullMethodParse         = "/" + ServiceName + "/Parse"
)

// IMEIServiceServer is the server API for imei.v1.IMEIService.
type IMEIServiceServer interface {
	Generate(context.Context, *GenerateRequest) (*GenerateResponse, error)
	GenerateBatch(context.Context, *GenerateBatchRequest) (*GenerateBatchResponse, error)
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
	Parse(context.Context, *ParseRequest) (*ParseResponse, error)
}

// UnimplementedIMEIServiceServer answers every method with codes.Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedIMEIServiceServer struct{}

func (UnimplementedIMEIServiceServer) Generate(context.Context, *GenerateRequest) (*GenerateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Generate not implemented")
}

func (UnimplementedIMEIServiceServer) GenerateBatch(context.Context, *GenerateBatchRequest) (*GenerateBatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateBatch not implemented")
}

func (UnimplementedIMEIServiceServer) Validate(context.Context, *ValidateRequest) (*ValidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Validate not implemented")
}

func (UnimplementedIMEIServiceServer) Parse(context.Context, *ParseRequest) (*ParseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Parse not implemented")
}

// RegisterIMEIServiceServer registers srv on s.
func RegisterIMEIServiceServer(s grpc.ServiceRegistrar, srv IMEIServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes imei.v1.IMEIService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IMEIServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: generateHandler},
		{MethodName: "GenerateBatch", Handler: generateBatchHandler},
		{MethodName: "Validate", Handler: validateHandler},
		{MethodName: "Parse", Handler: parseHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "imei/v1/imei.proto",
}

// unary decodes the request into a new Req and runs call through the
// interceptor chain when one is installed.
func unary[Req any](
	fullMethod string,
	call func(IMEIServiceServer, context.Context, *Req) (interface{}, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(IMEIServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(IMEIServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var (
	generateHandler = unary(FullMethodGenerate, func(s IMEIServiceServer, ctx context.Context, in *GenerateRequest) (interface{}, error) {
		return s.Generate(ctx, in)
	})
	generateBatchHandler = unary(FullMethodGenerateBatch, func(s IMEIServiceServer, ctx context.Context, in *GenerateBatchRequest) (interface{}, error) {
		return s.GenerateBatch(ctx, in)
	})
	validateHandler = unary(FullMethodValidate, func(s IMEIServiceServer, ctx context.Context, in *ValidateRequest) (interface{}, error) {
		return s.Validate(ctx, in)
	})
	parseHandler = unary(FullMethodParse, func(s IMEIServiceServer, ctx context.Context, in *ParseRequest) (interface{}, error) {
		return s.Parse(ctx, in)
	})
)
