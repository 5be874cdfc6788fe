package imeirpc

import (
	"context"

	"google.golang.org/grpc"
)

// IMEIServiceClient is the client API for imei.v1.IMEIService.
type IMEIServiceClient interface {
	Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error)
	GenerateBatch(ctx context.Context, in *GenerateBatchRequest, opts ...grpc.CallOption) (*GenerateBatchResponse, error)
	Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error)
	Parse(ctx context.Context, in *ParseRequest, opts ...grpc.CallOption) (*ParseResponse, error)
}

type imeiServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIMEIServiceClient(cc grpc.ClientConnInterface) IMEIServiceClient {
	return &imeiServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *imeiServiceClient) Generate(ctx context.Context, in *GenerateRequest, opts ...grpc.CallOption) (*GenerateResponse, error) {
	return invoke[GenerateResponse](ctx, c.cc, FullMethodGenerate, in, opts)
}

func (c *imeiServiceClient) GenerateBatch(ctx context.Context, in *GenerateBatchRequest, opts ...grpc.CallOption) (*GenerateBatchResponse, error) {
	return invoke[GenerateBatchResponse](ctx, c.cc, FullMethodGenerateBatch, in, opts)
}

func (c *imeiServiceClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	return invoke[ValidateResponse](ctx, c.cc, FullMethodValidate, in, opts)
}

func (c *imeiServiceClient) Parse(ctx context.Context, in *ParseRequest, opts ...grpc.CallOption) (*ParseResponse, error) {
	return invoke[ParseResponse](ctx, c.cc, FullMethodParse, in, opts)
}
