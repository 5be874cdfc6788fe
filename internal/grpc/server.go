package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/weiawesome/imei-service/internal/audit"
	"github.com/weiawesome/imei-service/internal/generator"
	"github.com/weiawesome/imei-service/internal/metrics"
	pkglog "github.com/weiawesome/imei-service/pkg/log"
	pb "github.com/weiawesome/imei-service/proto/imeirpc"
)

type imeiServer struct {
	pb.UnimplementedIMEIServiceServer
	gen     generator.Generator
	metrics *metrics.Metrics
}

// NewServer creates a grpc.Server with the IMEI service and the request
// logging interceptor registered.
func NewServer(gen generator.Generator, m *metrics.Metrics, logger zerolog.Logger) *grpc.Server {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(pkglog.UnaryServerInterceptor(logger)),
	)
	pb.RegisterIMEIServiceServer(s, &imeiServer{
		gen:     gen,
		metrics: m,
	})
	return s
}

func (s *imeiServer) observe(op string, start time.Time) {
	s.metrics.ObserveDuration(metrics.TransportGRPC, op, time.Since(start))
}

func (s *imeiServer) Generate(ctx context.Context, _ *pb.GenerateRequest) (*pb.GenerateResponse, error) {
	defer s.observe("generate", time.Now())

	id, err := s.gen.Generate()
	if err != nil {
		l := pkglog.Ctx(ctx)
		l.Error().Err(err).Msg("failed to generate IMEI")
		return nil, status.Error(codes.Internal, "failed to generate IMEI")
	}
	text := id.String()
	s.metrics.AddGenerated(metrics.TransportGRPC, 1)
	audit.Generated(ctx, metrics.TransportGRPC, text)

	return &pb.GenerateResponse{Imei: text}, nil
}

func (s *imeiServer) GenerateBatch(ctx context.Context, req *pb.GenerateBatchRequest) (*pb.GenerateBatchResponse, error) {
	defer s.observe("generate_batch", time.Now())

	ids, err := s.gen.GenerateBatch(int(req.GetCount()))
	if errors.Is(err, generator.ErrInvalidCount) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		l := pkglog.Ctx(ctx)
		l.Error().Err(err).Int32(pkglog.FieldIMEICount, req.GetCount()).Msg("failed to generate IMEI batch")
		return nil, status.Error(codes.Internal, "failed to generate IMEI batch")
	}
	s.metrics.AddGenerated(metrics.TransportGRPC, len(ids))
	audit.BatchGenerated(ctx, metrics.TransportGRPC, len(ids))

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return &pb.GenerateBatchResponse{Imeis: out}, nil
}

func (s *imeiServer) Validate(ctx context.Context, req *pb.ValidateRequest) (*pb.ValidateResponse, error) {
	defer s.observe("validate", time.Now())

	valid, reason := s.gen.Validate(req.GetImei())
	s.metrics.IncrementValidation(metrics.TransportGRPC, valid)
	if !valid {
		l := pkglog.Ctx(ctx)
		l.Debug().Str(pkglog.FieldReason, reason).Msg("IMEI rejected")
	}

	return &pb.ValidateResponse{
		Valid:  valid,
		Reason: reason,
	}, nil
}

func (s *imeiServer) Parse(ctx context.Context, req *pb.ParseRequest) (*pb.ParseResponse, error) {
	defer s.observe("parse", time.Now())

	result, err := s.gen.Parse(req.GetImei())
	if err != nil {
		s.metrics.IncrementParseFailure(metrics.TransportGRPC)
		return &pb.ParseResponse{
			Valid:        false,
			ErrorMessage: err.Error(),
		}, nil
	}

	return &pb.ParseResponse{
		Valid:      true,
		Imei:       result.Value.String(),
		Tac:        int32(result.TAC),
		Fac:        int32(result.FAC),
		Snr:        int32(result.SNR),
		CheckDigit: int32(result.CheckDigit),
	}, nil
}

// StartGRPCServer creates and starts the gRPC server in a background goroutine.
func StartGRPCServer(addr string, gen generator.Generator, m *metrics.Metrics, logger zerolog.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewServer(gen, m, logger)

	go func() {
		logger.Info().Str("addr", addr).Msg("grpc server listening")
		if err := s.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server error")
		}
	}()

	return s, nil
}
