package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/weiawesome/imei-service/internal/config"
	"github.com/weiawesome/imei-service/internal/generator"
	imeigrpc "github.com/weiawesome/imei-service/internal/grpc"
	"github.com/weiawesome/imei-service/internal/handler"
	"github.com/weiawesome/imei-service/internal/metrics"
	pkglog "github.com/weiawesome/imei-service/pkg/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(cfg.Log)
	logger := pkglog.L()

	logger.Info().Msg("starting imei-service")

	gen, err := generator.NewIMEIGenerator(cfg.Generator.Seed, cfg.Generator.MaxBatch)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create imei generator")
	}
	logger.Info().Bool("seeded", gen.Seeded()).Int("max_batch", gen.MaxBatch()).Msg("imei generator initialized")

	converter, err := cfg.JSON.Converter()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid json settings")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Start gRPC server
	grpcServer, err := imeigrpc.StartGRPCServer(cfg.GRPC.Addr(), gen, m, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start grpc server")
	}

	if pkglog.ParseLevel(cfg.Log.Level) > pkglog.ParseLevel("debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler.NewRouter(handler.NewHandler(gen, converter, m, reg), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", srv.Addr).Str("json_write_as", converter.WriteOption.String()).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down imei-service")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("imei-service stopped with error")
	}
	logger.Info().Msg("imei-service stopped")
}
