package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/handler"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/workers"
)

// BackgroundJobs is the part of [workers.Workers] the server drives.
type BackgroundJobs interface {
	Start(ctx context.Context)
	Stop()
}

var _ BackgroundJobs = (*workers.Workers)(nil)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	jobs       BackgroundJobs
	logger     *logger.Logger
}

// NewServer creates the transports enabled in cfg. jobs may be nil.
func NewServer(handlers *handler.Handlers, jobs BackgroundJobs, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger.WithComponent("http-server"))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger.WithComponent("grpc-server"))
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.jobs = jobs
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// stop background jobs before the transports they depend on
	if s.jobs != nil {
		s.jobs.Stop()
	}

	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run starts every transport and blocks until ctx is done and shutdown has
// finished.
func (s *server) run(ctx context.Context) {
	if s.jobs != nil {
		s.logger.Info().Msg("Starting background workers")
		s.jobs.Start(ctx)
	}

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}
