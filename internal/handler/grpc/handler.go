package grpc

import (
	grpcgo "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
)

// Service names reported through the gRPC health protocol in addition to the
// overall server status ("").
const (
	DirectoryServiceName = "vault.Directory"
	StorageServiceName   = "vault.Storage"
)

// Handler is the root gRPC transport handler.
//
// The vault exposes its data plane over HTTP only; the gRPC listener carries
// the standard health protocol so orchestrators can probe the process.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose services start in the SERVING state.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	for _, name := range []string{"", DirectoryServiceName, StorageServiceName} {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to a gRPC server.
func (h *Handler) Register(registrar grpcgo.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// Shutdown marks every service NOT_SERVING. Watchers are notified before the
// server stops accepting calls.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health reporting NOT_SERVING")
	h.health.Shutdown()
}
