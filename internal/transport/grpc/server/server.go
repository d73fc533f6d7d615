package server

import (
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	materialv1 "github.com/murkotick/material-tracking-service/pkg/api/material/v1"
)

// Server bundles the gRPC server with its health service.
type Server struct {
	*grpc.Server
	Health *health.Server
}

// New builds a gRPC server serving srv and the standard health service.
// A nil metrics disables request instrumentation.
func New(log *slog.Logger, metrics *Metrics, srv materialv1.MaterialServiceServer) *Server {
	interceptors := []grpc.UnaryServerInterceptor{UnaryLogging(log)}
	if metrics != nil {
		interceptors = append(interceptors, metrics.UnaryInterceptor())
	}

	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	materialv1.RegisterMaterialServiceServer(gs, srv)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus(materialv1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{Server: gs, Health: hs}
}

// Shutdown flips health to NOT_SERVING before the caller stops the server.
func (s *Server) Shutdown() {
	s.Health.Shutdown()
}

func isServerFault(err error) bool {
	switch status.Code(err) {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return true
	}
	return false
}
