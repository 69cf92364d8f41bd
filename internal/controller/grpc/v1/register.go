package grpcv1

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func RegisterServices(reporter *HealthReporter) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		healthpb.RegisterHealthServer(s, reporter.server)
		reflection.Register(s)
	}
}
