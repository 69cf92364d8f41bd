package grpcv1

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// IngestService is the health key reported for the ingestion path.
const IngestService = "logidash.ingest"

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter mirrors database reachability into the gRPC health service.
type HealthReporter struct {
	server  *health.Server
	db      Pinger
	timeout time.Duration
}

func NewHealthReporter(db Pinger) *HealthReporter {
	return &HealthReporter{
		server:  health.NewServer(),
		db:      db,
		timeout: 2 * time.Second,
	}
}

// Check pings the database once and updates the serving status.
func (h *HealthReporter) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.db.Ping(ctx); err != nil {
		log.Warnf("Database ping failed: %v", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(IngestService, status)
	return status
}

// Run checks every interval until ctx is done.
func (h *HealthReporter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Shutdown flips every service to NOT_SERVING ahead of GracefulStop.
func (h *HealthReporter) Shutdown() {
	h.server.Shutdown()
}
