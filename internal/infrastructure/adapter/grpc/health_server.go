package grpc

import (
	"errors"
	"fmt"
	"net"
	"sync"

	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health entry reported alongside the overall server status
const ServiceName = "tuition.payment.v1.PaymentService"

// HealthServer exposes grpc.health.v1.Health for orchestrators
type HealthServer struct {
	port   int
	logger coreport.Logger

	server *grpc.Server
	health *health.Server

	mutex    sync.Mutex
	listener net.Listener
	done     chan struct{}
}

// NewHealthServer creates a health server bound to port. A zero port disables it.
func NewHealthServer(port int, logger coreport.Logger) *HealthServer {
	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	return &HealthServer{
		port:   port,
		logger: logger,
		server: server,
		health: healthServer,
	}
}

// Enabled reports whether a port was configured
func (s *HealthServer) Enabled() bool {
	return s.port > 0
}

// Start listens on the configured port and serves in the background
func (s *HealthServer) Start() error {
	if !s.Enabled() {
		s.logger.Info("gRPC health server disabled", nil)
		return nil
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	return s.Serve(lis)
}

// Serve runs the health service on an existing listener
func (s *HealthServer) Serve(lis net.Listener) error {
	s.mutex.Lock()
	if s.listener != nil {
		s.mutex.Unlock()
		return errors.New("grpc health server already started")
	}
	s.listener = lis
	s.done = make(chan struct{})
	s.mutex.Unlock()

	s.SetServing(true)

	go func() {
		defer close(s.done)
		if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			s.logger.Error("gRPC health server stopped", map[string]any{"error": err.Error()})
		}
	}()

	s.logger.Info("gRPC health server started", map[string]any{"address": lis.Addr().String()})
	return nil
}

// SetServing flips both the overall and the service status
func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Stop marks the server not serving and drains in-flight calls
func (s *HealthServer) Stop() {
	s.mutex.Lock()
	started := s.listener != nil
	done := s.done
	s.mutex.Unlock()

	if !started {
		return
	}

	s.health.Shutdown()
	s.server.GracefulStop()
	<-done
	s.logger.Info("gRPC health server stopped", nil)
}
