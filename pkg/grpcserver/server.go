package grpcserver

import (
	"net"
	"time"

	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"

	"google.golang.org/grpc"
)

const (
	defaultAddr            = ":50051"
	defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	Server          *grpc.Server
	listener        net.Listener
	addr            string
	serverOpts      []grpc.ServerOption
	notify          chan error
	shutdownTimeout time.Duration
}

func New(register func(*grpc.Server), opts ...Option) (*Server, error) {
	s := &Server{
		addr:            defaultAddr,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	s.listener = listener

	s.Server = grpc.NewServer(s.serverOpts...)
	register(s.Server)

	s.start()

	return s, nil
}

func (s *Server) start() {
	go func() {
		s.notify <- s.Server.Serve(s.listener)
		close(s.notify)
	}()
}

// Addr is the bound address, useful when the port was "0".
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() {
	done := make(chan any)
	go func() {
		s.Server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.Server.Stop()
	}
}
