package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-reward-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-reward-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-reward-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	return newGRPCServerOn(listener, handler, logger), nil
}

func newGRPCServerOn(listener net.Listener, handler *myGRPC.Handler, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		server:   server,
		listener: listener,
		logger:   logger,
	}
}

func (g *grpcServer) RunServer() error {
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
