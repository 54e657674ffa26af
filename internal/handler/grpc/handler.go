package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/service"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/internal/validators"
	"github.com/MKhiriev/go-reward-keeper/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the reward service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&RewardServiceDesc, h)
}

// ServerOptions returns the options a *grpc.Server needs to serve h: the
// JSON codec and the tracing, logging and recovery interceptors.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(Codec{}),
		grpc.ChainUnaryInterceptor(
			h.traceIDInterceptor,
			h.loggingInterceptor,
			h.recoverInterceptor,
		),
	}
}

// CalculateReward implements [RewardServiceServer].
//
// Validation failures are returned as codes.InvalidArgument carrying the
// rule message; every other failure is returned as codes.Internal with a
// generic message. In both cases the correlation id is sent in the
// x-correlation-id trailer.
func (h *Handler) CalculateReward(ctx context.Context, req *CalculateRewardRequest) (*models.RewardResult, error) {
	result, err := h.services.RewardService.CalculateReward(ctx, req.Transactions)
	if err == nil {
		return &result, nil
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		setCorrelationID(ctx, verr.CorrelationID)
		return nil, status.Error(codes.InvalidArgument, verr.Message)
	}

	correlationID := utils.NewCorrelationID()
	logger.FromContext(ctx).Error().Err(err).Str("correlation_id", correlationID).Msg("reward calculation failed")
	setCorrelationID(ctx, correlationID)

	return nil, status.Error(codes.Internal, msgInternalError)
}

func setCorrelationID(ctx context.Context, id string) {
	// fails only outside of a server call, e.g. when invoked directly in tests
	_ = grpc.SetTrailer(ctx, metadata.Pairs(CorrelationIDKey, id))
}
