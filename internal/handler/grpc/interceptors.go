package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDInterceptor is the gRPC counterpart of the HTTP X-Trace-ID
// middleware: the id comes from x-trace-id metadata or is generated, is
// added to the request logger and is returned in the response header.
func (h *Handler) traceIDInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewCorrelationID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDKey, traceID))

	return next(l.WithContext(ctx), req)
}

func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	code := status.Code(err)
	log := logger.FromContext(ctx)
	event := log.Info()
	switch code {
	case codes.OK:
	case codes.InvalidArgument:
		event = log.Warn()
	default:
		event = log.Error()
	}

	event.
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) recoverInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			correlationID := utils.NewCorrelationID()
			logger.FromContext(ctx).Error().
				Str("correlation_id", correlationID).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			setCorrelationID(ctx, correlationID)
			resp, err = nil, status.Error(codes.Internal, msgInternalError)
		}
	}()

	return next(ctx, req)
}
