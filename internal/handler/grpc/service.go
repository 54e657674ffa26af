package grpc

import (
	"context"

	"github.com/MKhiriev/go-reward-keeper/models"
	"google.golang.org/grpc"
)

const (
	// RewardServiceName is the fully qualified gRPC service name.
	RewardServiceName = "reward.RewardService"

	// CalculateRewardMethod is the full method name used by clients.
	CalculateRewardMethod = "/" + RewardServiceName + "/CalculateReward"

	// CorrelationIDKey is the trailer key carrying the error correlation id.
	CorrelationIDKey = "x-correlation-id"

	// TraceIDKey is the metadata key carrying the request trace id.
	TraceIDKey = "x-trace-id"

	msgInternalError = "Internal error."
)

// CalculateRewardRequest is the message of the CalculateReward method.
type CalculateRewardRequest struct {
	Transactions []models.Transaction `json:"transactions"`
}

// RewardServiceServer is the server API of reward.RewardService.
type RewardServiceServer interface {
	CalculateReward(context.Context, *CalculateRewardRequest) (*models.RewardResult, error)
}

// RewardServiceDesc describes reward.RewardService for grpc.Server.
var RewardServiceDesc = grpc.ServiceDesc{
	ServiceName: RewardServiceName,
	HandlerType: (*RewardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CalculateReward",
			Handler:    calculateRewardHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reward",
}

func calculateRewardHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CalculateRewardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(RewardServiceServer).CalculateReward(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalculateRewardMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RewardServiceServer).CalculateReward(ctx, req.(*CalculateRewardRequest))
	}

	return interceptor(ctx, in, info, handler)
}
