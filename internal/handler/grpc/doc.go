// Package grpc exposes the reward calculation as the gRPC service
// reward.RewardService.
//
// Messages are encoded as JSON (content-subtype "json") and reuse the
// models types of the HTTP API, so no protobuf code generation is involved.
package grpc
