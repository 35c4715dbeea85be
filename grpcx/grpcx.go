/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package grpcx

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/adapter"
	"dirpx.dev/errinfo/apis"
	"dirpx.dev/errinfo/logfield"
)

// MetadataAppCode is the errdetails.ErrorInfo metadata key holding the
// rendered application code.
const MetadataAppCode = "app_code"

// ErrNoFallback is returned when an interceptor is built without a fallback.
var ErrNoFallback = errors.New("grpcx: fallback is required")

// Config configures the interceptors.
type Config[T apis.StatusCoder] struct {
	// Fallback describes errors that do not convert. Required.
	Fallback adapter.Fallback[T]

	// Logger receives one entry per converted error. Nil disables logging.
	Logger *zap.Logger

	// Messages chooses the status message when none was declared.
	Messages adapter.MessagePolicy

	// Domain is copied into errdetails.ErrorInfo.Domain.
	Domain string
}

// UnaryServerInterceptor returns an interceptor that converts handler errors
// into gRPC status errors carrying an errdetails.ErrorInfo detail.
//
// Errors that already carry a gRPC status (status.FromError succeeds) are
// returned unchanged.
func UnaryServerInterceptor[T apis.StatusCoder](cfg Config[T]) (grpc.UnaryServerInterceptor, error) {
	if cfg.Fallback == nil {
		return nil, ErrNoFallback
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, cfg.convert(info.FullMethod, err)
	}, nil
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor[T apis.StatusCoder](cfg Config[T]) (grpc.StreamServerInterceptor, error) {
	if cfg.Fallback == nil {
		return nil, ErrNoFallback
	}
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return cfg.convert(info.FullMethod, err)
		}
		return nil
	}, nil
}

// Status renders info as a gRPC status with one errdetails.ErrorInfo detail.
func (cfg Config[T]) Status(info errinfo.ErrorInfo[T]) *gstatus.Status {
	view := adapter.ToView(info, cfg.Messages)
	base := gstatus.New(info.AppCode.GRPCCode(), view.Message)
	if base.Code() == gcodes.OK {
		// An OK status cannot carry details and is not an error.
		base = gstatus.New(gcodes.Unknown, view.Message)
	}

	with, err := base.WithDetails(&errdetails.ErrorInfo{
		Reason:   view.Code,
		Domain:   cfg.Domain,
		Metadata: map[string]string{MetadataAppCode: view.Status},
	})
	if err != nil {
		return base
	}
	return with
}

func (cfg Config[T]) convert(method string, err error) error {
	if _, ok := gstatus.FromError(err); ok {
		return err
	}
	info, convErr := adapter.Resolve(err, cfg.Fallback)
	st := cfg.Status(info)

	if cfg.Logger != nil {
		level := zapcore.DebugLevel
		switch st.Code() {
		case gcodes.Internal, gcodes.Unknown, gcodes.DataLoss, gcodes.Unavailable:
			level = zapcore.ErrorLevel
		}
		if convErr != nil {
			level = zapcore.ErrorLevel
		}
		if ce := cfg.Logger.Check(level, "rpc failed"); ce != nil {
			fields := append(logfield.Info(info), zap.String("grpc.method", method))
			if convErr != nil && !errors.Is(convErr, errinfo.ErrUnclassified) {
				fields = append(fields, zap.NamedError("error.conversion", convErr))
			}
			ce.Write(fields...)
		}
	}
	return st.Err()
}

// ExtractInfo pulls the errdetails.ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}
