// Package middleware provides Connect interceptors and HTTP middleware for
// the tripsplit server.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// tripScoped is implemented by request messages addressed to one trip.
type tripScoped interface {
	GetTripId() string
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, trip (when the request names one), duration and outcome.
// Invalid input is logged at warn level, server failures at error level.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := []any{"procedure", req.Spec().Procedure}
			if msg, ok := req.Any().(tripScoped); ok && msg.GetTripId() != "" {
				attrs = append(attrs, "trip_id", msg.GetTripId())
			}

			resp, err := next(ctx, req)

			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
			if err == nil {
				slog.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown {
				attrs = append(attrs, "code", connectErr.Code(), "error", connectErr.Message())
				slog.WarnContext(ctx, "RPC rejected", attrs...)
			} else {
				attrs = append(attrs, "code", connect.CodeOf(err), "error", err)
				slog.ErrorContext(ctx, "RPC failed", attrs...)
			}
			return resp, err
		}
	}
}
