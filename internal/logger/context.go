// Package logger provides structured logging utilities for ecs-state-check.
// It includes context-aware logging and log level management.
package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

type contextKey string

const (
	requestIDContextKey contextKey = "requestID"
)

// RequestIDLogField is the root-level log attribute carrying the request ID.
const RequestIDLogField = "request_id"

// GetRequestID extracts the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDContextKey).(string); ok {
		return requestID
	}

	return ""
}

// WithRequestID returns a copy of ctx carrying the given request ID.
// The CLI uses it to tag local replays.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// DeriveRequestLogger returns a logger enriched with request-scoped fields
// available in the provided context: an explicit request ID first, then the
// AWS Lambda request ID when running inside Lambda.
func DeriveRequestLogger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		return slog.Default()
	}

	if requestID := GetRequestID(ctx); requestID != "" {
		return base.With(RequestIDLogField, requestID)
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		if lc.AwsRequestID != "" {
			return base.With(RequestIDLogField, lc.AwsRequestID)
		}
	}

	return base
}

// GetDeadlineInfo returns logging attributes for context deadline information.
// Returns the absolute deadline time and remaining duration if set, or "none" if no deadline.
func GetDeadlineInfo(ctx context.Context) []any {
	deadline, ok := ctx.Deadline()
	if !ok {
		return []any{"deadline", "none", "deadline_remaining", "none"}
	}

	remaining := time.Until(deadline)
	return []any{
		"deadline", deadline.Format(time.RFC3339),
		"deadline_remaining", remaining.String(),
	}
}
