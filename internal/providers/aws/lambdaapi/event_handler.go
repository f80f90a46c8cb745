// Package lambdaapi provides the AWS Lambda entry point for the event processor.
package lambdaapi

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
)

// EventProcessor handles one raw EventBridge event.
type EventProcessor interface {
	Handle(ctx context.Context, rawEvent *json.RawMessage) error
}

// NewEventProcessorHandler creates a new Lambda handler for event processing.
// Errors are returned to the runtime so the invocation is marked failed; redelivery is the runtime's concern.
func NewEventProcessorHandler(processor EventProcessor) lambda.Handler {
	return lambda.NewHandler(func(ctx context.Context, rawEvent *json.RawMessage) error {
		return processor.Handle(ctx, rawEvent)
	})
}
