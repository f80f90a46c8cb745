// Package main implements the AWS Lambda event processor for ecs-state-check.
// It receives ECS Task State Change events and posts an alert when a task stopped abnormally.
package main

import (
	"context"
	"os"

	"github.com/ecs-state-check/ecs-state-check/internal/config"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	"github.com/ecs-state-check/ecs-state-check/internal/logger"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/lambdaapi"
	awsProcessor "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/processor"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg := config.MustLoadEventProcessor()
	log := logger.Initialize(constants.Production, cfg.GetLogLevel())
	ctx, cancel := context.WithTimeout(context.Background(), cfg.InitTimeout)

	processor, err := awsProcessor.Initialize(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Error("failed to initialize event processor", "error", err)
		os.Exit(1)
	}

	log.With("version", *constants.GetVersion()).Debug("starting event processor Lambda handler")
	lambda.Start(lambdaapi.NewEventProcessorHandler(processor))
}
