package aws

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ecs-state-check/ecs-state-check/internal/alert"
	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
	"github.com/ecs-state-check/ecs-state-check/internal/logger"
	"github.com/ecs-state-check/ecs-state-check/internal/notification"
	awsConstants "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/constants"

	"github.com/aws/aws-lambda-go/events"
)

// Processor runs one ECS task state change through the alerting pipeline.
// It holds no per-event state; every value flows through the call stack.
type Processor struct {
	resolver    IdentityResolver
	registry    TaskRegistry
	aliases     AliasLookup
	notifier    notification.Notifier
	messageOpts notification.Options
	logger      *slog.Logger
}

// NewProcessor creates a new AWS event processor.
func NewProcessor(
	resolver IdentityResolver,
	registry TaskRegistry,
	aliases AliasLookup,
	notifier notification.Notifier,
	messageOpts notification.Options,
	log *slog.Logger,
) *Processor {
	return &Processor{
		resolver:    resolver,
		registry:    registry,
		aliases:     aliases,
		notifier:    notifier,
		messageOpts: messageOpts,
		logger:      log,
	}
}

// Handle processes a raw EventBridge event. Events that are not ECS task state
// changes, or that no rule can match, complete without error.
func (p *Processor) Handle(ctx context.Context, rawEvent *json.RawMessage) error {
	_, err := p.Process(ctx, rawEvent)
	return err
}

// Process is Handle that also returns the decision taken.
// The decision is nil when the event was ignored before evaluation.
func (p *Processor) Process(ctx context.Context, rawEvent *json.RawMessage) (*alert.Decision, error) {
	reqLogger := logger.DeriveRequestLogger(ctx, p.logger)

	if rawEvent == nil {
		return nil, appErrors.ErrInvalidEvent("empty event", nil)
	}

	var cwEvent events.CloudWatchEvent
	if err := json.Unmarshal(*rawEvent, &cwEvent); err != nil {
		reqLogger.Error("failed to parse event envelope", "error", err)
		return nil, appErrors.ErrInvalidEvent("failed to parse event envelope", err)
	}

	reqLogger.Debug("processing CloudWatch event",
		"context", map[string]string{
			"source":      cwEvent.Source,
			"detail_type": cwEvent.DetailType,
			"account":     cwEvent.AccountID,
		},
	)

	if cwEvent.DetailType != awsConstants.ECSTaskStateChangeDetailType {
		reqLogger.Warn("ignoring unhandled CloudWatch event detail type",
			"context", map[string]string{
				"detail_type": cwEvent.DetailType,
				"source":      cwEvent.Source,
			},
		)
		return nil, nil
	}

	return p.handleECSTaskEvent(ctx, &cwEvent, reqLogger)
}

func (p *Processor) handleECSTaskEvent(
	ctx context.Context,
	cwEvent *events.CloudWatchEvent,
	reqLogger *slog.Logger,
) (*alert.Decision, error) {
	taskEvent, err := ParseTaskEvent(cwEvent)
	if err != nil {
		reqLogger.Error("invalid ECS task event", "error", err)
		return nil, err
	}

	reqLogger.Info("processing ECS task state change",
		"task", map[string]string{
			"account_id":     taskEvent.AccountID,
			"cluster":        taskEvent.ClusterName,
			"task_arn":       taskEvent.TaskArn,
			"last_status":    taskEvent.LastStatus,
			"desired_status": taskEvent.DesiredStatus,
			"stop_code":      taskEvent.StopCode,
			"stopped_reason": taskEvent.StoppedReason,
		})

	if !alert.IsCandidate(taskEvent) {
		reqLogger.Debug("task is not stopped, no alert possible",
			"context", map[string]string{
				"task_arn":    taskEvent.TaskArn,
				"last_status": taskEvent.LastStatus,
			},
		)
		return &alert.Decision{Event: *taskEvent}, nil
	}

	id, err := p.resolver.Resolve(ctx, taskEvent.AccountID)
	if err != nil {
		reqLogger.Error("failed to resolve identity for target account",
			"account_id", taskEvent.AccountID,
			"error", err,
		)
		return nil, err
	}

	task, err := p.registry.DescribeTask(ctx, id, taskEvent.ClusterName, taskEvent.TaskArn)
	if err != nil {
		reqLogger.Error("failed to describe task",
			"task_arn", taskEvent.TaskArn,
			"error", err,
		)
		return nil, err
	}

	decision := alert.Evaluate(taskEvent, task)
	if !decision.Matched {
		reqLogger.Info("no alert rule matched",
			"context", map[string]string{
				"task_arn":       taskEvent.TaskArn,
				"health_status":  task.HealthStatus,
				"desired_status": task.DesiredStatus,
			},
		)
		return &decision, nil
	}

	alias, err := p.aliases.Lookup(ctx, id)
	if err != nil {
		reqLogger.Error("failed to look up account alias", "account_id", id.AccountID, "error", err)
		return nil, err
	}
	decision.AccountAlias = alias

	reqLogger.Info("alert rule matched, sending notification",
		"context", map[string]string{
			"rule":          string(decision.Rule),
			"task_arn":      taskEvent.TaskArn,
			"account_alias": alias,
		},
	)

	if err = p.notifier.Notify(ctx, notification.BuildMessage(&decision, p.messageOpts)); err != nil {
		reqLogger.Error("failed to send notification", "error", err)
		return &decision, err
	}

	return &decision, nil
}
