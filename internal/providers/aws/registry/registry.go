// Package registry queries ECS for the current state of a task.
package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecs-state-check/ecs-state-check/internal/api"
	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/client"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/identity"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// ClientFactory builds an ECS client for the given SDK configuration.
type ClientFactory func(cfg aws.Config) client.ECSClient

// DefaultClientFactory builds a real ECS client.
func DefaultClientFactory(cfg aws.Config) client.ECSClient {
	return client.NewECSClientAdapter(ecs.NewFromConfig(cfg))
}

// Registry fetches task details using the identity resolved for each event.
type Registry struct {
	baseCfg   aws.Config
	newClient ClientFactory
	logger    *slog.Logger
}

// New creates a Registry. A nil factory falls back to DefaultClientFactory.
func New(baseCfg aws.Config, newClient ClientFactory, log *slog.Logger) *Registry {
	if newClient == nil {
		newClient = DefaultClientFactory
	}
	return &Registry{
		baseCfg:   baseCfg,
		newClient: newClient,
		logger:    log,
	}
}

// ClientFor returns an ECS client bound to the identity's credentials and region.
func (r *Registry) ClientFor(id *identity.Context) client.ECSClient {
	return r.newClient(id.ApplyTo(r.baseCfg))
}

// DescribeTask returns the registry's view of exactly one task.
// Zero results is TASK_NOT_FOUND; more than one, or an API failure, is REGISTRY_ERROR.
func (r *Registry) DescribeTask(
	ctx context.Context,
	id *identity.Context,
	cluster, taskArn string,
) (*api.TaskDetail, error) {
	ecsClient := r.ClientFor(id)

	r.logger.Debug("calling external service", "context", map[string]string{
		"operation":     "ECS.DescribeTasks",
		"cluster":       cluster,
		"task_arn":      taskArn,
		"identity_mode": string(id.Mode),
	})

	output, err := ecsClient.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   []string{taskArn},
	})
	if err != nil {
		return nil, appErrors.ErrRegistry(fmt.Sprintf("failed to describe task %s", taskArn), err)
	}

	switch len(output.Tasks) {
	case 0:
		msg := fmt.Sprintf("task %s not found in cluster %s", taskArn, cluster)
		if reason := firstFailureReason(output.Failures); reason != "" {
			msg = fmt.Sprintf("%s: %s", msg, reason)
		}
		return nil, appErrors.ErrTaskNotFound(msg, nil)
	case 1:
	default:
		return nil, appErrors.ErrRegistry(
			fmt.Sprintf("expected 1 task for %s, got %d", taskArn, len(output.Tasks)), nil)
	}

	return toTaskDetail(&output.Tasks[0]), nil
}

func toTaskDetail(task *ecsTypes.Task) *api.TaskDetail {
	detail := &api.TaskDetail{
		HealthStatus:  string(task.HealthStatus),
		DesiredStatus: aws.ToString(task.DesiredStatus),
		StartedAt:     task.StartedAt,
	}

	if len(task.Containers) > 0 {
		container := task.Containers[0]
		detail.ContainerExitCode = container.ExitCode
		detail.ContainerReason = container.Reason
	}

	return detail
}

func firstFailureReason(failures []ecsTypes.Failure) string {
	for _, f := range failures {
		if reason := aws.ToString(f.Reason); reason != "" {
			return reason
		}
	}
	return ""
}
