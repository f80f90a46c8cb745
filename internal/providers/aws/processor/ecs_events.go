package aws

import (
	"encoding/json"
	"strings"

	"github.com/ecs-state-check/ecs-state-check/internal/api"
	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseTaskEvent builds a validated TaskEvent from an ECS Task State Change envelope.
func ParseTaskEvent(cwEvent *events.CloudWatchEvent) (*api.TaskEvent, error) {
	var detail ECSTaskStateChangeEvent
	if err := json.Unmarshal(cwEvent.Detail, &detail); err != nil {
		return nil, appErrors.ErrInvalidEvent("failed to parse ECS task event", err)
	}

	taskEvent := &api.TaskEvent{
		AccountID:     strings.TrimSpace(cwEvent.AccountID),
		Region:        cwEvent.Region,
		ClusterArn:    detail.ClusterArn,
		ClusterName:   ClusterNameFromArn(detail.ClusterArn),
		TaskArn:       detail.TaskArn,
		LastStatus:    detail.LastStatus,
		DesiredStatus: detail.DesiredStatus,
		StoppingAt:    detail.StoppingAt,
		StoppedReason: detail.StoppedReason,
		StopCode:      detail.StopCode,
	}

	if err := validate.Struct(taskEvent); err != nil {
		return nil, appErrors.ErrInvalidEvent("ECS task event failed validation", err)
	}

	return taskEvent, nil
}

// ClusterNameFromArn returns the resource part after the first "/" of a cluster ARN,
// e.g. "prod" for arn:aws:ecs:eu-central-1:123456789012:cluster/prod.
func ClusterNameFromArn(clusterArn string) string {
	_, name, found := strings.Cut(clusterArn, "/")
	if !found {
		return ""
	}
	return name
}
