// Package aws provides the AWS event processing pipeline for ECS task state changes.
package aws

import (
	"context"

	"github.com/ecs-state-check/ecs-state-check/internal/api"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/identity"
)

// ECSTaskStateChangeEvent represents the detail structure of an ECS Task State Change event.
// Only the fields the alerting pipeline renders or decides on are decoded.
type ECSTaskStateChangeEvent struct {
	ClusterArn    string `json:"clusterArn"`
	TaskArn       string `json:"taskArn"`
	LastStatus    string `json:"lastStatus"`
	DesiredStatus string `json:"desiredStatus"`
	StoppingAt    string `json:"stoppingAt"`
	StoppedReason string `json:"stoppedReason"`
	StopCode      string `json:"stopCode"`
}

// IdentityResolver picks the identity used to query the account that owns a task.
type IdentityResolver interface {
	Resolve(ctx context.Context, targetAccountID string) (*identity.Context, error)
}

// TaskRegistry returns the current view of a task.
type TaskRegistry interface {
	DescribeTask(ctx context.Context, id *identity.Context, cluster, taskArn string) (*api.TaskDetail, error)
}

// AliasLookup returns a human-readable name for the identity's account.
type AliasLookup interface {
	Lookup(ctx context.Context, id *identity.Context) (string, error)
}
