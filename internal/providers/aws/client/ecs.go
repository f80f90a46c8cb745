// Package client wraps the AWS SDK clients behind narrow interfaces so the
// provider packages can be tested with mock implementations.
package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// ECSClient defines the interface for ECS operations used across AWS provider packages.
// This interface makes the code easier to test by allowing mock implementations.
type ECSClient interface {
	DescribeTasks(
		ctx context.Context,
		params *ecs.DescribeTasksInput,
		optFns ...func(*ecs.Options),
	) (*ecs.DescribeTasksOutput, error)
}

// ECSClientAdapter wraps the AWS SDK ECS client to implement ECSClient interface.
// This allows us to use the real AWS client in production while maintaining testability.
type ECSClientAdapter struct {
	client *ecs.Client
}

// NewECSClientAdapter creates a new adapter wrapping the AWS SDK ECS client.
func NewECSClientAdapter(client *ecs.Client) *ECSClientAdapter {
	return &ECSClientAdapter{client: client}
}

// DescribeTasks wraps the AWS SDK DescribeTasks operation.
func (a *ECSClientAdapter) DescribeTasks(
	ctx context.Context,
	params *ecs.DescribeTasksInput,
	optFns ...func(*ecs.Options),
) (*ecs.DescribeTasksOutput, error) {
	return a.client.DescribeTasks(ctx, params, optFns...)
}
