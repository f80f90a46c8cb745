package client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSClient defines the interface for STS operations used by the credential resolver.
type STSClient interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
	AssumeRole(
		ctx context.Context,
		params *sts.AssumeRoleInput,
		optFns ...func(*sts.Options),
	) (*sts.AssumeRoleOutput, error)
}

// STSClientAdapter wraps the AWS SDK STS client to implement STSClient interface.
type STSClientAdapter struct {
	client *sts.Client
}

// NewSTSClientAdapter creates a new adapter wrapping the AWS SDK STS client.
func NewSTSClientAdapter(client *sts.Client) *STSClientAdapter {
	return &STSClientAdapter{client: client}
}

// GetCallerIdentity wraps the AWS SDK GetCallerIdentity operation.
func (a *STSClientAdapter) GetCallerIdentity(
	ctx context.Context,
	params *sts.GetCallerIdentityInput,
	optFns ...func(*sts.Options),
) (*sts.GetCallerIdentityOutput, error) {
	return a.client.GetCallerIdentity(ctx, params, optFns...)
}

// AssumeRole wraps the AWS SDK AssumeRole operation.
func (a *STSClientAdapter) AssumeRole(
	ctx context.Context,
	params *sts.AssumeRoleInput,
	optFns ...func(*sts.Options),
) (*sts.AssumeRoleOutput, error) {
	return a.client.AssumeRole(ctx, params, optFns...)
}
