package client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/organizations"
)

// OrganizationsClient defines the interface for AWS Organizations operations used across AWS provider packages.
type OrganizationsClient interface {
	DescribeAccount(
		ctx context.Context,
		params *organizations.DescribeAccountInput,
		optFns ...func(*organizations.Options),
	) (*organizations.DescribeAccountOutput, error)
}

// OrganizationsClientAdapter wraps the AWS SDK Organizations client to implement OrganizationsClient interface.
type OrganizationsClientAdapter struct {
	client *organizations.Client
}

// NewOrganizationsClientAdapter creates a new adapter wrapping the AWS SDK Organizations client.
func NewOrganizationsClientAdapter(client *organizations.Client) *OrganizationsClientAdapter {
	return &OrganizationsClientAdapter{client: client}
}

// DescribeAccount wraps the AWS SDK DescribeAccount operation.
func (a *OrganizationsClientAdapter) DescribeAccount(
	ctx context.Context,
	params *organizations.DescribeAccountInput,
	optFns ...func(*organizations.Options),
) (*organizations.DescribeAccountOutput, error) {
	result, err := a.client.DescribeAccount(ctx, params, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to describe account: %w", err)
	}
	return result, nil
}
