// Package identity resolves which AWS identity is used to query another account's ECS tasks.
package identity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/client"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CallerIdentity is the ambient identity of the running process.
type CallerIdentity struct {
	AccountID string
	Arn       string
}

// GetCallerIdentity retrieves the caller's account ID and ARN using STS GetCallerIdentity.
func GetCallerIdentity(ctx context.Context, stsClient client.STSClient, log *slog.Logger) (*CallerIdentity, error) {
	log.Debug("calling external service", "context", map[string]string{
		"operation": "STS.GetCallerIdentity",
	})

	output, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("STS GetCallerIdentity failed: %w", err)
	}

	if output.Account == nil || *output.Account == "" {
		return nil, fmt.Errorf("STS returned empty account ID")
	}

	return &CallerIdentity{
		AccountID: *output.Account,
		Arn:       aws.ToString(output.Arn),
	}, nil
}

// GetAccountID retrieves the AWS account ID using STS GetCallerIdentity.
func GetAccountID(ctx context.Context, stsClient client.STSClient, log *slog.Logger) (string, error) {
	caller, err := GetCallerIdentity(ctx, stsClient, log)
	if err != nil {
		return "", err
	}
	return caller.AccountID, nil
}
