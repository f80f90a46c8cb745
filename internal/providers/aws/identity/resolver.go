package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/client"
	awsConstants "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
)

// ResolverConfig holds the cross-account role convention.
type ResolverConfig struct {
	RoleName    string
	SessionName string
	Region      string
}

// Resolver picks the identity for querying a target account.
type Resolver struct {
	stsClient client.STSClient
	cfg       ResolverConfig
	logger    *slog.Logger
}

// NewResolver creates a Resolver that assumes cfg.RoleName in foreign accounts.
func NewResolver(stsClient client.STSClient, cfg ResolverConfig, log *slog.Logger) *Resolver {
	return &Resolver{
		stsClient: stsClient,
		cfg:       cfg,
		logger:    log,
	}
}

// Resolve returns the local identity when the caller already lives in the target account,
// and otherwise assumes the cross-account role there. There is no fallback: any STS
// failure is returned as a credentials error.
func (r *Resolver) Resolve(ctx context.Context, targetAccountID string) (*Context, error) {
	targetAccountID = strings.TrimSpace(targetAccountID)

	caller, err := GetCallerIdentity(ctx, r.stsClient, r.logger)
	if err != nil {
		return nil, appErrors.ErrCredentials("failed to determine caller account", err)
	}

	if strings.TrimSpace(caller.AccountID) == targetAccountID {
		r.logger.Debug("target account is the caller account, using local identity",
			"account_id", targetAccountID)
		return &Context{Mode: ModeLocal, AccountID: targetAccountID}, nil
	}

	roleArn := RoleARN(partitionOf(caller.Arn), targetAccountID, r.cfg.RoleName)

	r.logger.Debug("calling external service", "context", map[string]string{
		"operation": "STS.AssumeRole",
		"role_arn":  roleArn,
	})

	output, err := r.stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleArn),
		RoleSessionName: aws.String(r.cfg.SessionName),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			r.logger.Error("failed to assume cross-account role",
				"role_arn", roleArn,
				"error_code", apiErr.ErrorCode(),
			)
		}
		return nil, appErrors.ErrCredentials(fmt.Sprintf("failed to assume role %s", roleArn), err)
	}

	if output.Credentials == nil {
		return nil, appErrors.ErrCredentials(fmt.Sprintf("STS returned no credentials for role %s", roleArn), nil)
	}

	creds := &aws.Credentials{
		AccessKeyID:     aws.ToString(output.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(output.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(output.Credentials.SessionToken),
		Source:          "AssumeRole",
	}
	if output.Credentials.Expiration != nil {
		creds.CanExpire = true
		creds.Expires = *output.Credentials.Expiration
	}

	return &Context{
		Mode:        ModeAssumed,
		AccountID:   targetAccountID,
		Region:      r.cfg.Region,
		Credentials: creds,
	}, nil
}

// RoleARN builds the ARN of the named role in the given account.
func RoleARN(partition, accountID, roleName string) string {
	return arn.ARN{
		Partition: partition,
		Service:   awsConstants.IAMService,
		AccountID: accountID,
		Resource:  awsConstants.RoleResourcePrefix + roleName,
	}.String()
}

func partitionOf(callerArn string) string {
	parsed, err := arn.Parse(callerArn)
	if err != nil || parsed.Partition == "" {
		return awsConstants.DefaultPartition
	}
	return parsed.Partition
}
