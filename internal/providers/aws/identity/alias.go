package identity

import (
	"context"
	"errors"
	"log/slog"

	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/client"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgTypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
)

// AccountName returns the name the organization gives to accountID.
// Accounts without a name are identified by their ID.
func AccountName(
	ctx context.Context,
	orgClient client.OrganizationsClient,
	accountID string,
	log *slog.Logger,
) (string, error) {
	log.Debug("calling external service", "context", map[string]string{
		"operation":  "Organizations.DescribeAccount",
		"account_id": accountID,
	})

	output, err := orgClient.DescribeAccount(ctx, &organizations.DescribeAccountInput{
		AccountId: aws.String(accountID),
	})
	if err != nil {
		return "", err
	}

	if output.Account == nil || aws.ToString(output.Account.Name) == "" {
		return accountID, nil
	}

	return aws.ToString(output.Account.Name), nil
}

// AccountAlias returns the IAM alias of the account the client's credentials belong to.
// Accounts without an alias are identified by their ID.
func AccountAlias(ctx context.Context, iamClient client.IAMClient, accountID string, log *slog.Logger) (string, error) {
	log.Debug("calling external service", "context", map[string]string{
		"operation":  "IAM.ListAccountAliases",
		"account_id": accountID,
	})

	output, err := iamClient.ListAccountAliases(ctx, &iam.ListAccountAliasesInput{})
	if err != nil {
		return "", err
	}

	if len(output.AccountAliases) == 0 || output.AccountAliases[0] == "" {
		return accountID, nil
	}

	return output.AccountAliases[0], nil
}

// AliasClients are the clients an AliasResolver queries.
type AliasClients struct {
	Organizations client.OrganizationsClient
	IAM           client.IAMClient
}

// AliasClientFactory builds the alias clients for the given SDK configuration.
type AliasClientFactory func(cfg aws.Config) AliasClients

// DefaultAliasClientFactory builds real Organizations and IAM clients.
func DefaultAliasClientFactory(cfg aws.Config) AliasClients {
	return AliasClients{
		Organizations: client.NewOrganizationsClientAdapter(organizations.NewFromConfig(cfg)),
		IAM:           client.NewIAMClientAdapter(iam.NewFromConfig(cfg)),
	}
}

// AliasResolver names accounts through the organization with the ambient identity.
// Credentials assumed in a member account are never used here.
type AliasResolver struct {
	clients AliasClients
	logger  *slog.Logger
}

// NewAliasResolver creates an AliasResolver whose clients are built once from baseCfg.
// A nil factory falls back to DefaultAliasClientFactory.
func NewAliasResolver(baseCfg aws.Config, newClients AliasClientFactory, log *slog.Logger) *AliasResolver {
	if newClients == nil {
		newClients = DefaultAliasClientFactory
	}
	return &AliasResolver{
		clients: newClients(baseCfg.Copy()),
		logger:  log,
	}
}

// Lookup returns the organization name of the identity's account.
// When the ambient account is not part of an organization and the event belongs to it,
// the account's IAM alias is used instead.
func (r *AliasResolver) Lookup(ctx context.Context, id *Context) (string, error) {
	name, err := AccountName(ctx, r.clients.Organizations, id.AccountID, r.logger)
	if err == nil {
		return name, nil
	}

	var notInUse *orgTypes.AWSOrganizationsNotInUseException
	if !errors.As(err, &notInUse) || id.IsAssumed() {
		return "", appErrors.ErrAccountLookup("failed to look up name of account "+id.AccountID, err)
	}

	r.logger.Debug("account is not part of an organization, using IAM alias",
		"account_id", id.AccountID)

	alias, err := AccountAlias(ctx, r.clients.IAM, id.AccountID, r.logger)
	if err != nil {
		return "", appErrors.ErrAccountLookup("failed to look up alias of account "+id.AccountID, err)
	}
	return alias, nil
}
