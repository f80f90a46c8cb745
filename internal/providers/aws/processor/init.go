package aws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecs-state-check/ecs-state-check/internal/config"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	"github.com/ecs-state-check/ecs-state-check/internal/notification"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/client"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/identity"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/registry"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/secrets"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Option customizes Initialize.
type Option func(*initOptions)

type initOptions struct {
	notifier notification.Notifier
}

// WithNotifier replaces the webhook sender, e.g. with a WriterNotifier for dry runs.
// The webhook URL is then neither required nor resolved.
func WithNotifier(n notification.Notifier) Option {
	return func(o *initOptions) {
		o.notifier = n
	}
}

// Initialize constructs an AWS-backed event processor with all required dependencies.
// Wraps the AWS SDK clients in adapters for improved testability.
func Initialize(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	opts ...Option,
) (*Processor, error) {
	options := &initOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if err := cfg.AWS.LoadSDKConfig(ctx); err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	awsCfg := *cfg.AWS.SDKConfig
	stsClient := client.NewSTSClientAdapter(sts.NewFromConfig(awsCfg))

	notifier := options.notifier
	if notifier == nil {
		reader := secrets.NewParameterStoreReader(client.NewSSMClientAdapter(ssm.NewFromConfig(awsCfg)), log)
		webhookURL, err := secrets.ResolveWebhookURL(ctx, reader, secrets.WebhookSource{
			URL:           cfg.WebhookURL,
			ParameterName: cfg.WebhookURLParameter,
		})
		if err != nil {
			return nil, err
		}
		notifier = notification.NewWebhookSender(webhookURL, cfg.WebhookTimeout, log)
	}

	resolver := identity.NewResolver(stsClient, identity.ResolverConfig{
		RoleName:    cfg.AWS.CrossAccountRoleName,
		SessionName: cfg.AWS.RoleSessionName,
		Region:      cfg.AWS.TargetRegion,
	}, log)

	log.Debug(fmt.Sprintf("%s event processor initialized successfully", constants.ProjectName),
		"context", map[string]string{
			"region":                  awsCfg.Region,
			"cross_account_role_name": cfg.AWS.CrossAccountRoleName,
			"target_region":           cfg.AWS.TargetRegion,
		})

	return NewProcessor(
		resolver,
		registry.New(awsCfg, nil, log),
		identity.NewAliasResolver(awsCfg, nil, log),
		notifier,
		notification.Options{
			Color:         cfg.AlertColor,
			FooterIconURL: cfg.FooterIconURL,
		},
		log,
	), nil
}
