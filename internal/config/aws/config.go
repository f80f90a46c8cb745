// Package aws contains AWS-specific configuration helpers for ecs-state-check.
package aws

import (
	"context"
	"fmt"

	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	awsConstants "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/viper"
)

// Config contains AWS-specific configuration.
type Config struct {
	// Cross-account access
	CrossAccountRoleName string `mapstructure:"cross_account_role_name" validate:"required"`
	RoleSessionName      string `mapstructure:"role_session_name" validate:"required,min=2,max=64"`
	TargetRegion         string `mapstructure:"target_region" validate:"required"`

	// AWS SDK Configuration (credentials, region, etc.)
	SDKConfig *aws.Config `mapstructure:"-"`
}

// BindEnvVars binds AWS-specific environment variables to the provided Viper instance.
func BindEnvVars(v *viper.Viper) {
	v.SetDefault("aws.cross_account_role_name", awsConstants.DefaultCrossAccountRoleName)
	v.SetDefault("aws.role_session_name", awsConstants.DefaultRoleSessionName)
	v.SetDefault("aws.target_region", awsConstants.DefaultTargetRegion)

	prefix := constants.EnvPrefix + "_AWS_"
	_ = v.BindEnv("aws.cross_account_role_name", prefix+"CROSS_ACCOUNT_ROLE_NAME")
	_ = v.BindEnv("aws.role_session_name", prefix+"ROLE_SESSION_NAME")
	_ = v.BindEnv("aws.target_region", prefix+"TARGET_REGION")
}

// LoadSDKConfig loads the AWS SDK configuration from the environment.
func (c *Config) LoadSDKConfig(ctx context.Context) error {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK configuration: %w", err)
	}
	c.SDKConfig = &awsCfg
	return nil
}
