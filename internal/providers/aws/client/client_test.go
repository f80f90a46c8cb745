package client

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
)

func TestNewECSClientAdapter(t *testing.T) {
	adapter := NewECSClientAdapter(&ecs.Client{})

	assert.NotNil(t, adapter)
}

func TestNewIAMClientAdapter(t *testing.T) {
	adapter := NewIAMClientAdapter(&iam.Client{})

	assert.NotNil(t, adapter)
}

func TestNewOrganizationsClientAdapter(t *testing.T) {
	adapter := NewOrganizationsClientAdapter(&organizations.Client{})

	assert.NotNil(t, adapter)
}

func TestNewSTSClientAdapter(t *testing.T) {
	adapter := NewSTSClientAdapter(&sts.Client{})

	assert.NotNil(t, adapter)
}

func TestNewSSMClientAdapter(t *testing.T) {
	adapter := NewSSMClientAdapter(&ssm.Client{})

	assert.NotNil(t, adapter)
}

func TestAdapters_ImplementInterfaces(_ *testing.T) {
	var _ ECSClient = (*ECSClientAdapter)(nil)
	var _ IAMClient = (*IAMClientAdapter)(nil)
	var _ OrganizationsClient = (*OrganizationsClientAdapter)(nil)
	var _ STSClient = (*STSClientAdapter)(nil)
	var _ SSMClient = (*SSMClientAdapter)(nil)
}
