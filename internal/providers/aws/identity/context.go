package identity

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Mode tells whether the ambient identity or an assumed role is used.
type Mode string

const (
	// ModeLocal uses the process's own credentials.
	ModeLocal Mode = "local"
	// ModeAssumed uses temporary credentials obtained through sts:AssumeRole.
	ModeAssumed Mode = "assumed"
)

// Context is the identity used for one invocation's registry queries.
// It lives only for the duration of the invocation.
type Context struct {
	Mode      Mode
	AccountID string

	// Set only when Mode is ModeAssumed.
	Region      string
	Credentials *aws.Credentials
}

// IsAssumed reports whether temporary credentials are in use.
func (c *Context) IsAssumed() bool {
	return c.Mode == ModeAssumed && c.Credentials != nil
}

// ApplyTo returns a copy of base configured for this identity.
// Local identities get the ambient configuration unchanged.
func (c *Context) ApplyTo(base aws.Config) aws.Config {
	cfg := base.Copy()
	if !c.IsAssumed() {
		return cfg
	}

	cfg.Region = c.Region
	cfg.Credentials = credentials.NewStaticCredentialsProvider(
		c.Credentials.AccessKeyID,
		c.Credentials.SecretAccessKey,
		c.Credentials.SessionToken,
	)
	return cfg
}
