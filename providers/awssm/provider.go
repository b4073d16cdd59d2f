package awssm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/maxim/loadout"
)

// SecretsManagerClient captures the subset of the AWS Secrets Manager client
// used by the provider. *secretsmanager.Client satisfies this interface.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Provider materializes credential trees from AWS Secrets Manager. Secret
// payloads must be JSON objects; nesting in the payload becomes nesting in
// the tree.
type Provider struct {
	client       SecretsManagerClient
	versionStage *string
	versionID    *string
	callOpts     []func(*secretsmanager.Options)
}

// Option configures the AWS provider.
type Option func(*Provider)

// WithVersionStage requests a specific version stage (defaults to AWS Current).
func WithVersionStage(stage string) Option {
	return func(p *Provider) {
		if stage != "" {
			p.versionStage = aws.String(stage)
		}
	}
}

// WithVersionID requests a specific version ID.
func WithVersionID(id string) Option {
	return func(p *Provider) {
		if id != "" {
			p.versionID = aws.String(id)
		}
	}
}

// WithClientOptions forwards Secrets Manager call options to each fetch.
func WithClientOptions(opts ...func(*secretsmanager.Options)) Option {
	return func(p *Provider) {
		p.callOpts = append(p.callOpts, opts...)
	}
}

// New constructs a Secrets Manager provider.
func New(client SecretsManagerClient, opts ...Option) (*Provider, error) {
	if client == nil {
		return nil, errors.New("awssm: client is required")
	}
	p := &Provider{
		client: client,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Fetch retrieves the secret with the provided id and decodes its JSON
// payload into a credentials tree.
func (p *Provider) Fetch(ctx context.Context, key string) (loadout.Credentials, error) {
	if key == "" {
		return nil, errors.New("awssm: secret id cannot be empty")
	}
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(key),
	}
	if p.versionStage != nil {
		input.VersionStage = p.versionStage
	}
	if p.versionID != nil {
		input.VersionId = p.versionID
	}
	out, err := p.client.GetSecretValue(ctx, input, p.callOpts...)
	if err != nil {
		return nil, fmt.Errorf("awssm: %w", err)
	}
	var payload []byte
	switch {
	case out.SecretString != nil:
		payload = []byte(aws.ToString(out.SecretString))
	case len(out.SecretBinary) > 0:
		payload = out.SecretBinary
	default:
		return nil, errors.New("awssm: secret contained no payload")
	}
	var tree map[string]any
	if err := json.Unmarshal(payload, &tree); err != nil {
		return nil, fmt.Errorf("awssm: secret %s is not a JSON object: %w", key, err)
	}
	return loadout.Credentials(tree), nil
}
