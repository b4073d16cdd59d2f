package vault

import (
	"context"
	"errors"
	"fmt"

	vaultapi "github.com/hashicorp/vault/api"

	"github.com/maxim/loadout"
)

// KV is the subset of the Vault KV v2 interface the provider depends on.
type KV interface {
	Get(ctx context.Context, path string) (*vaultapi.KVSecret, error)
}

// Provider materializes credential trees from a Vault KV v2 mount. The
// secret's data map becomes the tree; nested maps inside it stay nested.
type Provider struct {
	kv       KV
	field    string
	explicit bool
}

// Option configures the Vault provider.
type Option func(*Provider)

// WithField selects one key of the secret data map; its value must itself be
// a map and becomes the returned tree. When omitted the whole data map is
// returned.
func WithField(field string) Option {
	return func(p *Provider) {
		p.field = field
		p.explicit = true
	}
}

// New creates a Vault provider using the given KV accessor.
func New(kv KV, opts ...Option) (*Provider, error) {
	if kv == nil {
		return nil, errors.New("vault: KV accessor is required")
	}
	p := &Provider{kv: kv}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// FromClient is a convenience helper that derives a KV accessor from a Vault
// client and mount path.
func FromClient(client *vaultapi.Client, mountPath string, opts ...Option) (*Provider, error) {
	if client == nil {
		return nil, errors.New("vault: client is required")
	}
	if mountPath == "" {
		mountPath = "secret"
	}
	return New(client.KVv2(mountPath), opts...)
}

// Fetch retrieves the secret at the supplied path as a credentials tree.
func (p *Provider) Fetch(ctx context.Context, path string) (loadout.Credentials, error) {
	if path == "" {
		return nil, errors.New("vault: secret path cannot be empty")
	}
	secret, err := p.kv.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	if secret == nil || len(secret.Data) == 0 {
		return nil, errors.New("vault: secret contained no data")
	}
	if p.explicit {
		child, ok := secret.Data[p.field]
		if !ok {
			return nil, fmt.Errorf("vault: field %q not found", p.field)
		}
		subtree, ok := child.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("vault: field %q is not a map", p.field)
		}
		return loadout.Credentials(subtree), nil
	}
	return loadout.Credentials(secret.Data), nil
}
