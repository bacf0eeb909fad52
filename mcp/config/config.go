package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// DefaultStore names the store that always exists and that actions use when
// no store is specified.
const DefaultStore = "default"

type Config struct {
	Server         *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Options        []fluxor.Option    `yaml:"-" json:"-"`
	Extensions     []types.Service    `yaml:"-" json:"-"`
	ExtensionTypes []*x.Type          `yaml:"-" json:"-"`
	Builtins       []string           `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	Stores         []*Store           `yaml:"stores,omitempty" json:"stores,omitempty"`
}

// Store describes one named store hosted by the service.
type Store struct {
	Name string `yaml:"name" json:"name"`
	// SnapshotURL is any afs URL or local path used by save/load.
	SnapshotURL string `yaml:"snapshotURL,omitempty" json:"snapshotURL,omitempty"`
	// Load imports the snapshot on startup when it exists.
	Load bool `yaml:"load,omitempty" json:"load,omitempty"`
	// SaveOnShutdown exports the store to SnapshotURL on service shutdown.
	SaveOnShutdown bool `yaml:"saveOnShutdown,omitempty" json:"saveOnShutdown,omitempty"`
}

// Load reads a YAML (or JSON) configuration from a local path or afs URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	URL = url.Normalize(URL, file.Scheme)
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Init makes sure the default store is always declared.
func (c *Config) Init() {
	if c.Lookup(DefaultStore) == nil {
		c.Stores = append([]*Store{{Name: DefaultStore}}, c.Stores...)
	}
}

// Lookup returns the store definition with the given name or nil.
func (c *Config) Lookup(name string) *Store {
	for _, store := range c.Stores {
		if store != nil && store.Name == name {
			return store
		}
	}
	return nil
}

func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Stores))
	for i, store := range c.Stores {
		if store == nil || store.Name == "" {
			return fmt.Errorf("stores[%d]: name was empty", i)
		}
		if seen[store.Name] {
			return fmt.Errorf("stores[%d]: duplicate store name %q", i, store.Name)
		}
		seen[store.Name] = true
		if (store.Load || store.SaveOnShutdown) && store.SnapshotURL == "" {
			return fmt.Errorf("store %q: snapshotURL is required with load or saveOnShutdown", store.Name)
		}
	}
	return nil
}
