package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/burrowkv/internal/syncmap"
	"github.com/viant/burrowkv/kv"
	"github.com/viant/burrowkv/kv/snapshot"
	"github.com/viant/burrowkv/mcp/config"
	"github.com/viant/burrowkv/mcp/kvaction"
	"github.com/viant/fluxor"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. Its sole responsibility is to orchestrate the individual
// preparation steps so that the logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	if err := s.initStores(ctx); err != nil {
		return fmt.Errorf("init stores: %w", err)
	}

	s.initWorkflowService()

	// Auto-start runtime so that callers get a ready-to-use instance without
	// requiring an additional Start() call.
	return s.Start(ctx)
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.snapshots = snapshot.New(s.fs)
	s.stores = syncmap.New[*kv.Store]()
}

// initStores creates every configured store and restores snapshots of the
// stores marked with load.
func (s *Service) initStores(ctx context.Context) error {
	for _, def := range s.config.Stores {
		store, _ := s.stores.SetIfAbsent(def.Name, kv.New())
		if !def.Load {
			continue
		}
		loaded, err := s.snapshots.LoadIfExists(ctx, def.SnapshotURL, store)
		if err != nil {
			return fmt.Errorf("store %q: %w", def.Name, err)
		}
		if loaded {
			s.logger.Info("snapshot loaded", "store", def.Name, "url", def.SnapshotURL, "size", store.Size())
		}
	}
	return nil
}

// initWorkflowService assembles the list of Fluxor options, instantiates the
// engine and stores convenience shortcuts.
func (s *Service) initWorkflowService() {
	// Start with options coming from the configuration.
	opts := append([]fluxor.Option{}, s.config.Options...)

	if len(s.config.ExtensionTypes) > 0 {
		opts = append(opts, fluxor.WithExtensionTypes(s.config.ExtensionTypes...))
	}

	if len(s.config.Extensions) > 0 {
		opts = append(opts, fluxor.WithExtensionServices(s.config.Extensions...))
	}

	// Built-in action auto-loading based on config patterns.
	if len(s.config.Builtins) > 0 {
		s.Workflow.Extensions = append(s.Workflow.Extensions, resolveBuiltinServices(s.config.Builtins)...)
	}

	// The store actions are always exposed.
	s.Workflow.Extensions = append(s.Workflow.Extensions, kvaction.New(s, s.snapshots))
	opts = append(opts, fluxor.WithExtensionServices(s.Workflow.Extensions...))

	// Finally append any additional Workflow options passed through WithWorkflowOptions
	// to give callers the chance to override defaults where appropriate.
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
