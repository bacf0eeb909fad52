package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/viant/afs"
	"github.com/viant/burrowkv/internal/syncmap"
	"github.com/viant/burrowkv/kv"
	"github.com/viant/burrowkv/kv/snapshot"
	"github.com/viant/burrowkv/mcp/config"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
)

// Service bundles configuration, the named stores and a Fluxor Workflow
// engine exposing store operations as actions. All heavy lifting during
// instantiation lives in bootstrap.go to keep this file focused on the public
// surface.
type Service struct {
	Workflow
	started   int32
	stop      context.CancelFunc
	config    *config.Config
	logger    *slog.Logger
	fs        afs.Service
	snapshots *snapshot.Service
	stores    *syncmap.Map[*kv.Store]
}

type Workflow struct {
	Options        []fluxor.Option
	Runtime        *fluxor.Runtime
	Service        *fluxor.Service
	Extensions     []types.Service
	ExtensionTypes []*x.Type `json:"-"`
}

// WorkflowRuntime returns the underlying Fluxor runtime. Prefer this accessor
// over the Runtime field.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the generated Fluxor service instance that exposes
// all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration instance.  Callers must treat
// the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Store returns the named store.
func (s *Service) Store(name string) (*kv.Store, bool) {
	return s.stores.Get(name)
}

// StoreNames returns hosted store names in declaration order.
func (s *Service) StoreNames() []string {
	return s.stores.Keys()
}

// SnapshotURL returns the configured snapshot location of the named store or
// an empty string.
func (s *Service) SnapshotURL(name string) string {
	if def := s.config.Lookup(name); def != nil {
		return def.SnapshotURL
	}
	return ""
}

// Option modifies a service instance before it is initialised. Users can pass
// an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger sets the structured logger, slog.Default() by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFileSystem overrides the afs service used for snapshots.
func WithFileSystem(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithWorkflowOptions appends additional Fluxor options that will be used when
// the Workflow engine gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers custom Fluxor services that should be available in
// addition to the kv service and configured builtins.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// New constructs and starts a new service instance. The actual bootstrap is
// handled by init() in bootstrap.go.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is a shortcut for New(ctx, WithConfig(cfg), opts...).
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Start launches the underlying Fluxor runtime. Multiple invocations are safe.
// Subsequent calls will be ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.stop = cancel
	return s.Workflow.Runtime.Start(runCtx)
}

// Shutdown saves stores configured with saveOnShutdown and cancels the
// Fluxor runtime context, which stops its workers and task allocator.
// Additional invocations after the first call have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	var errs []error
	for _, def := range s.config.Stores {
		if !def.SaveOnShutdown {
			continue
		}
		store, ok := s.stores.Get(def.Name)
		if !ok {
			continue
		}
		if err := s.snapshots.Save(ctx, def.SnapshotURL, store); err != nil {
			errs = append(errs, fmt.Errorf("store %q: %w", def.Name, err))
			continue
		}
		s.logger.Info("snapshot saved", "store", def.Name, "url", def.SnapshotURL, "size", store.Size())
	}
	// Runtime.Shutdown races with the worker setup Runtime.Start runs in its
	// own goroutines; cancelling the runtime context stops both sides cleanly.
	if s.stop != nil {
		s.stop()
	}
	return errors.Join(errs...)
}
