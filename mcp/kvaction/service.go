package kvaction

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/burrowkv/internal/conv"
	"github.com/viant/burrowkv/kv"
	"github.com/viant/burrowkv/kv/snapshot"
	"github.com/viant/burrowkv/mcp/config"
	"github.com/viant/fluxor/model/types"
)

const serviceName = "kv"

var (
	// ErrUnknownStore reports a store name the registry does not host.
	ErrUnknownStore = errors.New("unknown store")
	// ErrNoSnapshotURL reports save/load without an explicit or configured URL.
	ErrNoSnapshotURL = errors.New("snapshot url was empty")
)

// Registry resolves named stores and their configured snapshot locations.
type Registry interface {
	Store(name string) (*kv.Store, bool)
	SnapshotURL(name string) string
}

// Service is the Fluxor action service wrapping a store registry.
type Service struct {
	registry  Registry
	snapshots *snapshot.Service
	sigs      types.Signatures
	executors map[string]types.Executable
}

type method struct {
	name string
	desc string
	in   reflect.Type
	out  reflect.Type
	exec types.Executable
}

// newMethod adapts a typed call into a Fluxor executable. Input may arrive
// as *I or as any value convertible to I (typically a generic map).
func newMethod[I any, O any](name, desc string, call func(ctx context.Context, in *I) (*O, error)) method {
	exec := func(ctx context.Context, input, output interface{}) error {
		in, ok := input.(*I)
		if !ok || in == nil {
			in = new(I)
			if input != nil {
				if err := conv.Convert(input, in); err != nil {
					return fmt.Errorf("%s: invalid input: %w", name, err)
				}
			}
		}
		out, err := call(ctx, in)
		if err != nil {
			return err
		}
		if output == nil {
			return nil
		}
		switch outPtr := output.(type) {
		case *O:
			*outPtr = *out
		case *interface{}:
			*outPtr = out
		default:
			return conv.Convert(out, outPtr)
		}
		return nil
	}
	return method{
		name: name,
		desc: desc,
		in:   reflect.TypeOf((*I)(nil)),
		out:  reflect.TypeOf((*O)(nil)),
		exec: exec,
	}
}

// New builds the action service. A nil snapshots falls back to snapshot.New(nil).
func New(registry Registry, snapshots *snapshot.Service) *Service {
	if snapshots == nil {
		snapshots = snapshot.New(nil)
	}
	s := &Service{
		registry:  registry,
		snapshots: snapshots,
		executors: map[string]types.Executable{},
	}

	methods := []method{
		newMethod("get", "Get the value stored under key; found is false when the key is absent", s.get),
		newMethod("set", "Insert or overwrite the value stored under key", s.set),
		newMethod("delete", "Delete key; reports whether it existed, fails on a missing key when strict", s.delete),
		newMethod("contains", "Check whether key exists", s.contains),
		newMethod("keys", "List keys in insertion order", s.keys),
		newMethod("values", "List values in key insertion order", s.values),
		newMethod("items", "List key/value pairs in insertion order", s.items),
		newMethod("size", "Count entries", s.size),
		newMethod("clear", "Remove every entry", s.clear),
		newMethod("export", "Export the store as a JSON object", s.export),
		newMethod("import", "Replace the store content with a JSON object of string values", s.importJSON),
		newMethod("save", "Save the store snapshot to url or the configured snapshotURL", s.save),
		newMethod("load", "Replace the store content with the snapshot at url or the configured snapshotURL", s.load),
	}
	for _, m := range methods {
		s.executors[m.name] = m.exec
		s.sigs = append(s.sigs, types.Signature{
			Name:        m.name,
			Description: m.desc,
			Input:       m.in,
			Output:      m.out,
		})
	}
	return s
}

// ------------------------------------------------------------------
// types.Service implementation
// ------------------------------------------------------------------

func (s *Service) Name() string { return serviceName }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// ------------------------------------------------------------------
// actions
// ------------------------------------------------------------------

func (s *Service) store(name string) (*kv.Store, error) {
	if name == "" {
		name = config.DefaultStore
	}
	store, ok := s.registry.Store(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, name)
	}
	return store, nil
}

func (s *Service) get(_ context.Context, in *KeyInput) (*GetOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	value, found := store.Get(in.Key)
	return &GetOutput{Value: value, Found: found}, nil
}

func (s *Service) set(_ context.Context, in *SetInput) (*StatusOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	store.Set(in.Key, in.Value)
	return &StatusOutput{Status: statusOK}, nil
}

func (s *Service) delete(_ context.Context, in *DeleteInput) (*DeleteOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	existed := store.Delete(in.Key)
	if !existed && in.Strict {
		return nil, fmt.Errorf("%w: %q", kv.ErrNotFound, in.Key)
	}
	return &DeleteOutput{Existed: existed}, nil
}

func (s *Service) contains(_ context.Context, in *KeyInput) (*ContainsOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	return &ContainsOutput{Found: store.Contains(in.Key)}, nil
}

func (s *Service) keys(_ context.Context, in *StoreInput) (*KeysOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	return &KeysOutput{Keys: store.Keys()}, nil
}

func (s *Service) values(_ context.Context, in *StoreInput) (*ValuesOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	return &ValuesOutput{Values: store.Values()}, nil
}

func (s *Service) items(_ context.Context, in *StoreInput) (*ItemsOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	return &ItemsOutput{Items: store.Items()}, nil
}

func (s *Service) size(_ context.Context, in *StoreInput) (*SizeOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	return &SizeOutput{Size: store.Size()}, nil
}

func (s *Service) clear(_ context.Context, in *StoreInput) (*StatusOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	store.Clear()
	return &StatusOutput{Status: statusOK}, nil
}

func (s *Service) export(_ context.Context, in *StoreInput) (*ExportOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	text, err := store.ExportJSON()
	if err != nil {
		return nil, err
	}
	return &ExportOutput{JSON: text}, nil
}

func (s *Service) importJSON(_ context.Context, in *ImportInput) (*StatusOutput, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, err
	}
	if err = store.ImportJSON(in.JSON); err != nil {
		return nil, err
	}
	return &StatusOutput{Status: statusOK}, nil
}

func (s *Service) save(ctx context.Context, in *SnapshotInput) (*StatusOutput, error) {
	store, URL, err := s.snapshotTarget(in)
	if err != nil {
		return nil, err
	}
	if err = s.snapshots.Save(ctx, URL, store); err != nil {
		return nil, err
	}
	return &StatusOutput{Status: statusOK, URL: URL}, nil
}

func (s *Service) load(ctx context.Context, in *SnapshotInput) (*StatusOutput, error) {
	store, URL, err := s.snapshotTarget(in)
	if err != nil {
		return nil, err
	}
	if err = s.snapshots.Load(ctx, URL, store); err != nil {
		return nil, err
	}
	return &StatusOutput{Status: statusOK, URL: URL}, nil
}

func (s *Service) snapshotTarget(in *SnapshotInput) (*kv.Store, string, error) {
	store, err := s.store(in.Store)
	if err != nil {
		return nil, "", err
	}
	URL := in.URL
	if URL == "" {
		name := in.Store
		if name == "" {
			name = config.DefaultStore
		}
		URL = s.registry.SnapshotURL(name)
	}
	if URL == "" {
		return nil, "", ErrNoSnapshotURL
	}
	return store, URL, nil
}
