package snapshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/burrowkv/kv"
)

const fileMode = 0o644

// Service saves and restores store snapshots.
type Service struct {
	fs afs.Service
}

// New creates a snapshot service. A nil fs falls back to afs.New().
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}

// Save writes the store's JSON export to URL, replacing any previous snapshot.
func (s *Service) Save(ctx context.Context, URL string, store *kv.Store) error {
	URL = normalize(URL)
	text, err := store.ExportJSON()
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	if err = s.fs.Upload(ctx, URL, fileMode, strings.NewReader(text)); err != nil {
		return fmt.Errorf("upload snapshot %q: %w", URL, err)
	}
	return nil
}

// Load replaces the store content with the snapshot stored at URL. The store
// is untouched when the snapshot cannot be downloaded or decoded.
func (s *Service) Load(ctx context.Context, URL string, store *kv.Store) error {
	URL = normalize(URL)
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("download snapshot %q: %w", URL, err)
	}
	if err = store.ImportJSON(string(data)); err != nil {
		return fmt.Errorf("import snapshot %q: %w", URL, err)
	}
	return nil
}

// LoadIfExists behaves like Load but reports false, without error, when no
// snapshot exists at URL yet.
func (s *Service) LoadIfExists(ctx context.Context, URL string, store *kv.Store) (bool, error) {
	ok, err := s.fs.Exists(ctx, normalize(URL))
	if err != nil || !ok {
		return false, err
	}
	return true, s.Load(ctx, URL, store)
}

func normalize(URL string) string {
	return url.Normalize(URL, file.Scheme)
}
