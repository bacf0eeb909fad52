package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/burrowkv/kv"
	"github.com/viant/burrowkv/kv/snapshot"
)

// openStore loads the snapshot at URL into a new store; a missing snapshot
// yields an empty store.
func openStore(ctx context.Context, URL string) (*kv.Store, *snapshot.Service, error) {
	if URL == "" {
		return nil, nil, fmt.Errorf("-s/--snapshot is required")
	}
	snapshots := snapshot.New(nil)
	store := kv.New()
	if _, err := snapshots.LoadIfExists(ctx, URL, store); err != nil {
		return nil, nil, err
	}
	return store, snapshots, nil
}

// mutate opens the snapshot, applies fn and saves the result unless fn fails.
func mutate(URL string, fn func(store *kv.Store) error) error {
	ctx := context.Background()
	store, snapshots, err := openStore(ctx, URL)
	if err != nil {
		return err
	}
	if err = fn(store); err != nil {
		return err
	}
	return snapshots.Save(ctx, URL, store)
}

// read opens the snapshot and passes the store to fn without saving.
func read(URL string, fn func(store *kv.Store) error) error {
	store, _, err := openStore(context.Background(), URL)
	if err != nil {
		return err
	}
	return fn(store)
}

// GetCmd prints the value of one key; a missing key is reported as an error.
type GetCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *GetCmd) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get -s <snapshot> <key>")
	}
	return read(c.Snapshot, func(store *kv.Store) error {
		value, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", kv.ErrNotFound, args[0])
		}
		fmt.Fprintln(stdout, value)
		return nil
	})
}

// SetCmd stores a value under a key.
type SetCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *SetCmd) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set -s <snapshot> <key> <value>")
	}
	return mutate(c.Snapshot, func(store *kv.Store) error {
		store.Set(args[0], args[1])
		return nil
	})
}

// DelCmd deletes keys. Every key must exist, otherwise nothing is saved.
type DelCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *DelCmd) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: del -s <snapshot> <key>...")
	}
	return mutate(c.Snapshot, func(store *kv.Store) error {
		for _, key := range args {
			if !store.Delete(key) {
				return fmt.Errorf("%w: %q", kv.ErrNotFound, key)
			}
		}
		return nil
	})
}

// KeysCmd lists keys, one per line.
type KeysCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *KeysCmd) Execute(_ []string) error {
	return read(c.Snapshot, func(store *kv.Store) error {
		for _, key := range store.Keys() {
			fmt.Fprintln(stdout, key)
		}
		return nil
	})
}

// ItemsCmd lists key/value pairs, tab separated.
type ItemsCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *ItemsCmd) Execute(_ []string) error {
	return read(c.Snapshot, func(store *kv.Store) error {
		for _, item := range store.Items() {
			fmt.Fprintf(stdout, "%s\t%s\n", item.Key, item.Value)
		}
		return nil
	})
}

// SizeCmd prints the number of entries.
type SizeCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *SizeCmd) Execute(_ []string) error {
	return read(c.Snapshot, func(store *kv.Store) error {
		fmt.Fprintln(stdout, store.Size())
		return nil
	})
}

// ClearCmd removes every entry.
type ClearCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *ClearCmd) Execute(_ []string) error {
	return mutate(c.Snapshot, func(store *kv.Store) error {
		store.Clear()
		return nil
	})
}

// ExportCmd prints the snapshot as a JSON object.
type ExportCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
}

func (c *ExportCmd) Execute(_ []string) error {
	return read(c.Snapshot, func(store *kv.Store) error {
		text, err := store.ExportJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, text)
		return nil
	})
}

// ImportCmd replaces the snapshot content with a JSON object supplied inline
// via -i/--input or from a file via --file (use - for stdin).
type ImportCmd struct {
	Snapshot string `short:"s" long:"snapshot" description:"snapshot path or URL"`
	Inline   string `short:"i" long:"input" description:"inline JSON object"`
	File     string `long:"file" description:"path to JSON file (use - for stdin)"`
}

func (c *ImportCmd) Execute(_ []string) error {
	if (c.Inline == "") == (c.File == "") {
		return fmt.Errorf("exactly one of -i/--input and --file is required")
	}
	text := c.Inline
	if c.File != "" {
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	return mutate(c.Snapshot, func(store *kv.Store) error {
		return store.ImportJSON(text)
	})
}
