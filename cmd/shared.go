package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/viant/burrowkv/mcp"
	mcpconfig "github.com/viant/burrowkv/mcp/config"
)

var (
	cfgPath string

	// stdout receives command output; tests replace it.
	stdout io.Writer = os.Stdout

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// newLogger returns the text logger used by long-running commands.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("BURROWKV_DEBUG") == "1" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// serviceSingleton initialises an mcp.Service only once and reuses the instance
// across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			var err error
			cfg, err = mcpconfig.Load(ctx, cfgPath)
			if err != nil {
				svcErr = err
				return
			}
			if os.Getenv("BURROWKV_DEBUG") == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}
		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg), mcp.WithLogger(newLogger()))
	})
	return svcInst, svcErr
}
