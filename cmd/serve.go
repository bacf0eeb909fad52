package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"
)

// ServeCmd launches an MCP server exposing the store tools.  The server
// configuration (port, transport, auth, …) is taken from the `server` section
// of the config file.  On SIGINT/SIGTERM the service is shut down, which saves
// stores configured with saveOnShutdown.
type ServeCmd struct{}

func (c *ServeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	logger := newLogger()

	var srvOpts *mcp.ServerOptions
	if cfg := svc.Config(); cfg != nil {
		srvOpts = cfg.Server
	}

	mcpServer, err := mcp.NewServer(svc.NewHandler, srvOpts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	httpSrv := mcpServer.HTTP(ctx, "")
	errs := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	logger.Info("MCP server listening", "addr", httpSrv.Addr, "stores", svc.StoreNames())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigs:
	case err = <-errs:
		logger.Error("http server failed", "error", err)
	}
	logger.Info("shutting down")
	return errors.Join(err, httpSrv.Close(), svc.Shutdown(ctx))
}
