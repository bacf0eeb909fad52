package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/viant/burrowkv/mcp/tool"
)

// ExecCmd executes a registered tool (e.g. kv-get or kv.get) from the CLI.
// Arguments can be supplied either inline via -i/--input or loaded from a
// JSON file via --file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name (service-method)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File       string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"60"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var args map[string]interface{}
	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
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
		if err := json.Unmarshal(data, &args); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}

	ctx := context.Background()
	defer svc.Shutdown(ctx)
	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = time.Minute
	}
	out, err := svc.ExecuteTool(ctx, tool.Canonical(c.Name), args, timeout)
	if err != nil {
		return err
	}

	switch v := out.(type) {
	case string:
		fmt.Fprintln(stdout, v)
	case []byte:
		fmt.Fprintln(stdout, string(v))
	default:
		data, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(stdout, string(data))
	}
	return nil
}
