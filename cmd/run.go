package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// RunCmd starts a workflow whose tasks may call kv actions (kv:get, kv:set, …)
// against the stores hosted by the service.
type RunCmd struct {
	Location   string `short:"l" long:"location" description:"Workflow definition path (YAML)"`
	InputFile  string `short:"i" long:"input"    description:"JSON file with initial state (stdin if empty)"`
	State      string `short:"s" long:"state" description:"JSON Object with initial state"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"30"`
}

func (c *RunCmd) Execute(_ []string) error {
	if c.Location == "" {
		return fmt.Errorf("workflow location must be provided via -l/--location")
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()
	defer svc.Shutdown(ctx)

	rt := svc.WorkflowRuntime()
	wf, err := rt.LoadWorkflow(ctx, c.Location)
	if err != nil {
		return fmt.Errorf("load workflow: %w", err)
	}

	initState, err := c.initialState()
	if err != nil {
		return fmt.Errorf("decode initial state: %w", err)
	}

	process, wait, err := rt.StartProcess(ctx, wf, initState)
	if err != nil {
		return fmt.Errorf("start process: %w", err)
	}

	output, err := wait(ctx, time.Duration(c.TimeoutSec)*time.Second)
	if err != nil {
		return fmt.Errorf("wait for process: %w", err)
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(data))
	fmt.Fprintf(os.Stderr, "process %s completed\n", process.ID)
	return nil
}

// initialState decodes --state, or else --input / stdin; empty input yields
// an empty state.
func (c *RunCmd) initialState() (map[string]interface{}, error) {
	state := make(map[string]interface{})
	if c.State != "" {
		return state, json.Unmarshal([]byte(strings.TrimSpace(c.State)), &state)
	}
	var reader io.Reader = os.Stdin
	if c.InputFile != "" {
		f, err := os.Open(c.InputFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}
	data, err := io.ReadAll(reader)
	if err != nil || len(data) == 0 {
		return state, nil
	}
	return state, json.Unmarshal(data, &state)
}
