package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/burrowkv/mcp/tool"
)

// ToolCmd prints metadata & input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (service-method)" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	name := tool.Canonical(c.Name)
	description, schema, ok := svc.ToolMetadata(name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}
	info := struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		InputSchema interface{} `json:"inputSchema"`
	}{name, description, schema}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintf(stdout, "Name : %s\n", info.Name)
	fmt.Fprintf(stdout, "Desc : %s\n", info.Description)
	js, _ := json.MarshalIndent(info.InputSchema, "", "  ")
	fmt.Fprintf(stdout, "InputSchema:\n%s\n", string(js))
	return nil
}
