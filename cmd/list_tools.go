package cmd

import "fmt"

// ListToolsCmd prints registered tools matching a pattern ("*", "kv/",
// "kv-get").
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"tool name pattern" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	for _, t := range svc.ToolDescriptors(c.Pattern) {
		fmt.Fprintf(stdout, "%s\t%s\n", t.Name, t.Description)
	}
	return nil
}
