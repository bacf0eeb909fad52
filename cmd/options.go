package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON path or URL"`

	Get    *GetCmd    `command:"get"    description:"Print the value stored under a key"`
	Set    *SetCmd    `command:"set"    description:"Store a value under a key"`
	Del    *DelCmd    `command:"del"    description:"Delete keys, failing on a missing key"`
	Keys   *KeysCmd   `command:"keys"   description:"List keys in insertion order"`
	Items  *ItemsCmd  `command:"items"  description:"List key/value pairs in insertion order"`
	Size   *SizeCmd   `command:"size"   description:"Print the number of entries"`
	Clear  *ClearCmd  `command:"clear"  description:"Remove every entry"`
	Export *ExportCmd `command:"export" description:"Print the snapshot as a JSON object"`
	Import *ImportCmd `command:"import" description:"Replace the snapshot content with a JSON object"`

	Run         *RunCmd         `command:"run"          description:"Run a workflow"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List registered tools"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List Fluxor services and their actions"`
	Action      *ActionCmd      `command:"action"       description:"Show detailed info about one Fluxor action"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	Exec        *ExecCmd        `command:"exec"         description:"Execute a tool"`
	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the store tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "get":
		o.Get = &GetCmd{}
	case "set":
		o.Set = &SetCmd{}
	case "del":
		o.Del = &DelCmd{}
	case "keys":
		o.Keys = &KeysCmd{}
	case "items":
		o.Items = &ItemsCmd{}
	case "size":
		o.Size = &SizeCmd{}
	case "clear":
		o.Clear = &ClearCmd{}
	case "export":
		o.Export = &ExportCmd{}
	case "import":
		o.Import = &ImportCmd{}
	case "run":
		o.Run = &RunCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "action":
		o.Action = &ActionCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
