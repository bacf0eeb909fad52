// Package cmd implements all sub-commands that make up the burrowkv
// command-line interface.  Store commands (get, set, del, keys, items, size,
// clear, export, import) operate on a JSON snapshot given with -s/--snapshot;
// tool commands (list-tools, tool, exec, list-actions, action, run, serve)
// operate on the MCP service built from the -f/--config file.  The plumbing
// shared between commands lives in shared.go.
package cmd
