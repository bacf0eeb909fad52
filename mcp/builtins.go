package mcp

import (
	"sort"

	"github.com/viant/burrowkv/mcp/matcher"
	"github.com/viant/fluxor/model/types"

	// Built-in action packages, only those with parameter-less New()
	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	exec "github.com/viant/fluxor/service/action/system/exec"
	secret "github.com/viant/fluxor/service/action/system/secret"
	storage "github.com/viant/fluxor/service/action/system/storage"
)

// builtinFactories lists the Fluxor action services that can be enabled next
// to the kv service.  The key must match the service name exposed by its
// implementation so that pattern matching is intuitive.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/exec":    func() types.Service { return exec.New() },
	"system/storage": func() types.Service { return storage.New() },
	"system/secret":  func() types.Service { return secret.New() },
}

// resolveBuiltinServices converts pattern(s) ("*" for all, prefix or exact)
// into concrete service instances.  Duplicate patterns are ignored.
func resolveBuiltinServices(patterns []string) []types.Service {
	selected := make(map[string]struct{})
	for _, p := range patterns {
		for name := range builtinFactories {
			if builtinMatch(p, name) {
				selected[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]types.Service, 0, len(names))
	for _, name := range names {
		out = append(out, builtinFactories[name]())
	}
	return out
}

// builtinMatch is prefix matching for patterns ending with "/" and exact
// matching otherwise.
func builtinMatch(pattern, name string) bool {
	if pattern == "*" || pattern == "" {
		return matcher.Match(pattern, name)
	}
	if pattern[len(pattern)-1] == '/' {
		return matcher.Match(pattern, name)
	}
	return pattern == name
}
