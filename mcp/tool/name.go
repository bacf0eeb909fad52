package tool

import "strings"

// Name represents tool name in service-method form, e.g. kv-get or
// system_storage-list.
type Name string

func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

func (t Name) ToolName() string {
	r := string(t)
	r = strings.ReplaceAll(r, "/", "_")
	return r
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, name string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + name)
}

// Canonical accepts the spellings users type on the command line
// (kv.get, kv/get, kv-get) and returns the registered tool name.
func Canonical(name string) string {
	if idx := strings.LastIndex(name, "-"); idx != -1 {
		return NewName(name[:idx], name[idx+1:]).String()
	}
	if idx := strings.LastIndexAny(name, "./"); idx != -1 {
		return NewName(name[:idx], name[idx+1:]).String()
	}
	return name
}
