package mcp

import (
	"sort"

	"github.com/viant/burrowkv/internal/conv"
)

// ToolDescriptor is the name and description of one tool.
type ToolDescriptor struct {
	Name        string
	Description string
}

// ToolNames returns all tool names registered on the service.
func (s *Service) ToolNames() []string {
	tools := s.Tools()
	names := make([]string, len(tools))
	for i, e := range tools {
		names[i] = e.Metadata.Name
	}
	return names
}

// ToolDescriptors returns name and description of the tools matching pattern
// (see MatchTools), sorted by name.
func (s *Service) ToolDescriptors(pattern string) []ToolDescriptor {
	tools := s.MatchTools(pattern)
	out := make([]ToolDescriptor, len(tools))
	for i, e := range tools {
		out[i] = ToolDescriptor{Name: e.Metadata.Name, Description: conv.Dereference(e.Metadata.Description)}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ToolMetadata returns description and input schema for a named tool when
// present. The last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	e, err := s.LookupTool(name)
	if err != nil {
		return "", nil, false
	}
	return conv.Dereference(e.Metadata.Description), e.Metadata.InputSchema, true
}
