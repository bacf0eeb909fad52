package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/viant/burrowkv/internal/conv"
	"github.com/viant/burrowkv/mcp/matcher"
	"github.com/viant/burrowkv/mcp/tool"
	"github.com/viant/burrowkv/mcp/tool/conversion"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/fluxor/runtime/execution"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// toolTimeout bounds a tool call made through the MCP handler.
const toolTimeout = time.Minute

// Tools returns a tool entry for every registered action method.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)

	actions := s.Workflow.Service.Actions()
	for _, name := range actions.Services() {
		service := actions.Lookup(name)
		if service == nil {
			continue
		}
		for _, method := range service.Methods() {
			toolName := tool.NewName(name, method.Name)
			aTool, err := s.LookupTool(toolName.String())
			if err != nil {
				continue
			}
			result = append(result, aTool)
		}
	}
	return result
}

// MatchTools returns tools whose name satisfies pattern: "*" for all, a
// service prefix such as "kv/" or "kv-", or an exact tool name.
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		if matchTool(pattern, entry.Metadata.Name) {
			result = append(result, entry)
		}
	}
	return result
}

// matchTool accepts slash notation: "system/" matches system_storage-list and
// "kv/" matches kv-get.
func matchTool(pattern, name string) bool {
	if matcher.Match(tool.Name(pattern).ToolName(), name) {
		return true
	}
	if strings.HasSuffix(pattern, "/") {
		return matcher.Match(tool.NewName(strings.TrimSuffix(pattern, "/"), "").String(), name)
	}
	return false
}

// LookupTool builds the tool entry (schema and handler) for a tool name in
// service-method form, e.g. kv-get.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	toolName := tool.Name(name)
	actions := s.Workflow.Service.Actions()
	service := actions.Lookup(toolName.Service())
	if service == nil {
		return nil, fmt.Errorf("unknown tool: %v", toolName)
	}
	toolMethod := toolName.Method()
	var err error
	for _, method := range service.Methods() {
		if method.Name != toolMethod {
			continue
		}
		sig := &types.Signature{
			Name:        name,
			Description: method.Description,
			Input:       method.Input,
			Output:      method.Output,
		}
		toolEntry := serverproto.ToolEntry{}
		if toolEntry.Metadata, err = conversion.BuildSchema(sig); err != nil {
			return nil, err
		}
		toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
			output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments, toolTimeout)
			res := &mcpschema.CallToolResult{}
			if err != nil {
				res.IsError = conv.Pointer[bool](true)
				res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
					Type: "text",
					Text: err.Error(),
				})
				return res, nil
			}

			var data []byte
			switch actual := output.(type) {
			case string:
				data = []byte(actual)
			case []byte:
				data = actual
			default:
				data, _ = json.Marshal(output)
			}
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: string(data),
			})
			return res, nil
		}
		return &toolEntry, nil
	}
	return nil, fmt.Errorf("unknown tool: %v", toolName)
}

// ExecuteTool invokes a registered fluxor action with the supplied arguments.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	toolName := tool.Name(name)

	exec, err := execution.NewAtHocExecution(toolName.Service(), toolName.Method(), args)
	if err != nil {
		return "", err
	}

	waitFn, err := s.Runtime.ScheduleExecution(ctx, exec)
	if err != nil {
		return "", err
	}

	anExec, err := waitFn(timeout)
	if err != nil {
		return "", err
	}

	if anExec.Error != "" {
		return "", fmt.Errorf("%s: %s", toolName, anExec.Error)
	}
	return anExec.Output, nil
}
