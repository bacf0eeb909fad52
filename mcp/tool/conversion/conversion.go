package conversion

import (
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
)

var emptyStruct = reflect.StructOf([]reflect.StructField{})

// BuildSchema derives an MCP tool definition from an action signature. Nil
// input or output types are described as empty objects.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	input := structType(sig.Input)
	var inputSchema schema.ToolInputSchema
	if err := inputSchema.Load(reflect.New(input).Interface()); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	props, required := schema.StructToProperties(structType(sig.Output))
	outputSchema := &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

// structType dereferences pointer types; StructToProperties panics for
// non-struct kinds so anything else is replaced with an empty struct.
func structType(t reflect.Type) reflect.Type {
	if t == nil {
		return emptyStruct
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return emptyStruct
	}
	return t
}
