package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// ActionCmd shows detailed information about one Fluxor action method.
type ActionCmd struct {
	Name string `short:"n" long:"name" description:"identifier in form service/method, e.g. kv/get" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

type actionInfo struct {
	Service      string   `json:"service"`
	Method       string   `json:"method"`
	Description  string   `json:"description"`
	InputType    string   `json:"inputType"`
	OutputType   string   `json:"outputType"`
	InputFields  []string `json:"inputFields,omitempty"`
	OutputFields []string `json:"outputFields,omitempty"`
}

func (c *ActionCmd) Execute(_ []string) error {
	idx := strings.LastIndexAny(c.Name, "/.")
	if idx == -1 {
		return fmt.Errorf("name must be service/method")
	}
	svcName, method := c.Name[:idx], c.Name[idx+1:]

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	s := svc.WorkflowService().Actions().Lookup(svcName)
	if s == nil {
		return fmt.Errorf("service %q not found", svcName)
	}
	sig := s.Methods().Lookup(method)
	if sig == nil {
		return fmt.Errorf("method %q not found in service %q", method, svcName)
	}

	info := actionInfo{
		Service:      svcName,
		Method:       method,
		Description:  sig.Description,
		InputType:    typeString(sig.Input),
		OutputType:   typeString(sig.Output),
		InputFields:  structFields(sig.Input),
		OutputFields: structFields(sig.Output),
	}

	if c.JSON {
		data, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintf(stdout, "Service : %s\n", info.Service)
	fmt.Fprintf(stdout, "Method  : %s\n", info.Method)
	fmt.Fprintf(stdout, "Desc    : %s\n", info.Description)
	fmt.Fprintf(stdout, "Input   : %s\n", info.InputType)
	for _, field := range info.InputFields {
		fmt.Fprintf(stdout, "    %s\n", field)
	}
	fmt.Fprintf(stdout, "Output  : %s\n", info.OutputType)
	for _, field := range info.OutputFields {
		fmt.Fprintf(stdout, "    %s\n", field)
	}
	return nil
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<none>"
	}
	return t.String()
}

// structFields renders "name type" per field of a struct (or pointer to
// struct), using JSON names when tagged.
func structFields(t reflect.Type) []string {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var ret []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" && tag != "-" {
			name = tag
		}
		ret = append(ret, name+" "+f.Type.String())
	}
	return ret
}
