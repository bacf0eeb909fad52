package kvaction

import "github.com/viant/burrowkv/kv"

// StoreInput selects a named store; an empty name selects the default store.
type StoreInput struct {
	Store string `json:"store,omitempty" description:"store name, defaults to 'default'"`
}

type KeyInput struct {
	Store string `json:"store,omitempty" description:"store name, defaults to 'default'"`
	Key   string `json:"key" required:"true"`
}

type SetInput struct {
	Store string `json:"store,omitempty" description:"store name, defaults to 'default'"`
	Key   string `json:"key" required:"true"`
	Value string `json:"value"`
}

type DeleteInput struct {
	Store  string `json:"store,omitempty" description:"store name, defaults to 'default'"`
	Key    string `json:"key" required:"true"`
	Strict bool   `json:"strict,omitempty" description:"fail when the key does not exist"`
}

type ImportInput struct {
	Store string `json:"store,omitempty" description:"store name, defaults to 'default'"`
	JSON  string `json:"json" required:"true" description:"JSON object of string values replacing the store content"`
}

type SnapshotInput struct {
	Store string `json:"store,omitempty" description:"store name, defaults to 'default'"`
	URL   string `json:"url,omitempty" description:"snapshot location, defaults to the store snapshotURL"`
}

type GetOutput struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

type DeleteOutput struct {
	Existed bool `json:"existed"`
}

type ContainsOutput struct {
	Found bool `json:"found"`
}

type KeysOutput struct {
	Keys []string `json:"keys"`
}

type ValuesOutput struct {
	Values []string `json:"values"`
}

type ItemsOutput struct {
	Items []kv.Entry `json:"items"`
}

type SizeOutput struct {
	Size int `json:"size"`
}

type ExportOutput struct {
	JSON string `json:"json"`
}

type StatusOutput struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
}

const statusOK = "ok"
