package kv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// encodeObject renders entries as one JSON object, members in slice order.
// Keys and values must be valid UTF-8; anything else fails with ErrInvalidUTF8
// rather than being rewritten to U+FFFD.
func encodeObject(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	writeString := func(s string) error {
		if !utf8.ValidString(s) {
			return fmt.Errorf("%w: %q", ErrInvalidUTF8, s)
		}
		if err := enc.Encode(s); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1) // Encode terminates every value with '\n'
		return nil
	}

	buf.WriteByte('{')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := writeString(entry.Key); err != nil {
			return nil, err
		}
		buf.WriteString(": ")
		if err := writeString(entry.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeObject parses a flat JSON object of string members, keeping document order.
func decodeObject(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	fail := func(err error) error {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &ParseError{Offset: dec.InputOffset(), Err: err}
	}

	token, err := dec.Token()
	if err != nil {
		return nil, fail(err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fail(ErrNotObject)
	}

	var entries []Entry
	for dec.More() {
		token, err = dec.Token()
		if err != nil {
			return nil, fail(err)
		}
		key, ok := token.(string)
		if !ok {
			return nil, fail(fmt.Errorf("unexpected member name %v", token))
		}
		if token, err = dec.Token(); err != nil {
			return nil, fail(err)
		}
		value, ok := token.(string)
		if !ok {
			return nil, fail(fmt.Errorf("%w: %q", ErrNotString, key))
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	if _, err = dec.Token(); err != nil { // closing '}'
		return nil, fail(err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level object")
		}
		return nil, fail(err)
	}
	return entries, nil
}
