package jsonez

import "bytes"

// Marshal returns the jsonez text of v. v is either a *Node or a Go value
// accepted by FromValue.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses data and stores the result in the value pointed to by v.
//
// Objects decode into structs, matching member keys to field names or
// `jsonez` tags exactly first and case-insensitively second, and into maps
// with string keys. Arrays decode into slices, and into Go arrays of the
// same length. Integers decode into any integer or float type they fit,
// floats into float types only. Into an empty interface, Unmarshal stores
// map[string]any, []any, string, int64, float64 or bool. *Node and Node
// targets receive a copy of the subtree. Members without a matching field
// are ignored.
func Unmarshal(data []byte, v any, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	root, err := parse(data, o)
	if err != nil {
		return err
	}
	return decode(root, v, o)
}
