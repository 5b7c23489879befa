package jsonez

import (
	"reflect"
	"strings"
)

// An UnsupportedValueError is returned when encoding a value that has no
// jsonez text, such as a NaN float or a nil pointer in a slice.
type UnsupportedValueError struct {
	Value reflect.Value
	Str   string
}

func (e *UnsupportedValueError) Error() string {
	return "jsonez: unsupported value: " + e.Str
}

// An UnsupportedTypeError is returned by Marshal when attempting to encode
// a value of an unsupported type.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "jsonez: unsupported type: " + e.Type.String()
}

// A MarshalerError represents an error from calling a MarshalJSONEZ or
// MarshalText method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "jsonez: error calling marshaler for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }

// An UnmarshalerError represents an error from calling an UnmarshalJSONEZ
// or UnmarshalText method.
type UnmarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *UnmarshalerError) Error() string {
	return "jsonez: error calling unmarshaler for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *UnmarshalerError) Unwrap() error { return e.Err }

// An UnmarshalTypeError describes a value that was not appropriate for the
// Go value it was decoded into.
type UnmarshalTypeError struct {
	Value string       // description of the value, "string", "integer 300"
	Type  reflect.Type // type of the Go value it could not be assigned to
	Field string       // dotted path of the struct field holding the value
}

func (e *UnmarshalTypeError) Error() string {
	var b strings.Builder
	b.WriteString("jsonez: cannot unmarshal ")
	b.WriteString(e.Value)
	b.WriteString(" into Go value of type ")
	b.WriteString(e.Type.String())
	if e.Field != "" {
		b.WriteString(" (field ")
		b.WriteString(e.Field)
		b.WriteString(")")
	}
	return b.String()
}

// An InvalidUnmarshalError describes an invalid argument passed to
// Unmarshal or Decode. The argument must be a non-nil pointer.
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "jsonez: Unmarshal(nil)"
	}
	if e.Type.Kind() != reflect.Pointer {
		return "jsonez: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "jsonez: Unmarshal(nil " + e.Type.String() + ")"
}
