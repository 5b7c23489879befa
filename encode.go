package jsonez

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/ZenToad/jsonez/internal/mapper"
)

// Marshaler is the interface implemented by types that can build their own
// jsonez node.
type Marshaler interface {
	MarshalJSONEZ() (*Node, error)
}

// Encoder writes jsonez documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the jsonez text of v to the stream. v is either a *Node or
// a Go value accepted by FromValue. The text is built in memory first, so
// nothing is written when encoding fails.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	n, ok := v.(*Node)
	if !ok || n == nil {
		if n, err = fromValue(v, o); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := newFormatter(&buf, o).format(n); err != nil {
		return err
	}
	_, err = e.w.Write(buf.Bytes())
	return err
}

// ToText returns the jsonez text of the tree rooted at n. A nil n is
// written as an empty document.
func ToText(n *Node, opts ...Option) (string, error) {
	o, err := newOptions(opts)
	if err != nil {
		return "", err
	}
	if n == nil {
		n = NewRoot()
	}
	var buf bytes.Buffer
	if err := newFormatter(&buf, o).format(n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FromValue converts a Go value into a Node tree.
//
// Structs become objects with one member per exported field, named by the
// field's `jsonez` tag or its Go name, in declaration order. Maps with
// string keys become objects with their members sorted by key. Slices and
// arrays become arrays, and nil slices and maps become empty containers.
// Booleans, integers, floats and strings map to the matching scalar kinds.
// Values implementing Marshaler or encoding.TextMarshaler encode
// themselves, and *Node values are copied into the tree.
//
// Nil pointers and interfaces are left out of objects. A nil value where an
// array element or the result is expected is an *UnsupportedValueError.
func FromValue(v any, opts ...Option) (*Node, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return fromValue(v, o)
}

func fromValue(v any, o *options) (*Node, error) {
	e := &encodeState{maxDepth: o.maxDepth}
	n, err := e.node(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &UnsupportedValueError{Str: "nil"}
	}
	return n, nil
}

type encodeState struct {
	depth    int
	maxDepth int
}

// enter counts one level of nesting: a container or a pointer. Pointer
// levels are counted so that reference cycles end in an error.
func (e *encodeState) enter(v reflect.Value) error {
	e.depth++
	if e.depth > e.maxDepth {
		return &UnsupportedValueError{
			Value: v,
			Str:   fmt.Sprintf("maximum nesting depth of %d exceeded", e.maxDepth),
		}
	}
	return nil
}

func (e *encodeState) leave() { e.depth-- }

var nodeType = reflect.TypeFor[Node]()

// node returns the detached node for v, or nil if v is a nil pointer or
// interface.
func (e *encodeState) node(v reflect.Value) (*Node, error) { //nolint:gocyclo
	if !v.IsValid() {
		return nil, nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
	}

	switch {
	case v.Type() == nodeType:
		n := v.Interface().(Node)
		return n.Clone(), nil
	case v.Type() == reflect.PointerTo(nodeType):
		return v.Interface().(*Node).Clone(), nil
	}

	if m, ok := asInterface[Marshaler](v); ok {
		n, err := m.MarshalJSONEZ()
		if err != nil {
			return nil, &MarshalerError{Type: v.Type(), Err: err}
		}
		if n == nil {
			return nil, &MarshalerError{Type: v.Type(), Err: fmt.Errorf("MarshalJSONEZ returned a nil node")}
		}
		return n.Clone(), nil
	}
	if m, ok := asInterface[encoding.TextMarshaler](v); ok {
		b, err := m.MarshalText()
		if err != nil {
			return nil, &MarshalerError{Type: v.Type(), Err: err}
		}
		return &Node{val: stringValue(b)}, nil
	}

	switch v.Kind() {
	case reflect.Interface:
		return e.node(v.Elem())
	case reflect.Pointer:
		if err := e.enter(v); err != nil {
			return nil, err
		}
		defer e.leave()
		return e.node(v.Elem())
	case reflect.Bool:
		return &Node{val: boolValue(v.Bool())}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Node{val: integerValue(v.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, &UnsupportedValueError{Value: v, Str: strconv.FormatUint(u, 10) + " overflows int64"}
		}
		return &Node{val: integerValue(int64(u))}, nil
	case reflect.Float32:
		// Go through the shortest float32 text so 0.1 stays 0.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(v.Float(), 'g', -1, 32), 64)
		return &Node{val: floatValue(f)}, nil
	case reflect.Float64:
		return &Node{val: floatValue(v.Float())}, nil
	case reflect.String:
		return &Node{val: stringValue(v.String())}, nil
	case reflect.Struct:
		return e.structNode(v)
	case reflect.Map:
		return e.mapNode(v)
	case reflect.Slice, reflect.Array:
		return e.arrayNode(v)
	}
	return nil, &UnsupportedTypeError{Type: v.Type()}
}

func (e *encodeState) structNode(v reflect.Value) (*Node, error) {
	if err := e.enter(v); err != nil {
		return nil, err
	}
	defer e.leave()

	obj := NewRoot()
	for _, f := range mapper.Fields(v.Type()) {
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			// nil embedded pointer
			continue
		}
		if f.OmitEmpty && mapper.IsEmpty(fv) {
			continue
		}
		c, err := e.node(fv)
		if err != nil {
			return nil, err
		}
		if c != nil {
			obj.attach(f.Name, c)
		}
	}
	return obj, nil
}

func (e *encodeState) mapNode(v reflect.Value) (*Node, error) {
	if err := e.enter(v); err != nil {
		return nil, err
	}
	defer e.leave()

	if v.Type().Key().Kind() != reflect.String {
		return nil, &UnsupportedTypeError{Type: v.Type()}
	}

	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key().String(), val: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	obj := NewRoot()
	for _, ent := range entries {
		c, err := e.node(ent.val)
		if err != nil {
			return nil, err
		}
		if c != nil {
			obj.attach(ent.key, c)
		}
	}
	return obj, nil
}

func (e *encodeState) arrayNode(v reflect.Value) (*Node, error) {
	if err := e.enter(v); err != nil {
		return nil, err
	}
	defer e.leave()

	arr := &Node{val: &array{elements: make([]*Node, 0, v.Len())}}
	for i := 0; i < v.Len(); i++ {
		ev := v.Index(i)
		c, err := e.node(ev)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, &UnsupportedValueError{Value: ev, Str: "nil array element"}
		}
		arr.attach("", c)
	}
	return arr, nil
}

// asInterface returns v, or a pointer to v, as a T. Values that are not
// addressable are copied so pointer receivers are found as well.
func asInterface[T any](v reflect.Value) (T, bool) {
	var zero T
	if !v.CanInterface() {
		return zero, false
	}
	t := reflect.TypeFor[T]()
	if v.Type().Implements(t) {
		return v.Interface().(T), true
	}
	if v.Kind() == reflect.Pointer || !reflect.PointerTo(v.Type()).Implements(t) {
		return zero, false
	}
	pv := reflect.New(v.Type())
	if v.CanAddr() {
		pv = v.Addr()
	} else {
		pv.Elem().Set(v)
	}
	return pv.Interface().(T), true
}
