package jsonez

import (
	"encoding"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/ZenToad/jsonez/internal/mapper"
)

// Unmarshaler is the interface implemented by types that can decode a
// jsonez node into themselves.
type Unmarshaler interface {
	UnmarshalJSONEZ(n *Node) error
}

// Decoder reads and decodes a jsonez document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input, parses it and stores the result in the
// value pointed to by v. See Unmarshal for the conversion rules.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("jsonez: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v, d.opts...)
}

// Decode stores the value of n in the value pointed to by v. See Unmarshal
// for the conversion rules.
func (n *Node) Decode(v any, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	return decode(n, v, o)
}

func decode(n *Node, v any, o *options) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidUnmarshalError{Type: reflect.TypeOf(v)}
	}
	if n == nil {
		n = NewRoot()
	}
	ds := &decodeState{maxDepth: o.maxDepth}
	return ds.mapValue(n, rv.Elem())
}

type decodeState struct {
	depth    int
	maxDepth int
}

var nodePtrType = reflect.TypeFor[*Node]()

// enter counts one level of object or array nesting. Callers undo it with
// leave.
func (ds *decodeState) enter() error {
	ds.depth++
	if ds.depth > ds.maxDepth {
		return fmt.Errorf("jsonez: maximum nesting depth of %d exceeded", ds.maxDepth)
	}
	return nil
}

func (ds *decodeState) leave() { ds.depth-- }

func (ds *decodeState) mapValue(n *Node, rv reflect.Value) error { //nolint:gocyclo
	switch rv.Type() {
	case nodeType:
		rv.Set(reflect.ValueOf(n.Clone()).Elem())
		return nil
	case nodePtrType:
		rv.Set(reflect.ValueOf(n.Clone()))
		return nil
	}

	handled, err := ds.tryCustomUnmarshal(n, rv)
	if handled || err != nil {
		return err
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return ds.mapValue(n, rv.Elem())
	}
	if rv.Kind() == reflect.Interface {
		return ds.mapInterface(n, rv)
	}

	switch v := n.val.(type) {
	case nil, *object:
		switch rv.Kind() {
		case reflect.Struct:
			return ds.mapStruct(n, rv)
		case reflect.Map:
			return ds.mapMap(n, rv)
		}
	case *array:
		switch rv.Kind() {
		case reflect.Slice:
			return ds.mapSlice(v, rv)
		case reflect.Array:
			return ds.mapArray(v, rv)
		}
	case stringValue:
		if rv.Kind() == reflect.String {
			rv.SetString(string(v))
			return nil
		}
	case integerValue:
		return mapInteger(int64(v), rv)
	case floatValue:
		if k := rv.Kind(); k == reflect.Float32 || k == reflect.Float64 {
			if rv.OverflowFloat(float64(v)) {
				return &UnmarshalTypeError{Value: "float " + strconv.FormatFloat(float64(v), 'g', -1, 64), Type: rv.Type()}
			}
			rv.SetFloat(float64(v))
			return nil
		}
	case boolValue:
		if rv.Kind() == reflect.Bool {
			rv.SetBool(bool(v))
			return nil
		}
	}
	return &UnmarshalTypeError{Value: n.Kind().String(), Type: rv.Type()}
}

// tryCustomUnmarshal uses an Unmarshaler, or an encoding.TextUnmarshaler
// for string nodes, when rv implements one. It reports whether one was
// used.
func (ds *decodeState) tryCustomUnmarshal(n *Node, rv reflect.Value) (bool, error) {
	if !rv.CanAddr() {
		return false, nil
	}
	pv := rv.Addr()
	if !pv.CanInterface() {
		return false, nil
	}

	if u, ok := pv.Interface().(Unmarshaler); ok {
		if err := u.UnmarshalJSONEZ(n); err != nil {
			return true, &UnmarshalerError{Type: pv.Type(), Err: err}
		}
		return true, nil
	}

	if u, ok := pv.Interface().(encoding.TextUnmarshaler); ok {
		s, isString := n.Str()
		if !isString {
			return false, nil
		}
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return true, &UnmarshalerError{Type: pv.Type(), Err: err}
		}
		return true, nil
	}

	return false, nil
}

func mapInteger(i int64, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(i) {
			break
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if i < 0 || rv.OverflowUint(uint64(i)) {
			break
		}
		rv.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(float64(i))
		return nil
	}
	return &UnmarshalTypeError{Value: "integer " + strconv.FormatInt(i, 10), Type: rv.Type()}
}

func (ds *decodeState) mapSlice(a *array, rv reflect.Value) error {
	if err := ds.enter(); err != nil {
		return err
	}
	defer ds.leave()

	s := reflect.MakeSlice(rv.Type(), len(a.elements), len(a.elements))
	for i, e := range a.elements {
		if err := ds.mapValue(e, s.Index(i)); err != nil {
			return err
		}
	}
	rv.Set(s)
	return nil
}

func (ds *decodeState) mapArray(a *array, rv reflect.Value) error {
	if err := ds.enter(); err != nil {
		return err
	}
	defer ds.leave()

	if rv.Len() != len(a.elements) {
		return &UnmarshalTypeError{
			Value: "array of length " + strconv.Itoa(len(a.elements)),
			Type:  rv.Type(),
		}
	}
	for i, e := range a.elements {
		if err := ds.mapValue(e, rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (ds *decodeState) mapMap(n *Node, rv reflect.Value) error {
	if err := ds.enter(); err != nil {
		return err
	}
	defer ds.leave()

	t := rv.Type()
	if t.Key().Kind() != reflect.String {
		return &UnmarshalTypeError{Value: "object", Type: t}
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(t))
	} else {
		rv.Clear()
	}
	for _, m := range n.children() {
		elem := reflect.New(t.Elem()).Elem()
		if err := ds.mapValue(m, elem); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(m.key).Convert(t.Key()), elem)
	}
	return nil
}

func (ds *decodeState) mapStruct(n *Node, rv reflect.Value) error {
	if err := ds.enter(); err != nil {
		return err
	}
	defer ds.leave()

	fields := mapper.Fields(rv.Type())
	for _, m := range n.children() {
		f := mapper.Lookup(fields, m.key)
		if f == nil {
			continue
		}
		fv, ok := mapper.FieldByIndex(rv, f.Index)
		if !ok || !fv.CanSet() {
			continue
		}
		if err := ds.mapValue(m, fv); err != nil {
			if ute, ok := err.(*UnmarshalTypeError); ok {
				if ute.Field == "" {
					ute.Field = f.Name
				} else {
					ute.Field = f.Name + "." + ute.Field
				}
			}
			return err
		}
	}
	return nil
}

// mapInterface stores the Go representation of n in an empty interface:
// map[string]any, []any, string, int64, float64 or bool.
func (ds *decodeState) mapInterface(n *Node, rv reflect.Value) error {
	if rv.NumMethod() != 0 {
		return &UnmarshalTypeError{Value: n.Kind().String(), Type: rv.Type()}
	}

	var concrete reflect.Value
	switch n.Kind() {
	case KindObject:
		concrete = reflect.New(reflect.TypeFor[map[string]any]()).Elem()
	case KindArray:
		concrete = reflect.New(reflect.TypeFor[[]any]()).Elem()
	case KindString:
		concrete = reflect.New(reflect.TypeFor[string]()).Elem()
	case KindInteger:
		concrete = reflect.New(reflect.TypeFor[int64]()).Elem()
	case KindFloat:
		concrete = reflect.New(reflect.TypeFor[float64]()).Elem()
	case KindBool:
		concrete = reflect.New(reflect.TypeFor[bool]()).Elem()
	}
	if err := ds.mapValue(n, concrete); err != nil {
		return err
	}
	rv.Set(concrete)
	return nil
}
