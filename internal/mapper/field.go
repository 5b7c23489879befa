// Package mapper resolves the struct fields seen by the jsonez value mapping.
package mapper

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Field is an exported struct field visible to the mapping.
type Field struct {
	Name      string
	Index     []int
	Tagged    bool
	OmitEmpty bool
}

var fieldCache sync.Map // map[reflect.Type][]Field

// Fields returns the fields of struct type t in declaration order.
//
// Unexported fields and fields tagged `jsonez:"-"` are skipped. Fields of an
// untagged embedded struct, or pointer to struct, are promoted into t. When
// several fields share a name, the one declared closest to t wins; at equal
// depth a single tagged field wins, and otherwise all of them are dropped.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	type candidate struct {
		Field
		depth int
	}
	var all []candidate
	visiting := map[reflect.Type]bool{t: true}

	var walk func(t reflect.Type, idx []int, depth int)
	walk = func(t reflect.Type, idx []int, depth int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			tag := sf.Tag.Get("jsonez")
			if tag == "-" {
				continue
			}
			name, opts, _ := strings.Cut(tag, ",")
			index := append(slices.Clone(idx), i)

			if sf.Anonymous && name == "" {
				ft := sf.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					if !visiting[ft] {
						visiting[ft] = true
						walk(ft, index, depth+1)
						delete(visiting, ft)
					}
					continue
				}
			}
			if !sf.IsExported() {
				continue
			}

			f := Field{Name: sf.Name, Index: index}
			if name != "" {
				f.Name = name
				f.Tagged = true
			}
			for opts != "" {
				var opt string
				opt, opts, _ = strings.Cut(opts, ",")
				if strings.TrimSpace(opt) == "omitempty" {
					f.OmitEmpty = true
				}
			}
			all = append(all, candidate{Field: f, depth: depth})
		}
	}
	walk(t, nil, 0)

	// dominant picks the field that owns name, if any.
	dominant := func(name string) (int, bool) {
		win, minDepth, tagged := -1, -1, 0
		for i, c := range all {
			if c.Name != name {
				continue
			}
			switch {
			case minDepth == -1 || c.depth < minDepth:
				minDepth, win, tagged = c.depth, i, 0
				if c.Tagged {
					tagged = 1
				}
			case c.depth == minDepth:
				switch {
				case c.Tagged && tagged == 0:
					win, tagged = i, 1
				case c.Tagged:
					tagged++
					win = -1
				case tagged == 0:
					win = -1
				}
			}
		}
		return win, win >= 0
	}

	var fields []Field
	seen := make(map[string]bool)
	for _, c := range all {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		if i, ok := dominant(c.Name); ok {
			fields = append(fields, all[i].Field)
		}
	}
	slices.SortFunc(fields, func(a, b Field) int {
		return slices.Compare(a.Index, b.Index)
	})

	f, _ := fieldCache.LoadOrStore(t, fields)
	return f.([]Field)
}

// Lookup returns the field named key. An exact match is preferred over a
// case-insensitive one.
func Lookup(fields []Field, key string) *Field {
	for i := range fields {
		if fields[i].Name == key {
			return &fields[i]
		}
	}
	for i := range fields {
		if strings.EqualFold(fields[i].Name, key) {
			return &fields[i]
		}
	}
	return nil
}

// IsEmpty reports whether v is false, 0, a nil pointer or interface, or an
// empty array, slice, map or string.
func IsEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

// FieldByIndex returns the nested field of struct v at index, allocating
// nil embedded pointers on the way. It returns false when a nil pointer
// cannot be allocated because its field is not settable.
func FieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}
