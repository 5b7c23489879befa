package jsonez

import (
	"iter"
	"slices"
	"strconv"
)

// Kind identifies which value a Node holds.
type Kind uint8

const (
	KindObject Kind = iota // object
	KindArray              // array
	KindString             // string
	KindInteger            // integer
	KindFloat              // float
	KindBool               // bool
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is an element of a document tree: an object, an array or a scalar
// value, together with the key it is stored under in its parent object.
//
// The zero Node is an empty object and can be used as a root.
type Node struct {
	key string
	val value
}

// value is implemented by exactly one type per Kind.
type value interface {
	kind() Kind
}

type object struct{ members []*Node }

type array struct{ elements []*Node }

type (
	stringValue  string
	integerValue int64
	floatValue   float64
	boolValue    bool
)

func (*object) kind() Kind      { return KindObject }
func (*array) kind() Kind       { return KindArray }
func (stringValue) kind() Kind  { return KindString }
func (integerValue) kind() Kind { return KindInteger }
func (floatValue) kind() Kind   { return KindFloat }
func (boolValue) kind() Kind    { return KindBool }

// Key returns the member key of n. It is empty for the root and for array
// elements.
func (n *Node) Key() string {
	return n.key
}

// Kind returns the kind of value n holds.
func (n *Node) Kind() Kind {
	if n.val == nil {
		return KindObject
	}
	return n.val.kind()
}

// IsContainer reports whether n is an object or an array.
func (n *Node) IsContainer() bool {
	k := n.Kind()
	return k == KindObject || k == KindArray
}

func (n *Node) children() []*Node {
	switch v := n.val.(type) {
	case *object:
		return v.members
	case *array:
		return v.elements
	}
	return nil
}

// Len returns the number of members of an object or elements of an array.
// It returns 0 for scalar nodes.
func (n *Node) Len() int {
	return len(n.children())
}

// Child returns the i'th child of n, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	c := n.children()
	if i < 0 || i >= len(c) {
		return nil
	}
	return c[i]
}

// Children returns a copy of the children of n in insertion order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children())
}

// All returns an iterator over the children of n in insertion order.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children() {
			if !yield(c) {
				return
			}
		}
	}
}

// Find returns the first member of object n stored under key. Only the
// direct members of n are searched. Find returns nil if n is nil, is not
// an object or has no such member.
func (n *Node) Find(key string) *Node {
	if n == nil || n.Kind() != KindObject {
		return nil
	}
	for _, m := range n.children() {
		if m.key == key {
			return m
		}
	}
	return nil
}

// Find is the function form of [Node.Find].
func Find(parent *Node, key string) *Node {
	return parent.Find(key)
}

// Str returns the value of a string node.
func (n *Node) Str() (string, bool) {
	v, ok := n.val.(stringValue)
	return string(v), ok
}

// Int returns the value of an integer node.
func (n *Node) Int() (int64, bool) {
	v, ok := n.val.(integerValue)
	return int64(v), ok
}

// Float returns the value of a float node.
func (n *Node) Float() (float64, bool) {
	v, ok := n.val.(floatValue)
	return float64(v), ok
}

// Number returns the value of an integer or float node as a float64.
func (n *Node) Number() (float64, bool) {
	switch v := n.val.(type) {
	case integerValue:
		return float64(v), true
	case floatValue:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the value of a bool node.
func (n *Node) Bool() (bool, bool) {
	v, ok := n.val.(boolValue)
	return bool(v), ok
}

// Interface returns the value of n as plain Go data: map[string]any for
// objects, []any for arrays, and string, int64, float64 or bool for
// scalars. Member order is lost; when an object repeats a key the last
// member wins.
func (n *Node) Interface() any {
	switch v := n.val.(type) {
	case nil:
		return map[string]any{}
	case *object:
		m := make(map[string]any, len(v.members))
		for _, c := range v.members {
			m[c.key] = c.Interface()
		}
		return m
	case *array:
		a := make([]any, len(v.elements))
		for i, c := range v.elements {
			a[i] = c.Interface()
		}
		return a
	case stringValue:
		return string(v)
	case integerValue:
		return int64(v)
	case floatValue:
		return float64(v)
	case boolValue:
		return bool(v)
	}
	return nil
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{key: n.key}
	switch v := n.val.(type) {
	case *object:
		o := &object{members: make([]*Node, len(v.members))}
		for i, m := range v.members {
			o.members[i] = m.Clone()
		}
		c.val = o
	case *array:
		a := &array{elements: make([]*Node, len(v.elements))}
		for i, e := range v.elements {
			a.elements[i] = e.Clone()
		}
		c.val = a
	default:
		c.val = v
	}
	return c
}

// Equal reports whether n and o hold the same key, kind and value, with
// equal children in the same order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.key != o.key || n.Kind() != o.Kind() {
		return false
	}
	if !n.IsContainer() {
		return n.val == o.val
	}
	a, b := n.children(), o.children()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Free releases the subtree rooted at n: every descendant is detached and
// emptied, and n becomes an empty object. Free is safe to call on nil and
// on an empty tree. Nodes of a freed subtree must not be used afterwards.
func Free(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.children() {
		Free(c)
	}
	n.key = ""
	n.val = nil
}
