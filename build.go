package jsonez

import "math"

// NewRoot returns an empty object to be used as the root of a new document.
func NewRoot() *Node {
	return &Node{val: &object{}}
}

// NewObject appends an empty object to parent and returns it.
//
// All New* constructors append the new node after the existing children
// of parent. If parent is an array the key is ignored, as array elements
// are unkeyed. They panic if parent is nil or a scalar node.
func NewObject(parent *Node, key string) *Node {
	return parent.add(key, &object{})
}

// NewArray appends an empty array to parent and returns it.
func NewArray(parent *Node, key string) *Node {
	return parent.add(key, &array{})
}

// NewBool appends a bool to parent and returns it.
func NewBool(parent *Node, key string, v bool) *Node {
	return parent.add(key, boolValue(v))
}

// NewInteger appends an integer to parent and returns it.
func NewInteger(parent *Node, key string, v int64) *Node {
	return parent.add(key, integerValue(v))
}

// NewFloat appends a float to parent and returns it.
func NewFloat(parent *Node, key string, v float64) *Node {
	return parent.add(key, floatValue(v))
}

// NewNumber appends a number to parent and returns it. Whole numbers that
// fit in an int64 are stored as integers, anything else as a float.
func NewNumber(parent *Node, key string, v float64) *Node {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return NewInteger(parent, key, int64(v))
	}
	return NewFloat(parent, key, v)
}

// NewString appends a string to parent and returns it. The value is stored
// as given. When the document is serialized, quotes, backslashes and
// \b, \f, \n, \r, \t are escaped; the text has no escape for other control
// characters or DEL, so those bytes are left out of the output.
func NewString(parent *Node, key string, v string) *Node {
	return parent.add(key, stringValue(v))
}

func (n *Node) add(key string, v value) *Node {
	return n.attach(key, &Node{val: v})
}

// attach appends child to n under key and returns it.
func (n *Node) attach(key string, child *Node) *Node {
	if n == nil {
		panic("jsonez: add to nil parent")
	}
	child.key = key
	switch p := n.val.(type) {
	case nil:
		n.val = &object{members: []*Node{child}}
	case *object:
		p.members = append(p.members, child)
	case *array:
		child.key = ""
		p.elements = append(p.elements, child)
	default:
		panic("jsonez: cannot add a child to a " + n.Kind().String() + " node")
	}
	return child
}
