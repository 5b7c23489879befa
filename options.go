package jsonez

import "fmt"

// Option configures parsing, decoding or encoding. Options that do not
// apply to an operation are ignored by it.
type Option func(*options) error

type options struct {
	maxDepth int
	reporter Reporter

	quoteKeys  bool
	indent     int
	equalSign  bool
	rootObject bool
	floatPrec  int
}

const (
	defaultMaxDepth  = 1000
	defaultIndent    = 3
	defaultFloatPrec = -1
)

func newOptions(opts []Option) (*options, error) {
	o := &options{
		maxDepth:   defaultMaxDepth,
		quoteKeys:  true,
		indent:     defaultIndent,
		rootObject: true,
		floatPrec:  defaultFloatPrec,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth sets the maximum nesting depth of objects and arrays accepted
// by the parser, the decoder and FromValue. The root object counts as one
// level. The default is 1000.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jsonez: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// WithReporter sets the Reporter that receives the parse error, if any.
func WithReporter(r Reporter) Option {
	return func(o *options) error {
		o.reporter = r
		return nil
	}
}

// QuoteKeys controls whether every key is written in double quotes. When
// false, only keys that are not made of letters, digits and underscores
// are quoted. The default is true.
func QuoteKeys(quote bool) Option {
	return func(o *options) error {
		o.quoteKeys = quote
		return nil
	}
}

// Indent sets the number of spaces per nesting level. The default is 3.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("jsonez: indent spaces cannot be negative")
		}
		o.indent = spaces
		return nil
	}
}

// UseEqualSign writes "key = value" instead of "key: value".
func UseEqualSign(use bool) Option {
	return func(o *options) error {
		o.equalSign = use
		return nil
	}
}

// AddRootObject controls whether the members of the root are wrapped in
// braces. The default is true.
func AddRootObject(add bool) Option {
	return func(o *options) error {
		o.rootObject = add
		return nil
	}
}

// FloatPrecision sets the number of decimals written for floats. The
// default, -1, writes the shortest text that parses back to the same
// value. FloatPrecision(6) matches printf's %f. Floats are always written
// with a '.' or an exponent, so FloatPrecision(0) writes 3 as "3.0".
func FloatPrecision(decimals int) Option {
	return func(o *options) error {
		if decimals < -1 {
			return fmt.Errorf("jsonez: float precision must be -1 or more")
		}
		o.floatPrec = decimals
		return nil
	}
}
