// Package jsonez parses and writes jsonez, a relaxed JSON dialect meant for
// hand-edited configuration files.
//
// Compared to JSON, jsonez accepts:
//
//   - unquoted keys made of letters, digits and underscores;
//   - '=' as well as ':' between a key and its value;
//   - trailing commas in objects and arrays;
//   - line comments starting with // and block comments between /* and */;
//   - a document without the braces around the root object.
//
// There is no null. Values are objects, arrays, strings, integers, floats and
// booleans.
//
// The package offers two workflows.
//
// # Document trees
//
// Parse builds a tree of *Node values that keeps member order and the
// distinction between integers and floats. Trees can also be built with
// NewRoot and the New* constructors, and are written back with ToText or
// Marshal:
//
//	root, err := jsonez.ParseString(`
//		host = "localhost",
//		port = 8080,
//		tags = ["a", "b",],
//	`)
//	if err != nil {
//		// err is a *errors.ParseError with line and column
//	}
//	port, _ := root.Find("port").Int()
//
//	out, err := jsonez.ToText(root, jsonez.QuoteKeys(false), jsonez.UseEqualSign(true))
//
// # Go values
//
// Unmarshal and Marshal convert between jsonez text and Go values, in the
// manner of encoding/json:
//
//	type Config struct {
//		Host string `jsonez:"host"`
//		Port int    `jsonez:"port,omitempty"`
//	}
//
//	var cfg Config
//	if err := jsonez.Unmarshal(data, &cfg); err != nil {
//		// handle error
//	}
//
// Parse errors can be observed without inspecting return values by passing
// a Reporter with WithReporter; package report has Reporters that log
// through go-kit or print compiler-style diagnostics.
package jsonez
