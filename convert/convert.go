// Package convert translates jsonez trees into strict JSON and YAML while
// keeping member order.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/ZenToad/jsonez"
)

// ToJSON returns n as JSON. Members keep their document order and floats
// keep their decimal point. An indent of 0 produces compact output.
func ToJSON(n *jsonez.Node, indent int) ([]byte, error) {
	if indent < 0 {
		return nil, fmt.Errorf("convert: indent cannot be negative")
	}
	if n == nil {
		n = jsonez.NewRoot()
	}

	var buf bytes.Buffer
	if err := appendJSON(&buf, n); err != nil {
		return nil, err
	}
	if indent == 0 {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, n *jsonez.Node) error {
	switch n.Kind() {
	case jsonez.KindObject:
		buf.WriteByte('{')
		for i, c := range n.Children() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendString(buf, c.Key()); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := appendJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case jsonez.KindArray:
		buf.WriteByte('[')
		for i, c := range n.Children() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case jsonez.KindString:
		s, _ := n.Str()
		return appendString(buf, s)
	case jsonez.KindInteger:
		i, _ := n.Int()
		buf.WriteString(strconv.FormatInt(i, 10))
	case jsonez.KindFloat:
		// jsonez float text is valid JSON number syntax.
		s, err := jsonez.ToText(n)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case jsonez.KindBool:
		b, _ := n.Bool()
		buf.WriteString(strconv.FormatBool(b))
	}
	return nil
}

func appendString(buf *bytes.Buffer, s string) error {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// ToYAML returns n as a YAML document. Objects become ordered mappings. An
// indent of 0 produces flow style.
func ToYAML(n *jsonez.Node, indent int) ([]byte, error) {
	return ToYAMLContext(context.Background(), n, indent)
}

// ToYAMLContext is ToYAML with a context passed to the YAML encoder.
func ToYAMLContext(ctx context.Context, n *jsonez.Node, indent int) ([]byte, error) {
	if indent < 0 {
		return nil, fmt.Errorf("convert: indent cannot be negative")
	}
	if n == nil {
		n = jsonez.NewRoot()
	}

	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}
	return yaml.MarshalContext(ctx, yamlValue(n), opts...)
}

func yamlValue(n *jsonez.Node) any {
	switch n.Kind() {
	case jsonez.KindObject:
		m := make(yaml.MapSlice, 0, n.Len())
		for _, c := range n.Children() {
			m = append(m, yaml.MapItem{Key: c.Key(), Value: yamlValue(c)})
		}
		return m
	case jsonez.KindArray:
		s := make([]any, 0, n.Len())
		for _, c := range n.Children() {
			s = append(s, yamlValue(c))
		}
		return s
	}
	return n.Interface()
}
