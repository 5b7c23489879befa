package jsonez

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	root := NewRoot()
	NewString(root, "name", "jsonez")
	NewInteger(root, "n", 42)
	NewFloat(root, "f", 1.5)
	NewBool(root, "ok", true)
	list := NewArray(root, "list")
	NewInteger(list, "", 1)
	NewString(list, "", "two")
	NewInteger(NewObject(list, ""), "x", 1)
	NewObject(NewObject(root, "obj"), "inner")
	NewArray(root, "empty")
	return root
}

func TestFormatter(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []Option
		expected string
	}{
		{
			name: "defaults",
			expected: `{
   "name": "jsonez",
   "n": 42,
   "f": 1.5,
   "ok": true,
   "list": [1, "two", {
      "x": 1
   }],
   "obj": {
      "inner": {}
   },
   "empty": []
}
`,
		},
		{
			name: "raw keys, equal sign, no root braces",
			opts: []Option{QuoteKeys(false), UseEqualSign(true), AddRootObject(false), Indent(2)},
			expected: `name = "jsonez",
n = 42,
f = 1.5,
ok = true,
list = [1, "two", {
  x = 1
}],
obj = {
  inner = {}
},
empty = []
`,
		},
		{
			name: "no indentation",
			opts: []Option{Indent(0), QuoteKeys(false)},
			expected: `{
name: "jsonez",
n: 42,
f: 1.5,
ok: true,
list: [1, "two", {
x: 1
}],
obj: {
inner: {}
},
empty: []
}
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := ToText(sampleTree(), tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out)
		})
	}
}

func TestFormatter_EmptyRoot(t *testing.T) {
	out, err := ToText(NewRoot())
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)

	out, err = ToText(NewRoot(), AddRootObject(false))
	require.NoError(t, err)
	require.Equal(t, "", out)

	out, err = ToText(nil)
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)

	out, err = ToText(&Node{})
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)
}

func TestFormatter_NonObjectNode(t *testing.T) {
	root := sampleTree()

	out, err := ToText(root.Find("list"))
	require.NoError(t, err)
	require.Equal(t, "[1, \"two\", {\n   \"x\": 1\n}]", out)

	out, err = ToText(root.Find("n"))
	require.NoError(t, err)
	require.Equal(t, "42", out)
}

func TestFormatter_Keys(t *testing.T) {
	root := NewRoot()
	NewInteger(root, "plain_1", 1)
	NewInteger(root, "with space", 2)
	NewInteger(root, "", 3)
	NewInteger(root, `q"uote`, 4)

	out, err := ToText(root, QuoteKeys(false), AddRootObject(false))
	require.NoError(t, err)
	require.Equal(t, "plain_1: 1,\n\"with space\": 2,\n\"\": 3,\n\"q\\\"uote\": 4\n", out)
}

func TestWriteQuoted(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"a/b", `"a/b"`},
		{"héllo", `"héllo"`},
		{"bell\x07", `"bell"`},
		{"a\x01b\x7fc\x00d\x1f", `"abcd"`},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		writeQuoted(&buf, tc.in)
		require.Equal(t, tc.want, buf.String())
	}
}

func TestFormatFloat(t *testing.T) {
	testCases := []struct {
		f    float64
		prec int
		want string
	}{
		{1.5, -1, "1.5"},
		{3, -1, "3.0"},
		{-2, -1, "-2.0"},
		{0, -1, "0.0"},
		{0.1, -1, "0.1"},
		{123456.789, -1, "123456.789"},
		{0.000001, -1, "0.000001"},
		{1e-7, -1, "1e-7"},
		{1.5e-10, -1, "1.5e-10"},
		{1e20, -1, "100000000000000000000.0"},
		{1e21, -1, "1e+21"},
		{1.5, 6, "1.500000"},
		{3, 6, "3.000000"},
		{3.7, 0, "4.0"},
		{2.26, 1, "2.3"},
	}

	for _, tc := range testCases {
		got, err := formatFloat(tc.f, tc.prec)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "formatFloat(%v, %d)", tc.f, tc.prec)
	}

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := formatFloat(f, -1)
		var uerr *UnsupportedValueError
		require.ErrorAs(t, err, &uerr)
	}
}

func TestFormatter_FloatPrecisionOption(t *testing.T) {
	root := NewRoot()
	NewFloat(root, "pi", 3.14159)

	out, err := ToText(root, FloatPrecision(2), AddRootObject(false))
	require.NoError(t, err)
	require.Equal(t, "\"pi\": 3.14\n", out)

	_, err = ToText(root, FloatPrecision(-2))
	require.ErrorContains(t, err, "float precision must be -1 or more")
}

func TestFormatter_NaNFails(t *testing.T) {
	root := NewRoot()
	NewFloat(root, "bad", math.NaN())

	_, err := ToText(root)
	var uerr *UnsupportedValueError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "jsonez: unsupported value: NaN", err.Error())

	var buf bytes.Buffer
	err = NewEncoder(&buf).Encode(root)
	require.Error(t, err)
	require.Zero(t, buf.Len(), "nothing is written on failure")
}

func TestFormatter_InvalidIndent(t *testing.T) {
	_, err := ToText(NewRoot(), Indent(-1))
	require.ErrorContains(t, err, "indent spaces cannot be negative")
}
