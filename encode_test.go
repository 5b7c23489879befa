package jsonez_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/ZenToad/jsonez"
	"github.com/stretchr/testify/require"
)

func TestFromValue(t *testing.T) {
	type item struct {
		Name  string  `jsonez:"name"`
		Price float32 `jsonez:"price"`
	}
	v := struct {
		Items  []item
		Counts map[string]uint8
		Ptr    *item
		Iface  any
		Array  [2]bool
	}{
		Items:  []item{{"a", 0.1}, {"b", 2}},
		Counts: map[string]uint8{"z": 1, "a": 2, "m": 3},
		Iface:  []any{1, "x"},
		Array:  [2]bool{true, false},
	}

	n, err := jsonez.FromValue(v)
	require.NoError(t, err)

	out, err := jsonez.ToText(n, jsonez.QuoteKeys(false), jsonez.Indent(2))
	require.NoError(t, err)
	require.Equal(t, `{
  Items: [{
    name: "a",
    price: 0.1
  }, {
    name: "b",
    price: 2.0
  }],
  Counts: {
    a: 2,
    m: 3,
    z: 1
  },
  Iface: [1, "x"],
  Array: [true, false]
}
`, out)

	items := n.Find("Items")
	require.Equal(t, jsonez.KindFloat, items.Child(1).Find("price").Kind())
}

func TestFromValue_Scalars(t *testing.T) {
	testCases := []struct {
		v    any
		kind jsonez.Kind
		want any
	}{
		{"s", jsonez.KindString, "s"},
		{int8(-3), jsonez.KindInteger, int64(-3)},
		{uint64(math.MaxInt64), jsonez.KindInteger, int64(math.MaxInt64)},
		{2.5, jsonez.KindFloat, 2.5},
		{true, jsonez.KindBool, true},
		{time.Duration(0), jsonez.KindInteger, int64(0)},
		{[]int(nil), jsonez.KindArray, []any{}},
		{map[string]int(nil), jsonez.KindObject, map[string]any{}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%T", tc.v), func(t *testing.T) {
			n, err := jsonez.FromValue(tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.kind, n.Kind())
			require.Equal(t, tc.want, n.Interface())
		})
	}
}

func TestFromValue_Errors(t *testing.T) {
	var uverr *jsonez.UnsupportedValueError
	var uterr *jsonez.UnsupportedTypeError

	_, err := jsonez.FromValue(nil)
	require.ErrorAs(t, err, &uverr)

	_, err = jsonez.FromValue(uint64(math.MaxUint64))
	require.ErrorAs(t, err, &uverr)
	require.EqualError(t, err, "jsonez: unsupported value: 18446744073709551615 overflows int64")

	_, err = jsonez.FromValue([]*int{nil})
	require.ErrorAs(t, err, &uverr)

	_, err = jsonez.FromValue(map[int]string{1: "a"})
	require.ErrorAs(t, err, &uterr)
	require.EqualError(t, err, "jsonez: unsupported type: map[int]string")

	_, err = jsonez.FromValue(struct{ C chan int }{C: make(chan int)})
	require.ErrorAs(t, err, &uterr)

	type cycle struct {
		Next *cycle
	}
	c := &cycle{}
	c.Next = c
	_, err = jsonez.FromValue(c, jsonez.MaxDepth(50))
	require.ErrorAs(t, err, &uverr)
	require.ErrorContains(t, err, "maximum nesting depth of 50 exceeded")
}

func TestFromValue_Nodes(t *testing.T) {
	sub, err := jsonez.ParseString(`x: 1`)
	require.NoError(t, err)

	n, err := jsonez.FromValue(map[string]any{"sub": sub, "list": []*jsonez.Node{sub.Find("x")}})
	require.NoError(t, err)

	require.True(t, n.Find("sub").Find("x") != sub.Find("x"), "nodes are copied")
	v, _ := n.Find("list").Child(0).Int()
	require.Equal(t, int64(1), v)
	require.Equal(t, "", n.Find("list").Child(0).Key())
}

type failingText struct{}

func (failingText) MarshalText() ([]byte, error) { return nil, errors.New("boom") }

type nilMarshaler struct{}

func (nilMarshaler) MarshalJSONEZ() (*jsonez.Node, error) { return nil, nil }

func TestFromValue_Marshalers(t *testing.T) {
	n, err := jsonez.FromValue(struct {
		P     point
		PP    *point
		L     level
		Stamp time.Time
	}{
		P:     point{1, 2},
		PP:    &point{3, 4},
		L:     levelWarn,
		Stamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	out, err := jsonez.ToText(n, jsonez.QuoteKeys(false), jsonez.AddRootObject(false))
	require.NoError(t, err)
	require.Equal(t, "P: [1, 2],\nPP: [3, 4],\nL: \"warn\",\nStamp: \"2024-03-01T10:00:00Z\"\n", out)

	var merr *jsonez.MarshalerError
	_, err = jsonez.FromValue(struct{ F failingText }{})
	require.ErrorAs(t, err, &merr)
	require.EqualError(t, err, "jsonez: error calling marshaler for type jsonez_test.failingText: boom")

	_, err = jsonez.FromValue(nilMarshaler{})
	require.ErrorAs(t, err, &merr)
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := jsonez.NewEncoder(&buf, jsonez.QuoteKeys(false))
	require.NoError(t, enc.Encode(map[string]int{"a": 1}))
	require.NoError(t, enc.Encode(map[string]int{"b": 2}))
	require.Equal(t, "{\n   a: 1\n}\n{\n   b: 2\n}\n", buf.String())

	buf.Reset()
	err := jsonez.NewEncoder(&buf, jsonez.Indent(-1)).Encode(map[string]int{})
	require.Error(t, err)
	require.Zero(t, buf.Len())
}

func BenchmarkEncode(b *testing.B) {
	type record struct {
		ID    int               `jsonez:"id"`
		Name  string            `jsonez:"name"`
		Score float64           `jsonez:"score"`
		Tags  []string          `jsonez:"tags"`
		Attrs map[string]string `jsonez:"attrs"`
	}
	data := make([]record, 200)
	for i := range data {
		data[i] = record{
			ID:    i,
			Name:  fmt.Sprintf("record %d", i),
			Score: float64(i) / 7,
			Tags:  []string{"a", "b", "c"},
			Attrs: map[string]string{"k": "v", "x": "y"},
		}
	}
	v := map[string]any{"records": data}

	var buf bytes.Buffer
	enc := jsonez.NewEncoder(&buf)
	b.ReportAllocs()

	for b.Loop() {
		if err := enc.Encode(v); err != nil {
			b.Fatalf("Encode failed during benchmark: %v", err)
		}
		buf.Reset()
	}
}
