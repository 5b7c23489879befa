// Package testutil gives tests access to shared sample documents.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"

	"github.com/ZenToad/jsonez"
)

// TestdataFS holds the embedded sample documents.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded sample document.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// MustParse parses the embedded document name and fails tb if it cannot be
// read or parsed.
func MustParse(tb testing.TB, name string) *jsonez.Node {
	tb.Helper()
	data, err := ReadTestData(name)
	if err != nil {
		tb.Fatal(err)
	}
	root, err := jsonez.Parse(data)
	if err != nil {
		tb.Fatalf("parse %s: %v", name, err)
	}
	return root
}
