// Package testdata provides example resources for tests.
package testdata

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed examples-json/*.json
var examples embed.FS

// GetExamples returns the example documents keyed by file name.
func GetExamples() map[string][]byte {
	entries, err := fs.ReadDir(examples, "examples-json")
	if err != nil {
		panic(err)
	}
	out := make(map[string][]byte, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := examples.ReadFile(path.Join("examples-json", e.Name()))
		if err != nil {
			panic(err)
		}
		out[e.Name()] = data
	}
	return out
}

// GetExample returns a single example document; it panics if name is unknown.
func GetExample(name string) []byte {
	data, err := examples.ReadFile(path.Join("examples-json", name))
	if err != nil {
		panic(err)
	}
	return data
}
