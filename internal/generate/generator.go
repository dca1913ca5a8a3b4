// Package generate emits the generated parts of the model from a set of
// definitions: the resource type enumeration, value set enumerations and
// per-resource boilerplate.
package generate

import (
	"os"
	"path/filepath"
	"sort"

	. "github.com/dave/jennifer/jen"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const moduleName = "github.com/fastfhir/fhir-r5-go"

// Definitions is the input of the generators.
type Definitions struct {
	// ResourceTypes are all resource type names of the release.
	ResourceTypes []string `json:"resourceTypes"`
	// Resources are the resource types implemented in model/r5.
	Resources []string   `json:"resources"`
	ValueSets []ValueSet `json:"valueSets"`
}

// ValueSet is a closed set of codes bound to a code element.
type ValueSet struct {
	Name     string    `json:"name"`
	Doc      string    `json:"doc"`
	Concepts []Concept `json:"concepts"`
}

// Concept is a single code of a value set.
type Concept struct {
	Code    string `json:"code"`
	Display string `json:"display"`
}

// Generator writes code into files obtained from f. pkgPath is relative to
// the module root, e.g. "model/r5".
type Generator interface {
	Generate(f func(fileName string, pkgPath string) *File, defs Definitions)
}

// NoOpGenerator generates nothing and can be embedded to build generators.
type NoOpGenerator struct{}

func (NoOpGenerator) Generate(func(string, string) *File, Definitions) {}

type fileKey struct {
	name, pkgPath string
}

// GenerateAll runs the generators and writes the files below outDir.
func GenerateAll(defs Definitions, outDir string, generators ...Generator) error {
	files := map[fileKey]*File{}
	get := func(fileName string, pkgPath string) *File {
		key := fileKey{fileName, pkgPath}
		if f, ok := files[key]; ok {
			return f
		}
		f := NewFilePathName(moduleName+"/"+pkgPath, filepath.Base(pkgPath))
		f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
		files[key] = f
		return f
	}

	for _, g := range generators {
		g.Generate(get, defs)
	}

	keys := make([]fileKey, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].pkgPath != keys[j].pkgPath {
			return keys[i].pkgPath < keys[j].pkgPath
		}
		return keys[i].name < keys[j].name
	})

	for _, k := range keys {
		dir := filepath.Join(outDir, filepath.FromSlash(k.pkgPath))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
		path := filepath.Join(dir, k.name+"_gen.go")
		log.Info().Str("file", path).Msg("writing")
		if err := files[k].Save(path); err != nil {
			return errors.Wrapf(err, "save %s", path)
		}
	}
	return nil
}
