package main

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/fastfhir/fhir-r5-go/internal/generate"
)

const definitionsFile = "definitions.json"

// readDefinitions reads a definitions file, either plain JSON or packed in a
// zip archive.
func readDefinitions(path string) (generate.Definitions, error) {
	if filepath.Ext(path) == ".zip" {
		return readDefinitionsFromZIP(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return generate.Definitions{}, errors.Wrap(err, "open definitions")
	}
	defer f.Close()
	return decodeDefinitions(f)
}

func readDefinitionsFromZIP(path string) (generate.Definitions, error) {
	log.Info().Str("path", path).Msg("opening zip archive")
	archive, err := zip.OpenReader(path)
	if err != nil {
		return generate.Definitions{}, errors.Wrap(err, "open zip archive")
	}
	defer archive.Close()

	file, err := archive.Open(definitionsFile)
	if err != nil {
		return generate.Definitions{}, errors.Wrapf(err, "find %s in archive", definitionsFile)
	}
	defer file.Close()
	return decodeDefinitions(file)
}

func decodeDefinitions(r io.Reader) (generate.Definitions, error) {
	var defs generate.Definitions
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return defs, errors.Wrap(err, "decode definitions")
	}
	return defs, nil
}
