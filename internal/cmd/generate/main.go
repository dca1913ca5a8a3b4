// Command generate writes the generated sources of the model packages.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fastfhir/fhir-r5-go/internal/generate"
)

func main() {
	definitions := flag.String("definitions", "internal/cmd/generate/definitions.json", "definitions file (.json or .zip)")
	out := flag.String("out", ".", "module root to write into")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	defs, err := readDefinitions(*definitions)
	if err != nil {
		log.Fatal().Err(err).Msg("reading definitions")
	}

	err = generate.GenerateAll(defs, *out,
		generate.ResourceTypesGenerator{},
		generate.ValueSetsGenerator{},
		generate.StringerGenerator{},
		generate.OperationOutcomeErrorGenerator{},
		generate.ModelPkgDocGenerator{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("generating")
	}
}
