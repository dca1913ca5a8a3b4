// Command fhirtool parses, validates and creates FHIR R5 resources.
package main

import (
	"os"

	"github.com/fastfhir/fhir-r5-go/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
