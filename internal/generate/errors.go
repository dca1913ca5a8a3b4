package generate

import (
	"slices"

	. "github.com/dave/jennifer/jen"
)

type OperationOutcomeErrorGenerator struct {
	NoOpGenerator
}

func (g OperationOutcomeErrorGenerator) Generate(f func(fileName string, pkgPath string) *File, defs Definitions) {
	if slices.Contains(defs.Resources, "OperationOutcome") {
		implementErrorForOperationOutcome(f("operation_outcome_error", "model/r5"))
	}
}

func implementErrorForOperationOutcome(f *File) {
	f.Func().
		Params(Id("o").Op("*").Id("OperationOutcome")).
		Id("Error").
		Params().
		String().
		Block(
			Return(Id("o").Dot("String").Call()),
		)
}
