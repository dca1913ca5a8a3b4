package generate

import (
	. "github.com/dave/jennifer/jen"
)

// StringerGenerator implements json.Marshaler and fmt.Stringer for resources.
type StringerGenerator struct {
	NoOpGenerator
}

func (g StringerGenerator) Generate(f func(fileName string, pkgPath string) *File, defs Definitions) {
	file := f("stringer", "model/r5")
	for _, name := range defs.Resources {
		file.Func().Params(Id("r").Op("*").Id(name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
			Return(Qual(moduleName+"/model", "Marshal").Call(Id("r"))),
		)

		file.Func().Params(Id("r").Op("*").Id(name)).Id("String").Params().String().Block(
			List(Id("buf"), Id("err")).Op(":=").Qual("encoding/json", "MarshalIndent").Params(Id("r"), Lit(""), Lit("  ")),
			If(Id("err").Op("!=").Nil()).Block(
				Return(Lit("null")),
			),
			Return(Id("string").Params(Id("buf"))),
		)
	}
}
