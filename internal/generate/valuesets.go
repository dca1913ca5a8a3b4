package generate

import (
	"github.com/iancoleman/strcase"
	"strings"

	. "github.com/dave/jennifer/jen"
)

// ValueSetsGenerator emits an integer enumeration per value set. The zero
// value of each enumeration is the Null sentinel returned for unknown codes.
type ValueSetsGenerator struct {
	NoOpGenerator
}

func (g ValueSetsGenerator) Generate(f func(fileName string, pkgPath string) *File, defs Definitions) {
	if len(defs.ValueSets) == 0 {
		return
	}
	file := f("value_sets", "model/r5")
	for _, vs := range defs.ValueSets {
		generateValueSet(file, vs)
	}
}

func generateValueSet(f *File, vs ValueSet) {
	name := vs.Name
	null := name + "Null"
	codes := strcase.ToLowerCamel(name) + "Codes"

	for _, line := range strings.Split(vs.Doc, "\n") {
		f.Comment(line)
	}
	f.Type().Id(name).Int()

	f.Const().DefsFunc(func(g *Group) {
		g.Id(null).Id(name).Op("=").Iota()
		for _, c := range vs.Concepts {
			g.Comment(c.Display)
			g.Id(constantName(name, c.Code))
		}
	})

	f.Var().Id(codes).Op("=").Index(Op("...")).String().ValuesFunc(func(g *Group) {
		g.Line().Id(null).Op(":").Lit("")
		for _, c := range vs.Concepts {
			g.Line().Id(constantName(name, c.Code)).Op(":").Lit(c.Code)
		}
		g.Line()
	})

	f.Comment("String returns the code, or \"\" for " + null + " and undefined values.")
	f.Func().Params(Id("v").Id(name)).Id("String").Params().String().Block(
		If(Id("v").Op("<").Lit(0).Op("||").Int().Call(Id("v")).Op(">=").Len(Id(codes))).Block(
			Return(Lit("")),
		),
		Return(Id(codes).Index(Id("v"))),
	)

	f.Comment("IsValid reports whether v is one of the defined codes.")
	f.Func().Params(Id("v").Id(name)).Id("IsValid").Params().Bool().Block(
		Return(Id("v").Op(">").Id(null).Op("&&").Int().Call(Id("v")).Op("<").Len(Id(codes))),
	)

	f.Comment(name + "FromString returns the value for code, or " + null + ".")
	f.Func().Id(name+"FromString").Params(Id("code").String()).Id(name).Block(
		For(List(Id("i"), Id("c")).Op(":=").Range().Id(codes)).Block(
			If(Id("i").Op(">").Lit(0).Op("&&").Id("c").Op("==").Id("code")).Block(
				Return(Id(name).Call(Id("i"))),
			),
		),
		Return(Id(null)),
	)
}

// UpperCamelCase conversion with minimal replacements
func constantName(valueSetName, concept string) string {
	replacer := strings.NewReplacer(
		"<=", "LessThanOrEqualTo",
		">=", "GreaterThanOrEqualTo",
		"<", "LessThan",
		">", "GreaterThan",
		"!=", "NotEqualTo",
		"=", "EqualTo",
	)

	return strcase.ToCamel(valueSetName) + strcase.ToCamel(replacer.Replace(concept))
}
