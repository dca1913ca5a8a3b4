package generate

import (
	. "github.com/dave/jennifer/jen"
)

// ResourceTypesGenerator emits the ResourceType constants and their names.
type ResourceTypesGenerator struct {
	NoOpGenerator
}

func (g ResourceTypesGenerator) Generate(f func(fileName string, pkgPath string) *File, defs Definitions) {
	file := f("resource_type", "model")

	file.Comment("Resource types defined by FHIR R5.")
	file.Const().DefsFunc(func(g *Group) {
		g.Id("TypeUnknown").Id("ResourceType").Op("=").Iota()
		for _, name := range defs.ResourceTypes {
			g.Id("Type" + name)
		}
		g.Id("typeCount")
	})

	file.Var().Id("resourceTypeNames").Op("=").Index(Op("...")).String().ValuesFunc(func(g *Group) {
		for _, name := range defs.ResourceTypes {
			g.Line().Id("Type" + name).Op(":").Lit(name)
		}
		g.Line()
	})
}
