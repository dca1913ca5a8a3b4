package generate

import (
	. "github.com/dave/jennifer/jen"
)

type ModelPkgDocGenerator struct {
	NoOpGenerator
}

func (g ModelPkgDocGenerator) Generate(f func(fileName string, pkgPath string) *File, defs Definitions) {
	file := f("doc", "model/r5")
	file.PackageComment("Package r5 provides the FHIR R5 data types and resources.")
	file.PackageComment("")
	file.PackageComment("Every resource type registers itself with the model registry on import,")
	file.PackageComment("so documents can be decoded by resourceType via model.Parse.")
}
