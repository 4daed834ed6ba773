package emit

import (
	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

// EmitMethods implements component C9: for every declaration parsed from
// the ---functions--- section (already modeled as an ordinary constructor
// struct by EmitModel), add the RPC-specific surface: an Encode helper,
// the wire method name used to route a call, and — for a concrete (non-
// generic) method — a named alias for its response type. Generic
// parameterized methods (an "!X" template parameter, spec.md §4.2) get an
// Encode helper and a DecodeGeneric function that takes a decode callback
// and returns interface{}, instead of a fixed response alias; they are not
// emitted as Go type-parameterized (generic) types.
func EmitMethods(g *Generator, result *compile.Result) {
	for _, t := range result.Types {
		for _, c := range t.Constructors {
			if !c.IsMethod {
				continue
			}
			if c.Template != "" {
				emitGenericMethod(g, c)
				continue
			}
			emitMethod(g, c, result.Registry)
		}
	}
}

func emitMethod(g *Generator, c *schema.Constructor, reg *compile.Registry) {
	name := ExportedName(c.Name)

	g.Printf("\n// %sResponse is the result type %s's RPC response decodes to.\n", name, name)
	g.Printf("type %sResponse = %s\n", name, GoType(c.ResultType, reg))

	g.Printf("\n// MethodName reports the schema name %s was declared under.\n", name)
	g.Printf("func (*%s) MethodName() string { return %q }\n", name, c.OriginalName)

	g.Printf("\n// Encode serializes v as a method call payload.\n")
	g.Printf("func (v *%s) Encode() []byte {\n\tw := wire.NewWriter()\n\tWrite%s(w, v)\n\treturn w.Bytes()\n}\n", name, name)

	g.Printf("\n// Decode%s parses %s's RPC response from a raw reply body.\n", name, name)
	g.Printf("func Decode%s(body []byte) (%sResponse, error) {\n", name, name)
	g.Printf("\tr := wire.NewReaderFromBytes(body)\n")
	g.Printf("\ttag, err := r.ReadUint32()\n\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	g.Printf("\tdecoded, err := ReadByTag(tag, r)\n\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	g.Printf("\tresp, ok := decoded.(%sResponse)\n\tif !ok {\n\t\treturn nil, fmt.Errorf(\"tlgen: %s response has unexpected type %%T\", decoded)\n\t}\n", name, name)
	g.Printf("\treturn resp, nil\n}\n")
}

// emitGenericMethod renders a template method's response decode as a
// function taking an explicit decode callback for its type variable,
// since Go cannot express "!X" as a static return type the way the
// schema's generic methods do.
func emitGenericMethod(g *Generator, c *schema.Constructor) {
	name := ExportedName(c.Name)

	g.Printf("\n// MethodName reports the schema name %s was declared under.\n", name)
	g.Printf("func (*%s) MethodName() string { return %q }\n", name, c.OriginalName)

	g.Printf("\n// Encode serializes v as a method call payload. %s is generic over\n", name)
	g.Printf("// its %q parameter; the caller supplies a matching decode function\n", c.Template)
	g.Printf("// to DecodeGeneric%s for the response.\n", name)
	g.Printf("func (v *%s) Encode() []byte {\n\tw := wire.NewWriter()\n\tWrite%s(w, v)\n\treturn w.Bytes()\n}\n", name, name)

	g.Printf("\n// DecodeGeneric%s parses a generic %s response using decodeBody\n", name, name)
	g.Printf("// for the %q-typed payload.\n", c.Template)
	g.Printf("func DecodeGeneric%s(body []byte, decodeBody func(*wire.Reader) (interface{}, error)) (interface{}, error) {\n", name)
	g.Printf("\tr := wire.NewReaderFromBytes(body)\n\treturn decodeBody(r)\n}\n")
}
