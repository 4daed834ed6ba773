package emit

import (
	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

// EmitExternalTypes renders the "external" contract package adapters
// convert to/from: one struct per constructor, field-for-field the same
// as the internal model, except nullable-tagged fields surface as Go
// pointers (spec.md's comment-derived "<name> may be null") and a
// bots_only field is reduced to a documented placeholder instead of
// being fabricated (DESIGN.md Open Question #3).
func EmitExternalTypes(g *Generator, result *compile.Result, scheme *config.Scheme) {
	for _, t := range result.Types {
		for _, c := range t.Constructors {
			if !c.IsMethod {
				emitExternalStruct(g, c, result.Registry)
			}
		}
	}
}

func emitExternalStruct(g *Generator, c *schema.Constructor, reg *compile.Registry) {
	name := ExportedName(c.Name)
	g.Printf("\n// %s mirrors the %s constructor for consumers outside the wire\n", name, name)
	g.Printf("// model; see ToExternal%s/FromExternal%s.\n", name, name)
	g.Printf("type %s struct {\n", name)
	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeFlagWord {
			continue
		}
		fieldName := FieldName(f.Name)
		switch {
		case f.BotsOnly:
			g.Printf("\t%s struct{} // bots-only field; not populated by this adapter\n", fieldName)
		case f.Shape.Kind == schema.ShapeConditional && f.Shape.Trivial:
			g.Printf("\t%s bool\n", fieldName)
		case f.Shape.Kind == schema.ShapeConditional:
			g.Printf("\t%s *%s\n", fieldName, GoType(f.Shape.Type, reg))
		case f.Nullable:
			g.Printf("\t%s *%s\n", fieldName, GoType(f.Shape.Type, reg))
		case f.Shape.Kind == schema.ShapeTemplateVar:
			g.Printf("\t%s interface{}\n", fieldName)
		default:
			g.Printf("\t%s %s\n", fieldName, FieldGoType(f, reg))
		}
	}
	g.Printf("}\n")
}

// EmitAdapters implements component C11: ToExternal<Ctor>/FromExternal<Ctor>
// pairs converting between the wire model and the external contract
// package. A constructor carrying a non-trivial conditional field is
// rejected outright at both directions — the external contract has no way
// to express "present only when bit B of some flag word is set", so
// spec.md's adapter layer doesn't attempt it.
func EmitAdapters(g *Generator, result *compile.Result, scheme *config.Scheme, externalPkg string) {
	for _, t := range result.Types {
		for _, c := range t.Constructors {
			if c.IsMethod {
				continue
			}
			emitToExternal(g, c, result.Registry, externalPkg)
			emitFromExternal(g, c, result.Registry, externalPkg)
		}
	}
	for _, t := range result.Types {
		if t.WithType() {
			emitExternalDispatch(g, t, externalPkg)
		}
	}
}

func hasConditionalPayload(c *schema.Constructor) bool {
	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeConditional && !f.Shape.Trivial {
			return true
		}
	}
	return false
}

func emitToExternal(g *Generator, c *schema.Constructor, reg *compile.Registry, externalPkg string) {
	name := ExportedName(c.Name)
	g.Printf("\n// ToExternal%s converts v to its external contract shape.\n", name)
	g.Printf("func ToExternal%s(v *%s) (*%s.%s, error) {\n", name, name, externalPkg, name)
	if hasConditionalPayload(c) {
		g.Printf("\treturn nil, fmt.Errorf(\"tlgen: %s has a conditional field the external contract cannot express\")\n}\n", name)
		return
	}
	g.Printf("\tout := &%s.%s{}\n", externalPkg, name)
	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeFlagWord {
			continue
		}
		fieldName := FieldName(f.Name)
		switch {
		case f.BotsOnly:
			// left as the zero-value placeholder declared on the external type
		case f.Shape.Kind == schema.ShapeConditional && f.Shape.Trivial:
			g.Printf("\tout.%s = v.%s\n", fieldName, fieldName)
		case f.Nullable:
			g.Printf("\t{\n\t\ttmp := v.%s\n\t\tout.%s = &tmp\n\t}\n", fieldName, fieldName)
		case f.Shape.Kind == schema.ShapeVector && elementNeedsConversion(f.Shape.Type, reg):
			g.Printf("\tout.%s = make(%s, 0, len(v.%s))\n", fieldName, FieldGoType(f, reg), fieldName)
			g.Printf("\tfor _, item := range v.%s {\n", fieldName)
			g.Printf("\t\tconverted, err := ToExternal%s(item)\n", GoTypeBase(f.Shape.Type, reg))
			g.Printf("\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n")
			g.Printf("\t\tout.%s = append(out.%s, converted)\n\t}\n", fieldName, fieldName)
		case f.Shape.Kind == schema.ShapeTemplateVar:
			g.Printf("\tout.%s = v.%s\n", fieldName, fieldName)
		default:
			g.Printf("\tout.%s = v.%s\n", fieldName, fieldName)
		}
	}
	g.Printf("\treturn out, nil\n}\n")
}

func emitFromExternal(g *Generator, c *schema.Constructor, reg *compile.Registry, externalPkg string) {
	name := ExportedName(c.Name)
	g.Printf("\n// FromExternal%s converts v back to the wire model.\n", name)
	g.Printf("func FromExternal%s(v *%s.%s) (*%s, error) {\n", name, externalPkg, name, name)
	if hasConditionalPayload(c) {
		g.Printf("\treturn nil, fmt.Errorf(\"tlgen: %s has a conditional field the external contract cannot express\")\n}\n", name)
		return
	}
	g.Printf("\tout := &%s{}\n", name)
	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeFlagWord {
			continue
		}
		fieldName := FieldName(f.Name)
		switch {
		case f.BotsOnly:
			// no external data exists to recover this field from
		case f.Shape.Kind == schema.ShapeConditional && f.Shape.Trivial:
			g.Printf("\tout.%s = v.%s\n", fieldName, fieldName)
		case f.Nullable:
			g.Printf("\tif v.%s != nil {\n\t\tout.%s = *v.%s\n\t}\n", fieldName, fieldName, fieldName)
		case f.Shape.Kind == schema.ShapeVector && elementNeedsConversion(f.Shape.Type, reg):
			g.Printf("\tout.%s = make(%s, 0, len(v.%s))\n", fieldName, FieldGoType(f, reg), fieldName)
			g.Printf("\tfor _, item := range v.%s {\n", fieldName)
			g.Printf("\t\tconverted, err := FromExternal%s(item)\n", GoTypeBase(f.Shape.Type, reg))
			g.Printf("\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n")
			g.Printf("\t\tout.%s = append(out.%s, converted)\n\t}\n", fieldName, fieldName)
		case f.Shape.Kind == schema.ShapeTemplateVar:
			g.Printf("\tout.%s = v.%s\n", fieldName, fieldName)
		default:
			g.Printf("\tout.%s = v.%s\n", fieldName, fieldName)
		}
	}
	g.Printf("\treturn out, nil\n}\n")
}

// emitExternalDispatch renders a ToExternal/FromExternal pair for an
// abstract type with more than one constructor, switching on the
// concrete Go type the way MatchX already does for the wire model.
func emitExternalDispatch(g *Generator, t *schema.AbstractType, externalPkg string) {
	name := ExportedName(t.Name)
	g.Printf("\n// ToExternal%s converts any constructor of %s to its external shape.\n", name, name)
	g.Printf("func ToExternal%s(v %s) (interface{}, error) {\n\tswitch x := v.(type) {\n", name, name)
	for _, c := range t.Constructors {
		cn := ExportedName(c.Name)
		g.Printf("\tcase *%s:\n\t\treturn ToExternal%s(x)\n", cn, cn)
	}
	g.Printf("\tdefault:\n\t\treturn nil, fmt.Errorf(\"tlgen: unknown constructor of %s: %%T\", v)\n\t}\n}\n", name)

	g.Printf("\n// FromExternal%s converts any external constructor shape back to %s.\n", name, name)
	g.Printf("func FromExternal%s(v interface{}) (%s, error) {\n\tswitch x := v.(type) {\n", name, name)
	for _, c := range t.Constructors {
		cn := ExportedName(c.Name)
		g.Printf("\tcase *%s.%s:\n\t\treturn FromExternal%s(x)\n", externalPkg, cn, cn)
	}
	g.Printf("\tdefault:\n\t\treturn nil, fmt.Errorf(\"tlgen: unknown external constructor of %s: %%T\", v)\n\t}\n}\n", name)
}

// elementNeedsConversion reports whether a vector element type is itself a
// generated constructor/abstract-type reference (and so needs recursive
// ToExternal/FromExternal calls) as opposed to a scalar copied by value.
func elementNeedsConversion(typeName string, reg *compile.Registry) bool {
	if _, ok := builtinGoType(typeName); ok {
		return false
	}
	id := schema.ParseIdentifier(typeName)
	if id.IsBoxed() {
		_, ok := reg.Lookup(typeName)
		return ok
	}
	_, ok := reg.Constructor(typeName)
	return ok
}

// GoTypeBase strips the leading "*" GoType adds for single-constructor
// references, giving the bare constructor name ToExternal<Name>/
// FromExternal<Name> are keyed on.
func GoTypeBase(typeName string, reg *compile.Registry) string {
	t := GoType(typeName, reg)
	if len(t) > 0 && t[0] == '*' {
		return t[1:]
	}
	return t
}
