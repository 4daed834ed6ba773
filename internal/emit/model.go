package emit

import (
	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

// HeaderData parameterizes the banner/package/import block every
// generated file opens with.
type HeaderData struct {
	Inputs         []string
	Package        string
	WirePackage    string
	Layer          int
	ExtraImports   []string
	EmitLayerConst bool
}

// EmitModel implements component C8: one Go interface (when a type has
// more than one constructor) plus visitor/match dispatch, and one payload
// struct with Read/Write functions per constructor.
func EmitModel(g *Generator, result *compile.Result) {
	for _, t := range result.Types {
		if len(t.Constructors) == 0 {
			continue // scheme builtin placeholder (int, string, ...); nothing generated
		}
		emitAbstractType(g, t, result.Registry)
		for _, c := range t.Constructors {
			emitConstructor(g, c, t, result.Registry)
		}
	}

	emitDispatch(g, result)
}

// emitDispatch renders the tag->Read and value->Write dispatch functions
// nested boxed/bare references route through (the "ReadByTag"/
// "WriteByValue" calls used throughout emitRead/emitWrite below).
func emitDispatch(g *Generator, result *compile.Result) {
	g.Printf("\n// ReadByTag decodes the boxed value identified by tag.\n")
	g.Printf("func ReadByTag(tag uint32, r *wire.Reader) (interface{}, error) {\n\tswitch tag {\n")
	for _, t := range result.Types {
		for _, c := range t.Constructors {
			g.Printf("\tcase %s:\n\t\treturn Read%s(r)\n", tagConstName(c.Name), ExportedName(c.Name))
		}
	}
	g.Printf("\tdefault:\n\t\treturn nil, fmt.Errorf(\"tlgen: unknown boxed tag %%#08x\", tag)\n\t}\n}\n")

	g.Printf("\n// WriteByValue encodes v by its dynamic constructor type.\n")
	g.Printf("func WriteByValue(w *wire.Writer, v interface{}) {\n\tswitch x := v.(type) {\n")
	for _, t := range result.Types {
		for _, c := range t.Constructors {
			cn := ExportedName(c.Name)
			g.Printf("\tcase *%s:\n\t\tWrite%s(w, x)\n", cn, cn)
		}
	}
	g.Printf("\tdefault:\n\t\tpanic(fmt.Sprintf(\"tlgen: unknown value type %%T\", v))\n\t}\n}\n")
}

func emitAbstractType(g *Generator, t *schema.AbstractType, reg *compile.Registry) {
	if !t.WithType() {
		// A lone constructor needs no discriminating interface; its
		// struct alone carries the type. When the scheme's
		// optimizeSingleData flag applies, also alias the abstract
		// type's own name straight onto that struct, so code can refer
		// to a value either by its constructor name or by the abstract
		// name the schema declared it under.
		if c, ok := t.SingleDataConstructor(); ok && reg.OptimizeSingleData {
			abstractName, ctorName := ExportedName(t.Name), ExportedName(c.Name)
			if abstractName != ctorName {
				g.Printf("\n// %s aliases %s directly (optimizeSingleData: %s has exactly\n", abstractName, ctorName, abstractName)
				g.Printf("// one data-bearing constructor, so no wrapper is needed).\n")
				g.Printf("type %s = %s\n", abstractName, ctorName)
			}
		}
		return
	}
	name := ExportedName(t.Name)

	g.Printf("\n// %s is the boxed union produced by:", name)
	for _, c := range t.Constructors {
		g.Printf(" %s", ExportedName(c.Name))
	}
	g.Printf(".\ntype %s interface {\n\ttl%s()\n}\n", name, name)

	g.Printf("\n// %sVisitor dispatches on every constructor of %s.\n", name, name)
	g.Printf("type %sVisitor interface {\n", name)
	for _, c := range t.Constructors {
		cn := ExportedName(c.Name)
		g.Printf("\tVisit%s(*%s)\n", cn, cn)
	}
	g.Printf("}\n")

	g.Printf("\n// Match%s dispatches v to the Visit method matching its concrete constructor.\n", name)
	g.Printf("func Match%s(v %s, vis %sVisitor) {\n\tswitch x := v.(type) {\n", name, name, name)
	for _, c := range t.Constructors {
		cn := ExportedName(c.Name)
		g.Printf("\tcase *%s:\n\t\tvis.Visit%s(x)\n", cn, cn)
	}
	g.Printf("\t}\n}\n")
}

func emitConstructor(g *Generator, c *schema.Constructor, t *schema.AbstractType, reg *compile.Registry) {
	name := ExportedName(c.Name)
	tagConst := tagConstName(c.Name)

	g.Printf("\n// %s is constructor #%08x of %s.\n", name, c.TypeID, ExportedName(t.Name))
	if c.Doc != "" {
		g.Printf("//\n// %s\n", c.Doc)
	}
	g.Printf("const %s uint32 = %s\n", tagConst, hexLiteral(c.TypeID))

	g.Printf("\ntype %s struct {\n", name)
	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeFlagWord || f.BotsOnly {
			continue // computed on Write, consumed on Read; not user-visible
		}
		fieldName := FieldName(f.Name)
		switch {
		case f.Shape.Kind == schema.ShapeConditional && f.Shape.Trivial:
			g.Printf("\t%s bool\n", fieldName)
		case f.Shape.Kind == schema.ShapeConditional:
			g.Printf("\t%s *%s\n", fieldName, GoType(f.Shape.Type, reg))
		default:
			g.Printf("\t%s %s\n", fieldName, FieldGoType(f, reg))
		}
	}
	g.Printf("}\n")

	if t.WithType() {
		g.Printf("\nfunc (*%s) tl%s() {}\n", name, ExportedName(t.Name))
	}

	emitRead(g, c, name, reg)
	emitWrite(g, c, name, tagConst, reg)
}

// primitiveReader names the wire.Reader method for a scalar builtin, ok
// false for anything that must route through ReadByTag instead.
func primitiveReader(typeName string) (method string, ok bool) {
	switch typeName {
	case "int":
		return "ReadInt32", true
	case "long":
		return "ReadInt64", true
	case "double":
		return "ReadDouble", true
	case "string":
		return "ReadString", true
	case "bytes", "int128", "int256":
		return "ReadBytes", true
	case "Bool", "bool":
		return "ReadBool", true
	}
	return "", false
}

// primitiveWriter names the wire.Writer method, and whether its argument
// needs a numeric conversion (none of the builtins do now that int/long
// read/write already match their Go types exactly).
func primitiveWriter(typeName string) (method string, ok bool) {
	switch typeName {
	case "int":
		return "WriteInt32", true
	case "long":
		return "WriteInt64", true
	case "double":
		return "WriteDouble", true
	case "string":
		return "WriteString", true
	case "bytes", "int128", "int256":
		return "WriteBytes", true
	case "Bool", "bool":
		return "WriteBool", true
	}
	return "", false
}

// emitReadInto writes one value of typeName from r into dest (an
// assignable Go expression: a struct field or a local variable), wrapped
// in its own block so repeated calls never collide on variable names.
func emitReadInto(g *Generator, dest, typeName string, reg *compile.Registry, indent string) {
	g.Printf("%s{\n", indent)
	if method, ok := primitiveReader(typeName); ok {
		g.Printf("%s\tval, err := r.%s()\n", indent, method)
		g.Printf("%s\tif err != nil {\n%s\t\treturn nil, err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\t%s = val\n", indent, dest)
	} else {
		g.Printf("%s\ttag, err := r.ReadUint32()\n", indent)
		g.Printf("%s\tif err != nil {\n%s\t\treturn nil, err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\tdecoded, err := ReadByTag(tag, r)\n", indent)
		g.Printf("%s\tif err != nil {\n%s\t\treturn nil, err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\t%s = decoded.(%s)\n", indent, dest, GoType(typeName, reg))
	}
	g.Printf("%s}\n", indent)
}

func emitReadUint32Into(g *Generator, dest, indent string) {
	g.Printf("%s{\n", indent)
	g.Printf("%s\tval, err := r.ReadUint32()\n", indent)
	g.Printf("%s\tif err != nil {\n%s\t\treturn nil, err\n%s\t}\n", indent, indent, indent)
	g.Printf("%s\t%s = val\n", indent, dest)
	g.Printf("%s}\n", indent)
}

func emitRead(g *Generator, c *schema.Constructor, name string, reg *compile.Registry) {
	g.Printf("\n// Read%s decodes a %s from r; the boxed tag is assumed already consumed.\n", name, name)
	g.Printf("func Read%s(r *wire.Reader) (*%s, error) {\n", name, name)
	g.Printf("\tv := &%s{}\n", name)

	if c.HasFlags != "" {
		g.Printf("\tvar flags uint32\n")
		emitReadUint32Into(g, "flags", "\t")
	}
	if c.HasFlags64 != "" {
		g.Printf("\tvar flags2 uint32\n")
		emitReadUint32Into(g, "flags2", "\t")
	}

	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeFlagWord || f.BotsOnly {
			continue
		}
		fieldName := FieldName(f.Name)

		switch f.Shape.Kind {
		case schema.ShapeConditional:
			if f.Shape.Trivial {
				g.Printf("\tv.%s = wire.HasFlag(%s, %d)\n", fieldName, flagsVar(f), f.Shape.Bit)
				continue
			}
			g.Printf("\tif wire.HasFlag(%s, %d) {\n", flagsVar(f), f.Shape.Bit)
			g.Printf("\t\tvar tmp %s\n", GoType(f.Shape.Type, reg))
			emitReadInto(g, "tmp", f.Shape.Type, reg, "\t\t")
			g.Printf("\t\tv.%s = &tmp\n\t}\n", fieldName)

		case schema.ShapeVector:
			emitReadVector(g, fieldName, f, reg)

		case schema.ShapeTemplateVar:
			g.Printf("\t// %s is a generic template value; the caller's transport layer resolves it.\n", fieldName)

		default:
			emitReadInto(g, "v."+fieldName, f.Shape.Type, reg, "\t")
		}
	}

	g.Printf("\treturn v, nil\n}\n")
}

func flagsVar(f schema.Field) string {
	if f.Shape.Is64 {
		return "flags2"
	}
	return "flags"
}

func emitReadVector(g *Generator, fieldName string, f schema.Field, reg *compile.Registry) {
	g.Printf("\t{\n")
	g.Printf("\t\tif _, err := r.ReadUint32(); err != nil { // vector tag\n\t\t\treturn nil, err\n\t\t}\n")
	g.Printf("\t\tvcount, err := r.ReadInt32()\n\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n")
	g.Printf("\t\tv.%s = make(%s, 0, vcount)\n", fieldName, FieldGoType(f, reg))
	g.Printf("\t\tfor i := int32(0); i < vcount; i++ {\n")
	g.Printf("\t\t\tvar tmp %s\n", GoType(f.Shape.Type, reg))
	emitReadInto(g, "tmp", f.Shape.Type, reg, "\t\t\t")
	g.Printf("\t\t\tv.%s = append(v.%s, tmp)\n\t\t}\n", fieldName, fieldName)
	g.Printf("\t}\n")
}

func emitWrite(g *Generator, c *schema.Constructor, name, tagConst string, reg *compile.Registry) {
	g.Printf("\n// Write%s encodes v onto w, tag included.\n", name)
	g.Printf("func Write%s(w *wire.Writer, v *%s) {\n", name, name)
	g.Printf("\tw.WriteUint32(%s)\n", tagConst)

	if c.HasFlags != "" {
		g.Printf("\tvar flags uint32\n")
	}
	if c.HasFlags64 != "" {
		g.Printf("\tvar flags2 uint32\n")
	}
	for _, f := range c.Params {
		if f.Shape.Kind != schema.ShapeConditional || f.BotsOnly {
			continue
		}
		fieldName := FieldName(f.Name)
		g.Printf("\tif %s {\n", conditionalPresence(f, fieldName))
		g.Printf("\t\twire.SetFlag(&%s, %d, true)\n\t}\n", flagsVar(f), f.Shape.Bit)
	}
	if c.HasFlags != "" {
		g.Printf("\tw.WriteUint32(flags)\n")
	}
	if c.HasFlags64 != "" {
		g.Printf("\tw.WriteUint32(flags2)\n")
	}

	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeFlagWord || f.BotsOnly {
			continue
		}
		fieldName := FieldName(f.Name)
		switch f.Shape.Kind {
		case schema.ShapeConditional:
			if f.Shape.Trivial {
				continue // no wire payload beyond the bit set above
			}
			g.Printf("\tif v.%s != nil {\n", fieldName)
			writeWriteExpr(g, "*v."+fieldName, f.Shape.Type, reg, "\t\t")
			g.Printf("\t}\n")
		case schema.ShapeVector:
			g.Printf("\tw.WriteUint32(wire.VectorTag)\n")
			g.Printf("\tw.WriteInt32(int32(len(v.%s)))\n", fieldName)
			g.Printf("\tfor _, item := range v.%s {\n", fieldName)
			writeWriteExpr(g, "item", f.Shape.Type, reg, "\t\t")
			g.Printf("\t}\n")
		case schema.ShapeTemplateVar:
			g.Printf("\t// %s is resolved by the caller's transport layer.\n", fieldName)
		default:
			writeWriteExpr(g, "v."+fieldName, f.Shape.Type, reg, "\t")
		}
	}
	g.Printf("}\n")
}

// conditionalPresence is the boolean expression gating whether a
// conditional field's bit should be set: the field itself when trivial
// (it *is* the predicate), or a non-nil check otherwise.
func conditionalPresence(f schema.Field, fieldName string) string {
	if f.Shape.Trivial {
		return "v." + fieldName
	}
	return "v." + fieldName + " != nil"
}

func writeWriteExpr(g *Generator, expr, typeName string, reg *compile.Registry, indent string) {
	if method, ok := primitiveWriter(typeName); ok {
		g.Printf("%sw.%s(%s)\n", indent, method, expr)
		return
	}
	g.Printf("%sWriteByValue(w, %s)\n", indent, expr)
}
