package emit

import (
	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

// EmitDump implements component C10: one dump-stage function per
// constructor that reads straight off the wire and renders each field as
// it goes (spec.md §4.7's "stage function" idea, with Go's own call stack
// standing in for the spec's explicit stage/type/flag stacks — recursion
// already gives nested fields their own frame, so a second, hand-rolled
// stack would only duplicate it). DumpToText is the top-level entry point
// that reads a boxed tag and dispatches to the matching stage function.
func EmitDump(g *Generator, result *compile.Result) {
	g.Printf("\n// DumpToText reads one boxed value from r and renders it as indented\n")
	g.Printf("// text onto w.\n")
	g.Printf("func DumpToText(w io.Writer, r *wire.Reader, indent string) error {\n")
	g.Printf("\ttag, err := r.ReadUint32()\n\tif err != nil {\n\t\treturn err\n\t}\n")
	g.Printf("\treturn dumpByTag(tag, w, r, indent)\n}\n")

	g.Printf("\nfunc dumpByTag(tag uint32, w io.Writer, r *wire.Reader, indent string) error {\n\tswitch tag {\n")
	for _, t := range result.Types {
		for _, c := range t.Constructors {
			g.Printf("\tcase %s:\n\t\treturn dump%s(w, r, indent)\n", tagConstName(c.Name), ExportedName(c.Name))
		}
	}
	g.Printf("\tdefault:\n\t\treturn fmt.Errorf(\"tlgen: unknown boxed tag %%#08x\", tag)\n\t}\n}\n")

	for _, t := range result.Types {
		for _, c := range t.Constructors {
			emitDumpConstructor(g, c, result.Registry)
		}
	}
}

func emitDumpConstructor(g *Generator, c *schema.Constructor, reg *compile.Registry) {
	name := ExportedName(c.Name)
	g.Printf("\nfunc dump%s(w io.Writer, r *wire.Reader, indent string) error {\n", name)
	g.Printf("\tfmt.Fprintf(w, \"%%s {\\n\", %q)\n", name)
	g.Printf("\tfieldIndent := indent + \"  \"\n")

	if c.HasFlags != "" {
		g.Printf("\tvar flags uint32\n")
		emitDumpReadUint32(g, "flags")
	}
	if c.HasFlags64 != "" {
		g.Printf("\tvar flags2 uint32\n")
		emitDumpReadUint32(g, "flags2")
	}

	for _, f := range c.Params {
		if f.Shape.Kind == schema.ShapeFlagWord || f.BotsOnly {
			continue
		}
		label := f.Name

		switch f.Shape.Kind {
		case schema.ShapeConditional:
			g.Printf("\tif wire.HasFlag(%s, %d) {\n", flagsVar(f), f.Shape.Bit)
			if f.Shape.Trivial {
				g.Printf("\t\tfmt.Fprintf(w, \"%%s%s: YES,\\n\", fieldIndent)\n", label)
			} else {
				emitDumpValue(g, label, f.Shape.Type, reg, "\t\t")
			}
			g.Printf("\t} else {\n")
			g.Printf("\t\tfmt.Fprintf(w, \"%%s%s: [ SKIPPED BY BIT %d IN FIELD %s ],\\n\", fieldIndent)\n", label, f.Shape.Bit, flagsVar(f))
			g.Printf("\t}\n")

		case schema.ShapeVector:
			g.Printf("\t{\n")
			g.Printf("\t\tif _, err := r.ReadUint32(); err != nil { // vector tag\n\t\t\treturn err\n\t\t}\n")
			g.Printf("\t\tvcount, err := r.ReadInt32()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
			g.Printf("\t\tfmt.Fprintf(w, \"%%s%s: Vector[%%d] {\\n\", fieldIndent, vcount)\n", label)
			g.Printf("\t\tfor i := int32(0); i < vcount; i++ {\n")
			emitDumpValue(g, "", f.Shape.Type, reg, "\t\t\t")
			g.Printf("\t\t}\n")
			g.Printf("\t\tfmt.Fprintf(w, \"%%s},\\n\", fieldIndent)\n")
			g.Printf("\t}\n")

		case schema.ShapeTemplateVar:
			g.Printf("\tfmt.Fprintf(w, \"%%s%s: <generic>,\\n\", fieldIndent)\n", label)

		default:
			emitDumpValue(g, label, f.Shape.Type, reg, "\t")
		}
	}

	g.Printf("\tfmt.Fprintf(w, \"%%s},\\n\", indent)\n")
	g.Printf("\treturn nil\n}\n")
}

func emitDumpReadUint32(g *Generator, dest string) {
	g.Printf("\t{\n\t\tval, err := r.ReadUint32()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = val\n\t}\n", dest)
}

// emitDumpValue reads one field (or, when label is "", one bare vector
// element) and prints it; nested boxed/bare references recurse through
// DumpToText so the stage machine naturally walks the whole tree.
func emitDumpValue(g *Generator, label, typeName string, reg *compile.Registry, indent string) {
	prefix := ""
	if label != "" {
		prefix = label + ": "
	}

	switch typeName {
	case "int", "long":
		g.Printf("%s{\n", indent)
		g.Printf("%s\tval, err := r.%s()\n", indent, map[string]string{"int": "ReadInt32", "long": "ReadInt64"}[typeName])
		g.Printf("%s\tif err != nil {\n%s\t\treturn err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\tfmt.Fprintf(w, \"%%s%s%%d,\\n\", fieldIndent, val)\n", indent, prefix)
		g.Printf("%s}\n", indent)
	case "double":
		g.Printf("%s{\n", indent)
		g.Printf("%s\tval, err := r.ReadDouble()\n", indent)
		g.Printf("%s\tif err != nil {\n%s\t\treturn err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\tfmt.Fprintf(w, \"%%s%s%%v,\\n\", fieldIndent, val)\n", indent, prefix)
		g.Printf("%s}\n", indent)
	case "string":
		g.Printf("%s{\n", indent)
		g.Printf("%s\tval, err := r.ReadString()\n", indent)
		g.Printf("%s\tif err != nil {\n%s\t\treturn err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\tfmt.Fprintf(w, \"%%s%s%%q,\\n\", fieldIndent, val)\n", indent, prefix)
		g.Printf("%s}\n", indent)
	case "bytes", "int128", "int256":
		g.Printf("%s{\n", indent)
		g.Printf("%s\tval, err := r.ReadBytes()\n", indent)
		g.Printf("%s\tif err != nil {\n%s\t\treturn err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\tfmt.Fprintf(w, \"%%s%s%%x,\\n\", fieldIndent, val)\n", indent, prefix)
		g.Printf("%s}\n", indent)
	case "Bool", "bool":
		g.Printf("%s{\n", indent)
		g.Printf("%s\tval, err := r.ReadBool()\n", indent)
		g.Printf("%s\tif err != nil {\n%s\t\treturn err\n%s\t}\n", indent, indent, indent)
		g.Printf("%s\tfmt.Fprintf(w, \"%%s%s%%v,\\n\", fieldIndent, val)\n", indent, prefix)
		g.Printf("%s}\n", indent)
	default:
		// A complex bare type standing alone (no boxed tag of its own)
		// can't be dispatched through dumpByTag; spec.md §7 calls this
		// out as a warn-and-drop case at emit time.
		if elem, boxed, ok := compile.VectorElem(typeName); ok {
			_ = boxed
			emitDumpValue(g, label, elem, reg, indent)
			return
		}
		g.Printf("%sfmt.Fprintf(w, \"%%s%s\", fieldIndent)\n", indent, prefix)
		g.Printf("%sif err := DumpToText(w, r, fieldIndent); err != nil {\n%s\treturn err\n%s}\n", indent, indent, indent)
	}
}
