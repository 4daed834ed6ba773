package emit

import (
	"fmt"
	"strings"

	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

// ExportedName turns a schema identifier ("messages.sendMessage",
// "photoEmpty", "peer_id") into an exported Go identifier
// ("MessagesSendMessage", "PhotoEmpty", "PeerID"-style casing left to the
// caller; this only joins and capitalizes words).
func ExportedName(name string) string {
	parts := splitWords(name)
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// FieldName is ExportedName for a constructor's own parameter, which uses
// Go's conventional initialisms for a handful of common TL field names.
func FieldName(name string) string {
	switch name {
	case "id":
		return "ID"
	case "url":
		return "URL"
	}
	exported := ExportedName(name)
	exported = strings.ReplaceAll(exported, "Id", "ID")
	exported = strings.ReplaceAll(exported, "Url", "URL")
	return exported
}

func splitWords(name string) []string {
	name = strings.ReplaceAll(name, ".", "_")
	return strings.Split(name, "_")
}

// builtinGoType maps a TL scalar type to its Go representation. ok is
// false for anything that isn't a scalar builtin (vectors, boxed/bare
// references, and the flag-word/template-var pseudo-types are handled by
// their callers before builtinGoType is consulted).
func builtinGoType(name string) (goType string, ok bool) {
	switch name {
	case "int":
		return "int32", true
	case "long":
		return "int64", true
	case "double":
		return "float64", true
	case "string":
		return "string", true
	case "bytes":
		return "[]byte", true
	case "Bool", "bool":
		return "bool", true
	case "true":
		return "bool", true
	case "int128", "int256":
		return "[]byte", true
	}
	return "", false
}

// GoType resolves the field's wire type to a Go type, given the registry
// built by the compiler (so references to other declared abstract/concrete
// types resolve to the right interface or struct pointer).
func GoType(typeName string, reg *compile.Registry) string {
	if elem, _, ok := compile.VectorElem(typeName); ok {
		return "[]" + GoType(elem, reg)
	}
	if g, ok := builtinGoType(typeName); ok {
		return g
	}

	id := schema.ParseIdentifier(typeName)
	if id.IsBoxed() {
		if t, ok := reg.Lookup(typeName); ok {
			if t.WithType() {
				return ExportedName(t.Name)
			}
			if c, single := t.SingleDataConstructor(); single && reg.OptimizeSingleData {
				// the scheme allows skipping the single-constructor
				// interface entirely: callers get the data straight.
				return "*" + ExportedName(c.Name)
			}
			if len(t.Constructors) == 1 {
				return "*" + ExportedName(t.Constructors[0].Name)
			}
		}
		return ExportedName(typeName)
	}

	if t, ok := reg.ResolveElementType(typeName); ok {
		if t.WithType() {
			return ExportedName(t.Name)
		}
	}
	if c, ok := reg.Constructor(typeName); ok {
		return "*" + ExportedName(c.Name)
	}
	return "*" + ExportedName(typeName)
}

// FieldGoType resolves one constructor field's Go type, unwrapping the
// conditional-payload indirection (a conditional field's Shape.Type is the
// payload type text, same grammar as a plain field's).
func FieldGoType(f schema.Field, reg *compile.Registry) string {
	switch f.Shape.Kind {
	case schema.ShapeVector:
		return "[]" + GoType(f.Shape.Type, reg)
	case schema.ShapeTemplateVar:
		return "interface{}"
	default:
		return GoType(f.Shape.Type, reg)
	}
}

func tagConstName(ctorName string) string {
	return "tag" + ExportedName(ctorName)
}

func hexLiteral(id uint32) string {
	return fmt.Sprintf("0x%08x", id)
}
