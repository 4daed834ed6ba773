package compile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/parse"
	"github.com/sandia-minimega/tlgen/internal/schema"
	"github.com/sandia-minimega/tlgen/internal/source"
)

// flagState tracks the flag word(s) seen so far while walking one
// declaration's parameter list, and the running high-water mark used to
// populate Constructor.MaxField (spec.md invariant 3).
type flagState struct {
	name   string
	name64 string
	maxBit uint64
}

// BuildConstructor classifies a parsed declaration's raw parameters into
// schema.Field values (component C5) and assembles the resulting
// schema.Constructor. comments is the declaration's accumulated doc text,
// used to derive Nullable/NullableVector/BotsOnly per field.
func BuildConstructor(d *parse.Decl, comments string, scheme *config.Scheme) (*schema.Constructor, error) {
	var fs flagState
	var fields []schema.Field
	var templateParam, templateUse string

	for _, p := range d.Params {
		if p.IsTemplateDecl {
			if templateParam != "" {
				return nil, fmt.Errorf("%s: more than one template parameter declared", d.OriginalName)
			}
			templateParam = p.Name
			continue
		}

		switch {
		case p.Type == "#":
			is64 := false
			switch {
			case fs.name == "":
				fs.name = p.Name
			case fs.name64 == "":
				fs.name64 = p.Name
				is64 = true
			default:
				return nil, fmt.Errorf("%s: more than two flag words declared", d.OriginalName)
			}
			fields = append(fields, schema.Field{
				Name:  p.Name,
				Shape: schema.Shape{Kind: schema.ShapeFlagWord, Is64: is64},
			})
			continue

		case strings.HasPrefix(p.Type, "!"):
			tv := p.Type[1:]
			if templateParam == "" || tv != templateParam {
				return nil, fmt.Errorf("%s: template variable %q used without a matching {%s:Type} declaration", d.OriginalName, tv, tv)
			}
			templateUse = p.Name
			field := schema.Field{Name: p.Name, Shape: schema.Shape{Kind: schema.ShapeTemplateVar, Type: tv}}
			if err := applyCommentTags(&field, comments, d); err != nil {
				return nil, err
			}
			fields = append(fields, field)
			continue
		}

		if flagName, bit, payload, ok := splitConditional(p.Type); ok {
			if flagName != fs.name && flagName != fs.name64 {
				return nil, fmt.Errorf("%s: conditional field %q references undeclared flag word %q", d.OriginalName, p.Name, flagName)
			}
			is64 := flagName == fs.name64 && fs.name64 != ""
			effectiveBit := bit
			if is64 {
				effectiveBit += 32
			}
			if v := uint64(1) << uint(effectiveBit); v > fs.maxBit {
				fs.maxBit = v
			}
			field := schema.Field{
				Name: p.Name,
				Shape: schema.Shape{
					Kind:     schema.ShapeConditional,
					Type:     payload,
					FlagName: flagName,
					Bit:      bit,
					Trivial:  payload == "true",
					Is64:     is64,
				},
			}
			if err := applyCommentTags(&field, comments, d); err != nil {
				return nil, err
			}
			fields = append(fields, field)
			continue
		}

		if elem, boxed, ok := VectorElem(p.Type); ok {
			field := schema.Field{Name: p.Name, Shape: schema.Shape{Kind: schema.ShapeVector, Type: elem, VectorBoxed: boxed}}
			if err := applyCommentTags(&field, comments, d); err != nil {
				return nil, err
			}
			fields = append(fields, field)
			continue
		}

		field := schema.Field{Name: p.Name, Shape: schema.Shape{Kind: schema.ShapePlain, Type: p.Type}}
		if err := applyCommentTags(&field, comments, d); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	c := &schema.Constructor{
		OriginalName: d.OriginalName,
		Name:         renameType(scheme, d.OriginalName),
		Params:       fields,
		HasFlags:     fs.name,
		HasFlags64:   fs.name64,
		MaxField:     fs.maxBit,
		ResultType:   renameType(scheme, d.ResultType),
		IsMethod:     d.IsMethod,
		Doc:          comments,
	}

	if templateParam != "" {
		if templateUse == "" {
			return nil, fmt.Errorf("%s: template parameter %q declared but never used", d.OriginalName, templateParam)
		}
		if d.ResultType != templateParam {
			return nil, fmt.Errorf("%s: generic method must return its own template parameter %q, got %q", d.OriginalName, templateParam, d.ResultType)
		}
		c.Template = templateParam
		c.TemplateResponseType = c.ResultType
	}

	return c, nil
}

// splitConditional recognizes a "flagsName.bit?Type" token and splits it
// into its flag word name, bit position, and payload type.
func splitConditional(typ string) (flagName string, bit int, payload string, ok bool) {
	q := strings.IndexByte(typ, '?')
	if q < 0 {
		return "", 0, "", false
	}
	left := typ[:q]
	dot := strings.IndexByte(left, '.')
	if dot < 0 {
		return "", 0, "", false
	}
	n, err := strconv.Atoi(left[dot+1:])
	if err != nil {
		return "", 0, "", false
	}
	return left[:dot], n, typ[q+1:], true
}

// VectorElem recognizes "Vector<T>" (boxed elements) and "vector<t>" (bare
// elements), returning the element type and its boxedness.
func VectorElem(typ string) (elem string, boxed bool, ok bool) {
	switch {
	case strings.HasPrefix(typ, "Vector<") && strings.HasSuffix(typ, ">"):
		return typ[len("Vector<") : len(typ)-1], true, true
	case strings.HasPrefix(typ, "vector<") && strings.HasSuffix(typ, ">"):
		return typ[len("vector<") : len(typ)-1], false, true
	default:
		return "", false, false
	}
}

// applyCommentTags derives Nullable/NullableVector/BotsOnly from the
// declaration's accumulated doc comments. Nullability is exclusive with
// conditional and template fields (spec.md Invariant 7, §7): a nullable or
// nullable-vector tag on either terminates compilation rather than being
// silently applied, since a flag-gated or generic field already has its
// own presence signal and the two would conflict.
func applyCommentTags(field *schema.Field, comments string, d *parse.Decl) error {
	nullable := source.IsNullableParam(comments, field.Name)
	nullableVector := source.IsNullableVector(comments, field.Name)

	if (nullable || nullableVector) && (field.Shape.Kind == schema.ShapeConditional || field.Shape.Kind == schema.ShapeTemplateVar) {
		return fmt.Errorf("%s: field %q is conditional or generic and cannot also be tagged nullable: %s",
			d.OriginalName, field.Name, declLine(d))
	}
	if nullableVector && field.Shape.Kind != schema.ShapeVector {
		return fmt.Errorf("%s: field %q is not a vector and cannot be tagged nullable-vector: %s",
			d.OriginalName, field.Name, declLine(d))
	}

	field.Nullable = nullable
	field.NullableVector = nullableVector
	field.BotsOnly = source.IsBotsOnlyParam(comments, field.Name)
	return nil
}

// declLine reconstructs the declaration's source line for error messages,
// since parse.Decl doesn't retain the raw text it was parsed from.
func declLine(d *parse.Decl) string {
	var b strings.Builder
	b.WriteString(d.OriginalName)
	if d.TypeIDHex != "" {
		b.WriteByte('#')
		b.WriteString(d.TypeIDHex)
	}
	for _, p := range d.Params {
		b.WriteByte(' ')
		if p.IsTemplateDecl {
			b.WriteByte('{')
			b.WriteString(p.Name)
			b.WriteString(":Type}")
			continue
		}
		b.WriteString(p.Name)
		b.WriteByte(':')
		b.WriteString(p.Type)
	}
	b.WriteString(" = ")
	b.WriteString(d.ResultType)
	b.WriteByte(';')
	return b.String()
}

func renameType(scheme *config.Scheme, name string) string {
	if scheme == nil {
		return name
	}
	return scheme.RenameType(name)
}
