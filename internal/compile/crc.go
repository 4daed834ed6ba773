// Package compile implements components C4-C7: CRC32 validation, parameter
// classification, the abstract-type/constructor registry, and flag
// inheritance checking. Together they turn the raw parse.Decl stream into
// the schema package's typed model.
package compile

import (
	"hash/crc32"
	"strings"

	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/parse"
)

// CanonicalSignature rebuilds the textual form a declaration's id is
// computed from: trivial-true conditional fields drop out entirely (they
// carry no wire representation), "<"/">" fold to spaces, scheme synonyms
// replace their aliased spelling, and template braces are stripped.
// Ported from generate_tl.py's cleanline.
func CanonicalSignature(d *parse.Decl, scheme *config.Scheme) string {
	var b strings.Builder
	b.WriteString(d.OriginalName)

	for _, p := range d.Params {
		if p.IsTemplateDecl {
			b.WriteByte(' ')
			b.WriteString(p.Name)
			b.WriteString(":Type")
			continue
		}
		if isTrivialTrue(p.Type) {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(p.Name)
		b.WriteByte(':')
		b.WriteString(applySynonym(p.Type, scheme))
	}

	b.WriteString(" = ")
	b.WriteString(applySynonym(d.ResultType, scheme))

	sig := b.String()
	sig = strings.ReplaceAll(sig, "<", " ")
	sig = strings.ReplaceAll(sig, ">", "")
	sig = strings.ReplaceAll(sig, "{", "")
	sig = strings.ReplaceAll(sig, "}", "")
	sig = collapseSpaces(sig)
	return strings.TrimSpace(sig)
}

// isTrivialTrue reports whether a conditional field's type is the
// trivial-true form "flags.N?true": such fields are excluded from the
// CRC signature because they have no wire presence.
func isTrivialTrue(typ string) bool {
	i := strings.IndexByte(typ, '?')
	return i >= 0 && typ[i+1:] == "true"
}

// applySynonym rewrites a type token through the scheme's synonym table
// when it names a type directly, as a vector element ("Vector<Alias>"), or
// as a conditional payload ("flags.N?Alias").
func applySynonym(typ string, scheme *config.Scheme) string {
	if scheme == nil {
		return typ
	}
	if syn, ok := scheme.Synonym(typ); ok {
		return syn
	}
	if q := strings.IndexByte(typ, '?'); q >= 0 {
		if syn, ok := scheme.Synonym(typ[q+1:]); ok {
			return typ[:q+1] + syn
		}
	}
	if strings.HasPrefix(typ, "Vector<") && strings.HasSuffix(typ, ">") {
		inner := typ[len("Vector<") : len(typ)-1]
		if syn, ok := scheme.Synonym(inner); ok {
			return "Vector<" + syn + ">"
		}
	}
	return typ
}

func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// ComputeTypeID returns the CRC32/IEEE checksum of a canonical signature.
func ComputeTypeID(signature string) uint32 {
	return crc32.ChecksumIEEE([]byte(signature))
}

// TypeIDOutcome reports how a declaration's type id was resolved.
type TypeIDOutcome struct {
	TypeID    uint32
	Signature string
	// Mismatched is true when the declaration gave an explicit id that
	// disagreed with the computed CRC and was not covered by an exception.
	Mismatched bool
}

// ResolveTypeID validates or computes a declaration's type id. When the
// declaration has no explicit id, the computed CRC is authoritative. When
// it does, a mismatch is tolerated only for names in the scheme's
// typeIdExceptions list (spec.md §4.4) — those keep their explicit id
// verbatim; anything else is reported via Mismatched so the caller can
// warn-and-drop (spec.md §9 Open Question 2).
func ResolveTypeID(d *parse.Decl, scheme *config.Scheme) TypeIDOutcome {
	sig := CanonicalSignature(d, scheme)
	computed := ComputeTypeID(sig)

	if d.TypeIDHex == "" {
		return TypeIDOutcome{TypeID: computed, Signature: sig}
	}

	explicit, err := parseHex32(d.TypeIDHex)
	if err != nil || explicit != computed {
		if err == nil && scheme != nil && scheme.HasException(d.OriginalName+"#"+d.TypeIDHex) {
			return TypeIDOutcome{TypeID: explicit, Signature: sig}
		}
		return TypeIDOutcome{TypeID: computed, Signature: sig, Mismatched: true}
	}
	return TypeIDOutcome{TypeID: explicit, Signature: sig}
}

func parseHex32(s string) (uint32, error) {
	var v uint64
	for _, r := range s {
		var d uint64
		switch {
		case r >= '0' && r <= '9':
			d = uint64(r - '0')
		case r >= 'a' && r <= 'f':
			d = uint64(r-'a') + 10
		default:
			return 0, errInvalidHex
		}
		v = v<<4 | d
	}
	return uint32(v), nil
}

var errInvalidHex = errInvalid("invalid hex digit")

type errInvalid string

func (e errInvalid) Error() string { return string(e) }
