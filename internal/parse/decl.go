// Package parse implements component C3, the declaration parser: turning
// one TL schema line into a structured Decl per the grammar in spec.md §4.2.
package parse

import (
	"fmt"
	"regexp"
	"strings"
)

// RawParam is one unparsed "name:type" token from a declaration, or a
// "{X:Type}" template introduction.
type RawParam struct {
	Name string // parameter name, or the introduced type variable for a template decl
	Type string // raw type text; "" for a template declaration

	IsTemplateDecl bool // true for "{X:Type}"
}

// Decl is one parsed TL declaration (spec.md §4.2).
type Decl struct {
	OriginalName string
	TypeIDHex    string // "" if the declaration omitted an explicit id
	Params       []RawParam
	ResultType   string
	IsMethod     bool // true if parsed from the ---functions--- section
}

var (
	declRe  = regexp.MustCompile(`^([a-zA-Z.0-9_]+)(#[0-9a-f]+)?([^=]*)=\s*([a-zA-Z.<>0-9_]+);\s*$`)
	qnameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)?$`)

	templateDeclRe = regexp.MustCompile(`^\{([A-Za-z]+):Type\}$`)
	paramRe        = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*):([A-Za-z0-9<>._]+|![a-zA-Z]+|#|[a-z_][a-z0-9_]*\.[0-9]+\?[A-Za-z0-9<>._]+)$`)
)

// Parse parses one already comment-stripped, non-blank, non-section-marker
// TL line into a Decl. isMethod indicates which section the line came from.
func Parse(line string, isMethod bool) (*Decl, error) {
	m := declRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("bad declaration line: %q", line)
	}

	name := m[1]
	typeID := strings.TrimPrefix(m[2], "#")
	for len(typeID) > 0 && typeID[0] == '0' {
		typeID = typeID[1:]
	}

	rawParams := strings.Fields(m[3])
	params := make([]RawParam, 0, len(rawParams))
	for _, p := range rawParams {
		if td := templateDeclRe.FindStringSubmatch(p); td != nil {
			params = append(params, RawParam{Name: td[1], IsTemplateDecl: true})
			continue
		}
		pm := paramRe.FindStringSubmatch(p)
		if pm == nil {
			return nil, fmt.Errorf("bad param %q in line: %q", p, line)
		}
		params = append(params, RawParam{Name: pm[1], Type: pm[2]})
	}

	return &Decl{
		OriginalName: name,
		TypeIDHex:    typeID,
		Params:       params,
		ResultType:   m[4],
		IsMethod:     isMethod,
	}, nil
}

// IsQName reports whether name is a valid dotted-or-plain schema identifier.
func IsQName(name string) bool {
	return qnameRe.MatchString(name)
}
