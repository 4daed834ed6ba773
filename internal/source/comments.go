package source

import (
	"strings"
)

// endsWithForTag reports whether the doc-comment text for tag ends with
// "; ending", allowing the small set of followers the grammar in spec.md §6
// recognizes (".", ";", " if", " to", " otherwise", " unless"). Ported from
// generate_tl.py's endsWithForTag.
func endsWithForTag(comments, tag, ending string) bool {
	marker := "@" + tag + " "
	pos := strings.Index(comments, marker)
	if pos < 0 {
		return false
	}

	tail := comments[pos+len(marker):]
	line := tail
	if next := strings.Index(tail, "@"); next >= 0 {
		line = tail[:next]
	}
	stripped := strings.TrimSpace(line)

	fullEnding := "; " + strings.TrimSpace(ending)
	if len(stripped) < len(fullEnding) {
		return false
	}

	followers := []string{fullEnding + ".", fullEnding + ";", fullEnding + " if", fullEnding + " to", fullEnding + " otherwise", fullEnding + " unless"}
	if strings.HasSuffix(stripped, fullEnding) {
		return true
	}
	for _, f := range followers {
		if strings.Contains(stripped, f) {
			return true
		}
	}
	return false
}

// paramNameTag maps a field name to its doc-comment tag: the param named
// "description" collides with the top-level "@description" tag, so it is
// addressed as "@param_description" instead.
func paramNameTag(name string) string {
	if name == "description" {
		return "param_description"
	}
	return name
}

// IsBotsOnlyLine reports whether the declaration's own doc comment marks
// it "for bots only" (the whole constructor/method is dropped).
func IsBotsOnlyLine(comments string) bool {
	return endsWithForTag(comments, "description", "for bots only")
}

// IsBotsOnlyParam reports whether a field's doc comment marks it
// "for bots only" (the field is omitted from constructors, filled with a
// zero value in adapters).
func IsBotsOnlyParam(comments, name string) bool {
	return endsWithForTag(comments, paramNameTag(name), "for bots only")
}

// IsNullableVector reports whether a vector field, whose name must end in
// "s", is tagged "<name> may be null" (each element is individually
// nullable).
func IsNullableVector(comments, name string) bool {
	return strings.HasSuffix(name, "s") && endsWithForTag(comments, paramNameTag(name), name+" may be null")
}

// IsNullableParam reports whether a field is tagged "may be null" or
// "pass null".
func IsNullableParam(comments, name string) bool {
	tag := paramNameTag(name)
	return endsWithForTag(comments, tag, "may be null") || endsWithForTag(comments, tag, "pass null")
}
