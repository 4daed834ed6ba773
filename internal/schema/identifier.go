// Package schema is the compiler's intermediate representation: the typed
// model every other component (parser, registry, emitters) builds and
// consumes. See spec.md §3 "Data Model".
package schema

import "strings"

// Identifier is a schema name, either dotted ("messages.SendMessage") or
// plain ("sendMessage"). The tail's leading case determines boxed/bare.
type Identifier struct {
	Namespace string // "" if not dotted
	Tail      string
}

// ParseIdentifier splits name at its last dot.
func ParseIdentifier(name string) Identifier {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return Identifier{Namespace: name[:i], Tail: name[i+1:]}
	}
	return Identifier{Tail: name}
}

// IsBoxed reports whether this identifier names a polymorphic (boxed) type,
// determined by the case of the tail's first rune.
func (id Identifier) IsBoxed() bool {
	if id.Tail == "" {
		return false
	}
	r := id.Tail[0]
	return r >= 'A' && r <= 'Z'
}

// Normalized returns the dot-free form used for Go identifiers
// ("messages.SendMessage" -> "messages_SendMessage").
func (id Identifier) Normalized() string {
	if id.Namespace == "" {
		return id.Tail
	}
	return id.Namespace + "_" + id.Tail
}

// String reconstructs the original dotted spelling.
func (id Identifier) String() string {
	if id.Namespace == "" {
		return id.Tail
	}
	return id.Namespace + "." + id.Tail
}

// BareName lowercases the tail's leading rune, producing the constructor
// (bare) spelling of a boxed identifier: "messages.Messages" -> "messages_messages".
func BareName(name string) string {
	id := ParseIdentifier(name)
	if id.Tail == "" {
		return name
	}
	tail := strings.ToLower(id.Tail[:1]) + id.Tail[1:]
	if id.Namespace == "" {
		return tail
	}
	return id.Namespace + "_" + tail
}

// BoxedName uppercases the tail's leading rune, producing the abstract
// (boxed) spelling of a bare identifier: "messages.sendMessage" -> "messages_SendMessage".
func BoxedName(name string) string {
	id := ParseIdentifier(name)
	if id.Tail == "" {
		return name
	}
	tail := strings.ToUpper(id.Tail[:1]) + id.Tail[1:]
	if id.Namespace == "" {
		return tail
	}
	return id.Namespace + "_" + tail
}
