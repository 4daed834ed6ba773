// Package config holds the scheme configuration (component C1 of the
// compiler): the user-supplied settings that parameterize every other
// component, loaded from a TOML document.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Prefixes holds the symbol-name prefixes of the scheme document. They are
// loaded but not read by the Go emitters, which derive names from the
// schema identifiers alone (see internal/emit/naming.go).
type Prefixes struct {
	Data      string `toml:"data"`
	Type      string `toml:"type"`
	ID        string `toml:"id"`
	Construct string `toml:"construct"`
}

// Namespaces holds the declaration namespaces of the scheme document. They
// are loaded but not read by the Go emitters; every generated declaration
// goes into the one package named on the command line.
type Namespaces struct {
	Global  string `toml:"global"`
	Creator string `toml:"creator"`
}

// Types names the fundamental integer widths and accumulator types of the
// scheme document. They are loaded but not read by the Go emitters, whose
// readers/writers always use the internal/wire package types.
type Types struct {
	TypeID string `toml:"type_id"`
	Prime  string `toml:"prime"`
	Buffer string `toml:"buffer"`
}

// Conversion toggles adapter emission (C11) and names the external model.
type Conversion struct {
	Include            string   `toml:"include"`
	Namespace          string   `toml:"namespace"`
	BuiltinAdditional  []string `toml:"builtin_additional"`
	BuiltinIncludeFrom string   `toml:"builtin_include_from"`
	BuiltinIncludeTo   string   `toml:"builtin_include_to"`
}

// DumpToText toggles dump emission (C10).
type DumpToText struct {
	Include string `toml:"include"`
}

// Scheme is the full C1 configuration value.
type Scheme struct {
	Prefixes        Prefixes          `toml:"prefixes"`
	Namespaces      Namespaces        `toml:"namespaces"`
	FlagInheritance map[string]string `toml:"flag_inheritance"`
	TypeIDExceptions []string         `toml:"type_id_exceptions"`
	RenamedTypes    map[string]string `toml:"renamed_types"`
	Skip            []string          `toml:"skip"`
	Builtin         []string          `toml:"builtin"`
	BuiltinTemplates []string         `toml:"builtin_templates"`
	BuiltinInclude  string            `toml:"builtin_include"`
	Nullable        []string          `toml:"nullable"`
	Synonyms        map[string]string `toml:"synonyms"`
	Sections        []string          `toml:"sections"`
	Types           Types             `toml:"types"`
	Conversion      *Conversion       `toml:"conversion"`
	DumpToText      *DumpToText       `toml:"dump_to_text"`
	OptimizeSingleData bool           `toml:"optimize_single_data"`
}

// Load decodes a Scheme from a TOML file at path.
func Load(path string) (*Scheme, error) {
	var s Scheme
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("loading scheme %s: %w", path, err)
	}
	return &s, nil
}

// ReadWriteSection reports whether the "read-write" output section is
// enabled. The emitters do not consult it: Read/Write functions are
// generated for every constructor regardless of this setting.
func (s *Scheme) ReadWriteSection() bool {
	for _, v := range s.Sections {
		if v == "read-write" {
			return true
		}
	}
	return false
}

// IsBuiltin reports whether name is a scalar or template builtin type.
func (s *Scheme) IsBuiltin(name string) bool {
	for _, v := range s.Builtin {
		if v == name {
			return true
		}
	}
	for _, v := range s.BuiltinTemplates {
		if v == name {
			return true
		}
	}
	return false
}

// IsNullable reports whether the named abstract type was declared nullable.
func (s *Scheme) IsNullable(name string) bool {
	for _, v := range s.Nullable {
		if v == name {
			return true
		}
	}
	return false
}

// RenameType applies the renamedTypes substitution table.
func (s *Scheme) RenameType(name string) string {
	if renamed, ok := s.RenamedTypes[name]; ok {
		return renamed
	}
	return name
}

// Synonym resolves a field-type synonym to its canonical spelling, used by
// CRC canonicalization (C4).
func (s *Scheme) Synonym(name string) (string, bool) {
	v, ok := s.Synonyms[name]
	return v, ok
}

// HasException reports whether "<originalName>#<hex>" is in the
// typeIdExceptions table, silencing a CRC mismatch for that declaration.
func (s *Scheme) HasException(key string) bool {
	for _, v := range s.TypeIDExceptions {
		if v == key {
			return true
		}
	}
	return false
}

// IsSkipped reports whether line is listed verbatim in the skip table.
func (s *Scheme) IsSkipped(line string) bool {
	for _, v := range s.Skip {
		if v == line {
			return true
		}
	}
	return false
}
