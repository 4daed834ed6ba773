package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/sandia-minimega/tlgen/internal/tllog"
)

// Generator accumulates generated Go source into a buffer: the file banner
// through the named "header" template (the way vmconfiger.Generator drives
// its templates), and everything else through Printf.
type Generator struct {
	buf  bytes.Buffer
	tmpl *template.Template
}

// NewGenerator parses the package's template set once.
func NewGenerator() *Generator {
	g := &Generator{}
	g.tmpl = template.Must(template.New("header").Parse(headerTemplate))
	return g
}

// Printf appends formatted text directly; the emitters build every
// declaration after the banner this way.
func (g *Generator) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&g.buf, format, args...)
}

// Execute renders the named template against data into the buffer.
func (g *Generator) Execute(name string, data interface{}) {
	if err := g.tmpl.ExecuteTemplate(&g.buf, name, data); err != nil {
		tllog.Error("executing template %s: %v", name, err)
	}
}

// Format gofmt's the accumulated buffer. If formatting fails (a bug in the
// header template or in one of the emitters), the raw buffer is returned so the caller can
// still write it out for inspection.
func (g *Generator) Format() []byte {
	src, err := format.Source(g.buf.Bytes())
	if err != nil {
		tllog.Error("generated source did not gofmt: %v", err)
		return g.buf.Bytes()
	}
	return src
}

// Reset clears the buffer for reuse across output files; the parsed
// template set is kept.
func (g *Generator) Reset() {
	g.buf.Reset()
}
