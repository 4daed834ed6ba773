package emit

// headerTemplate opens every generated file: a machine-generated banner,
// the package clause, and the wire runtime import every model/method/dump
// file needs.
const headerTemplate = `// Code generated by tlgen from {{range $i, $f := .Inputs}}{{if $i}}, {{end}}{{$f}}{{end}}; DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
{{range .ExtraImports}}	{{printf "%q" .}}
{{end}}	"{{.WirePackage}}"
)
{{if .EmitLayerConst}}
// SchemaLayer is the layer version declared by the compiled schema.
const SchemaLayer = {{.Layer}}
{{end}}`
