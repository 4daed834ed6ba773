package emit

import (
	"fmt"

	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/config"
)

// Options parameterizes a full compile-to-source run.
type Options struct {
	Inputs      []string // the schema files that were compiled, for the banner
	Package     string   // package name for the main model/method/dump output
	WirePackage string   // import path of internal/wire
	ExternalPkg string   // package name + import path for the external contract types
}

// File is one named Go source buffer ready to be written to disk.
type File struct {
	Name    string
	Content []byte
}

// GenerateFiles drives C8-C11 and returns the set of output files for one
// compile. spec.md's C-derived "up to seven files per invocation" (header
// + source, times three: main/conversion/dump, plus a timestamp sentinel)
// collapses naturally in Go: there's no header/source split, so each pair
// becomes a single .go file. The external contract's type declarations get
// their own file/package since Go has no forward declarations the way a
// C header would, and adapter functions need something concrete to import.
func GenerateFiles(result *compile.Result, scheme *config.Scheme, opts Options) []File {
	var files []File

	model := NewGenerator()
	model.Execute("header", HeaderData{
		Inputs:         opts.Inputs,
		Package:        opts.Package,
		WirePackage:    opts.WirePackage,
		Layer:          result.Layer,
		EmitLayerConst: true,
	})
	EmitModel(model, result)
	EmitMethods(model, result)
	files = append(files, File{Name: "model.go", Content: model.Format()})

	if scheme.DumpToText != nil {
		dump := NewGenerator()
		dump.Execute("header", HeaderData{
			Inputs:       opts.Inputs,
			Package:      opts.Package,
			WirePackage:  opts.WirePackage,
			ExtraImports: []string{"io"},
		})
		EmitDump(dump, result)
		files = append(files, File{Name: "dump.go", Content: dump.Format()})
	}

	if scheme.Conversion != nil {
		extPkgName := externalPackageName(scheme)

		external := NewGenerator()
		external.Execute("header", HeaderData{
			Inputs:      opts.Inputs,
			Package:     extPkgName,
			WirePackage: opts.WirePackage,
		})
		EmitExternalTypes(external, result, scheme)
		files = append(files, File{Name: fmt.Sprintf("%s/%s.go", extPkgName, extPkgName), Content: external.Format()})

		convert := NewGenerator()
		convert.Execute("header", HeaderData{
			Inputs:       opts.Inputs,
			Package:      opts.Package,
			WirePackage:  opts.WirePackage,
			ExtraImports: []string{opts.ExternalPkg},
		})
		EmitAdapters(convert, result, scheme, extPkgName)
		files = append(files, File{Name: "convert.go", Content: convert.Format()})
	}

	return files
}

func externalPackageName(scheme *config.Scheme) string {
	return ExternalPackageName(scheme)
}

// ExternalPackageName reports the package/directory name GenerateFiles uses
// for the external contract package, so callers (cmd/tlgen) can describe
// where -external-package needs to point.
func ExternalPackageName(scheme *config.Scheme) string {
	if scheme.Conversion != nil && scheme.Conversion.Namespace != "" {
		return scheme.Conversion.Namespace
	}
	return "external"
}
