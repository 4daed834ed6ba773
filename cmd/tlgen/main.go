// Command tlgen compiles a TL schema into a Go package implementing its
// types, read/write codecs, RPC methods, and (when the scheme enables them)
// a text dump and an external-contract adapter layer.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/emit"
	"github.com/sandia-minimega/tlgen/internal/tllog"
)

var (
	f_scheme  = flag.String("scheme", "", "path to the scheme TOML configuration")
	f_out     = flag.String("o", ".", "output directory")
	f_pkg     = flag.String("package", "tl", "package name for the generated model")
	f_wire    = flag.String("wire-package", "github.com/sandia-minimega/tlgen/internal/wire", "import path of the wire runtime package")
	f_extpkg  = flag.String("external-package", "", "import path of the external contract package (defaults to the scheme's conversion include value)")
	f_level   = flag.String("level", "info", "log level: debug, info, warn, error, fatal")
	f_logfile = flag.String("logfile", "", "optional file to additionally log to")
)

func usage() {
	fmt.Fprintf(os.Stderr, "USAGE: %s [OPTIONS] <schema.tl> [schema2.tl ...]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	level, err := tllog.ParseLevel(*f_level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := tllog.Init(level, true, *f_logfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var scheme *config.Scheme
	if *f_scheme != "" {
		scheme, err = config.Load(*f_scheme)
		if err != nil {
			tllog.Fatal("loading scheme: %v", err)
		}
	} else {
		scheme = &config.Scheme{}
	}

	result, err := compile.Compile(flag.Args(), scheme)
	if err != nil {
		tllog.Fatal("compiling schema: %v", err)
	}

	externalPkg := *f_extpkg
	if scheme.Conversion != nil && externalPkg == "" {
		tllog.Warn("conversion enabled but -external-package not set; convert.go will import %q, which must be the module-qualified import path for %s/%s.go",
			scheme.Conversion.Include, *f_out, emit.ExternalPackageName(scheme))
		externalPkg = scheme.Conversion.Include
	}

	files := emit.GenerateFiles(result, scheme, emit.Options{
		Inputs:      result.Names,
		Package:     *f_pkg,
		WirePackage: *f_wire,
		ExternalPkg: externalPkg,
	})

	if err := emit.WriteFiles(*f_out, files); err != nil {
		tllog.Fatal("writing output: %v", err)
	}

	tllog.Info("parsed %d input(s), %d abstract type(s), %d declaration(s) dropped for CRC mismatch",
		len(result.Names), countWithConstructors(result), result.Dropped)
	tllog.Info("wrote %s to %s", strings.Join(fileNames(files), ", "), *f_out)
}

func countWithConstructors(result *compile.Result) int {
	n := 0
	for _, t := range result.Types {
		if len(t.Constructors) > 0 {
			n++
		}
	}
	return n
}

func fileNames(files []emit.File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}
