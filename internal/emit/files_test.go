package emit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandia-minimega/tlgen/internal/config"
)

func TestGenerateFilesGatedBySchemeSections(t *testing.T) {
	result := compileFixture(t, `// LAYER 1
boolTrue#997275b5 = Bool;
boolFalse#bc799737 = Bool;
`, nil)

	files := GenerateFiles(result, &config.Scheme{}, Options{
		Inputs:      result.Names,
		Package:     "tl",
		WirePackage: "example.com/tl/internal/wire",
	})

	require.Len(t, files, 1)
	require.Equal(t, "model.go", files[0].Name)
}

func TestGenerateFilesIncludesDumpAndConversion(t *testing.T) {
	result := compileFixture(t, `// LAYER 1
boolTrue#997275b5 = Bool;
boolFalse#bc799737 = Bool;
`, nil)

	scheme := &config.Scheme{
		DumpToText: &config.DumpToText{Include: "dump.h"},
		Conversion: &config.Conversion{Namespace: "external", Include: "external.h"},
	}

	files := GenerateFiles(result, scheme, Options{
		Inputs:      result.Names,
		Package:     "tl",
		WirePackage: "example.com/tl/internal/wire",
		ExternalPkg: "example.com/tl/external",
	})

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	require.ElementsMatch(t, names, []string{"model.go", "dump.go", "external/external.go", "convert.go"})
}
