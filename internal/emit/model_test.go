package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandia-minimega/tlgen/internal/compile"
	"github.com/sandia-minimega/tlgen/internal/config"
)

func compileFixture(t *testing.T, content string, scheme *config.Scheme) *compile.Result {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.tl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	result, err := compile.Compile([]string{path}, scheme)
	require.NoError(t, err)
	return result
}

func TestEmitModelBoolAndMethod(t *testing.T) {
	result := compileFixture(t, `// LAYER 5
boolTrue#997275b5 = Bool;
boolFalse#bc799737 = Bool;

---functions---

messages_sendMessage flags:# peer:InputPeer text:string silent:flags.0?true = Updates;
`, nil)

	g := NewGenerator()
	g.Execute("header", HeaderData{
		Inputs:         result.Names,
		Package:        "tl",
		WirePackage:    "example.com/tl/internal/wire",
		Layer:          result.Layer,
		EmitLayerConst: true,
	})
	EmitModel(g, result)
	EmitMethods(g, result)
	src := string(g.Format())

	require.Contains(t, src, "package tl")
	require.Contains(t, src, "const SchemaLayer = 5")
	require.Contains(t, src, "type Bool interface")
	require.Contains(t, src, "func ReadBoolTrue(r *wire.Reader) (*BoolTrue, error)")
	require.Contains(t, src, "type MessagesSendMessage struct")
	require.Contains(t, src, "Silent bool")
	require.Contains(t, src, `func (*MessagesSendMessage) MethodName() string { return "messages_sendMessage" }`)
	require.Contains(t, src, "func ReadByTag(tag uint32, r *wire.Reader) (interface{}, error)")
}

func TestEmitModelConditionalField(t *testing.T) {
	result := compileFixture(t, `// LAYER 1
message flags:# via_bot_id:flags.1?long text:string = Message;
`, nil)

	g := NewGenerator()
	EmitModel(g, result)
	src := string(g.Format())

	require.Contains(t, src, "ViaBotID *int64")
	require.Contains(t, src, "if wire.HasFlag(flags, 1) {")
}
