package emit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitDumpConditionalAndVector(t *testing.T) {
	result := compileFixture(t, `// LAYER 1
boolTrue#997275b5 = Bool;
boolFalse#bc799737 = Bool;

message flags:# via_bot_id:flags.1?long entities:Vector<MessageEntity> silent:flags.0?true = Message;
`, nil)

	g := NewGenerator()
	EmitDump(g, result)
	src := string(g.Format())

	require.Contains(t, src, "func DumpToText(w io.Writer, r *wire.Reader, indent string) error")
	require.Contains(t, src, "func dumpByTag(tag uint32, w io.Writer, r *wire.Reader, indent string) error")
	require.Contains(t, src, "func dumpMessage(w io.Writer, r *wire.Reader, indent string) error")
	require.Contains(t, src, "SKIPPED BY BIT 1 IN FIELD flags")
	require.Contains(t, src, "silent: YES")
	require.Contains(t, src, "Vector[")
}
