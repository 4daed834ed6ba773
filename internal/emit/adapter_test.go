package emit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandia-minimega/tlgen/internal/config"
)

func TestEmitAdaptersPlainAndConditional(t *testing.T) {
	scheme := &config.Scheme{Conversion: &config.Conversion{Namespace: "external"}}
	result := compileFixture(t, `// LAYER 1
photoEmpty id:long = Photo;
message flags:# via_bot_id:flags.1?long text:string = Message;
`, scheme)

	external := NewGenerator()
	EmitExternalTypes(external, result, scheme)
	extSrc := string(external.Format())
	require.Contains(t, extSrc, "type PhotoEmpty struct")
	require.Contains(t, extSrc, "type Message struct")

	convert := NewGenerator()
	EmitAdapters(convert, result, scheme, "external")
	src := string(convert.Format())

	require.Contains(t, src, "func ToExternalPhotoEmpty(v *PhotoEmpty) (*external.PhotoEmpty, error)")
	require.Contains(t, src, "func FromExternalPhotoEmpty(v *external.PhotoEmpty) (*PhotoEmpty, error)")
	require.Contains(t, src, "out.ID = v.ID")

	require.Contains(t, src, "func ToExternalMessage(v *Message) (*external.Message, error)")
	require.Contains(t, src, "has a conditional field the external contract cannot express")
}

func TestEmitExternalTypesPlainFields(t *testing.T) {
	scheme := &config.Scheme{Conversion: &config.Conversion{Namespace: "external"}}
	result := compileFixture(t, `// LAYER 1
user id:long access_hash:long = User;
`, scheme)

	external := NewGenerator()
	EmitExternalTypes(external, result, scheme)
	src := string(external.Format())
	require.Contains(t, src, "type User struct")
	require.Contains(t, src, "ID         int64")
	require.Contains(t, src, "AccessHash int64")
}
