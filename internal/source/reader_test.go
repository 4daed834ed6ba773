package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLayerAndSections(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "sample.tl", `// LAYER 42
boolTrue#997275b5 = Bool;
boolFalse#bc799737 = Bool;

---functions---

// Sends a message.
// @peer Destination.
sendMessage#abcd1234 peer:InputPeer text:string = Updates;
`)

	lines, layer, names, err := Read([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if layer != 42 {
		t.Errorf("layer = %d, want 42", layer)
	}
	if len(names) != 1 || names[0] != "sample.tl" {
		t.Errorf("names = %v", names)
	}

	var texts []string
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	want := []string{"---types---", "boolTrue#997275b5 = Bool;", "boolFalse#bc799737 = Bool;", "---functions---", "sendMessage#abcd1234 peer:InputPeer text:string = Updates;"}
	if len(texts) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(texts), texts, len(want))
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, texts[i], want[i])
		}
	}

	last := lines[len(lines)-1]
	if last.Comments == "" {
		t.Error("expected accumulated doc comment on sendMessage declaration")
	}
}

func TestReadResetsAccumulatorOnBlankLine(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "sample.tl", `// stray comment, not attached

plain#1 x:int = Plain;
`)
	lines, _, _, err := Read([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range lines {
		if l.Text == "plain#1 x:int = Plain;" && l.Comments != "" {
			t.Errorf("expected accumulator reset by blank line, got comments %q", l.Comments)
		}
	}
}
