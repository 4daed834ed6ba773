package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFilesCreatesOutputsAndTimestamp(t *testing.T) {
	dir := t.TempDir()
	files := []File{
		{Name: "model.go", Content: []byte("package tl\n\nconst X = 1\n")},
		{Name: "external/external.go", Content: []byte("package external\n\ntype Y struct{}\n")},
	}

	require.NoError(t, WriteFiles(dir, files))

	modelSrc, err := os.ReadFile(filepath.Join(dir, "model.go"))
	require.NoError(t, err)
	require.Contains(t, string(modelSrc), "package tl")

	extSrc, err := os.ReadFile(filepath.Join(dir, "external", "external.go"))
	require.NoError(t, err)
	require.Contains(t, string(extSrc), "package external")

	_, err = os.Stat(filepath.Join(dir, ".timestamp"))
	require.NoError(t, err, "expected .timestamp sentinel to be written")
}

func TestWriteFilesSkipsUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.go")
	content := []byte("package tl\n\nconst X = 1\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	before := info.ModTime()

	require.NoError(t, WriteFiles(dir, []File{{Name: "model.go", Content: content}}))

	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before, info.ModTime(), "unchanged content should not be rewritten")
}
