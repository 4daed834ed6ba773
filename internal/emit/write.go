package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/tools/imports"

	"github.com/sandia-minimega/tlgen/internal/tllog"
)

// WriteFiles implements component C12: normalizes imports for each
// generated file (golang.org/x/tools/imports both adds the packages a
// file actually references and drops whatever the header template
// over-imported), writes it to outDir only if its content changed, and
// finally touches a ".timestamp" sentinel recording the run — the
// convention build systems poll instead of diffing every generated file.
func WriteFiles(outDir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(outDir, f.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", f.Name, err)
		}

		formatted, err := imports.Process(path, f.Content, nil)
		if err != nil {
			tllog.Error("goimports failed on %s, writing unprocessed source: %v", f.Name, err)
			formatted = f.Content
		}

		if unchanged(path, formatted) {
			tllog.Debug("%s unchanged, skipping write", f.Name)
			continue
		}
		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		tllog.Info("wrote %s", path)
	}

	return touchTimestamp(outDir)
}

func unchanged(path string, content []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Equal(existing, content)
}

func touchTimestamp(outDir string) error {
	path := filepath.Join(outDir, ".timestamp")
	return os.WriteFile(path, []byte(time.Now().UTC().Format(time.RFC3339)+"\n"), 0o644)
}
