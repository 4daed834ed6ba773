// Package source implements component C2 (source reader) and the
// comment-tag scanning behind component C5's nullability/bots-only
// detection (spec.md §4.1, §6 "Comment tag language").
package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var layerRe = regexp.MustCompile(`^//\s*LAYER\s+(\d+)\s*$`)

// Line is one line of schema text, paired with any doc-comment text
// accumulated for the declaration it precedes.
type Line struct {
	Text     string // schema text, comment tail already stripped
	Comments string // accumulated "@tag ..." doc comment for this declaration
}

// Read concatenates inputFiles in order, prefixing each with a
// "---types---" marker (every file begins in the types section per
// spec.md §4.1), extracts the last "// LAYER N" directive, and returns the
// input basenames for the output banner.
func Read(inputFiles []string) (lines []Line, layer int, names []string, err error) {
	var accum string
	resetAccum := func() { accum = "" }

	for _, path := range inputFiles {
		names = append(names, filepath.Base(path))
		lines = append(lines, Line{Text: "---types---"})
		resetAccum()

		f, ferr := os.Open(path)
		if ferr != nil {
			return nil, 0, nil, fmt.Errorf("reading %s: %w", path, ferr)
		}

		scanErr := func() error {
			defer f.Close()
			sc := bufio.NewScanner(f)
			sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for sc.Scan() {
				raw := sc.Text()

				if m := layerRe.FindStringSubmatch(raw); m != nil {
					fmt.Sscanf(m[1], "%d", &layer)
					continue
				}

				text, comment, hasComment := splitComment(raw)

				if isBlank(text) {
					if !hasComment {
						resetAccum()
					} else if comment != "" {
						accum += " " + comment
					}
					continue
				}

				lines = append(lines, Line{Text: text, Comments: accum})
				accum = ""
			}
			return sc.Err()
		}()
		if scanErr != nil {
			return nil, 0, nil, fmt.Errorf("reading %s: %w", path, scanErr)
		}
	}

	return lines, layer, names, nil
}

var commentRe = regexp.MustCompile(`^(.*?)//(.*)$`)
var blankRe = regexp.MustCompile(`^\s*$`)

// splitComment strips a trailing "// ..." tail off a schema line, the way
// generate_tl.py's per-line regex does, returning whether a "//" was found
// at all (a line can contain a bare "//" with empty comment text).
func splitComment(line string) (text, comment string, has bool) {
	if m := commentRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	return line, "", false
}

func isBlank(s string) bool {
	return blankRe.MatchString(s)
}
