// Package samples discovers runnable sample files and region-tagged code
// snippets under a library's samples tree. Sample sources live under
// src/main/java by Maven convention; snippet regions are delimited by
// [START tag] and [END tag] comment markers in both Java sources and
// pom.xml files.
package samples

import (
	"context"
	"io/fs"
	"path"
	"regexp"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/metadata"
)

var (
	regionStart = regexp.MustCompile(`\[START ([a-zA-Z0-9_]+)\]`)
	regionEnd   = regexp.MustCompile(`\[END ([a-zA-Z0-9_]+)\]`)
)

// Result carries everything one scan produced.
type Result struct {
	Samples  []metadata.Sample
	Snippets map[string]string
}

// Scan walks fsys collecting samples and snippets. fs.WalkDir visits entries
// in lexical order, so repeated scans of the same tree yield identical
// results. Unterminated regions are dropped rather than reported: a broken
// marker in one sample must not block README generation.
func Scan(ctx context.Context, fsys fs.FS) (Result, error) {
	result := Result{Snippets: map[string]string{}}
	if fsys == nil {
		return result, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		switch {
		case isSampleSource(p):
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return err
			}
			result.Samples = append(result.Samples, metadata.Sample{
				Title: Decamelize(strings.TrimSuffix(path.Base(p), ".java")),
				File:  p,
			})
			collectRegions(string(data), result.Snippets)
		case path.Base(p) == "pom.xml":
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return err
			}
			collectRegions(string(data), result.Snippets)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// isSampleSource reports whether p is a Java file under a Maven source root.
// The tree may be rooted at the repository or at samples/ itself, so only
// the src/main/java segment is required.
func isSampleSource(p string) bool {
	if !strings.HasSuffix(p, ".java") {
		return false
	}
	return strings.Contains(p, "src/main/java/")
}

// collectRegions extracts [START]/[END] delimited regions from content into
// dst, keeping the first definition of each tag. Marker lines themselves are
// excluded from the captured text.
func collectRegions(content string, dst map[string]string) {
	open := map[string][]string{}

	for _, line := range strings.Split(content, "\n") {
		if m := regionStart.FindStringSubmatch(line); m != nil {
			tag := m[1]
			if _, exists := open[tag]; !exists {
				open[tag] = []string{}
			}
			continue
		}
		if m := regionEnd.FindStringSubmatch(line); m != nil {
			tag := m[1]
			lines, exists := open[tag]
			if !exists {
				continue
			}
			delete(open, tag)
			if _, taken := dst[tag]; !taken {
				dst[tag] = strings.Join(lines, "\n")
			}
			continue
		}
		for tag := range open {
			open[tag] = append(open[tag], line)
		}
	}
}

// Decamelize expands a camel-cased identifier into spaced words, keeping
// acronym runs together: "exportAssets" becomes "Export Assets" and
// "ACLBatman" becomes "ACL Batman".
func Decamelize(value string) string {
	if value == "" {
		return ""
	}

	runes := []rune(value)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]

	var b strings.Builder
	for i, r := range runes {
		if i > 0 && needsSpace(runes, i) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsSpace(runes []rune, i int) bool {
	prev := runes[i-1]
	cur := runes[i]

	// lower or digit followed by upper: fooBar -> foo Bar
	if isUpper(cur) && (isLower(prev) || isDigit(prev)) {
		return true
	}
	// acronym followed by a capitalised word: ACLBatman -> ACL Batman
	if i+1 < len(runes) && isUpper(prev) && isUpper(cur) && (isLower(runes[i+1]) || isDigit(runes[i+1])) {
		return true
	}
	return false
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
