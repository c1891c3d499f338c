package gotemplate

import (
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-readmegen/internal/samples"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("slugify") {
		_ = pongo2.RegisterFilter("slugify", filterSlugify)
	}
	if !pongo2.FilterExists("decamelize") {
		_ = pongo2.RegisterFilter("decamelize", filterDecamelize)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9 -]`)

// filterSlugify turns heading text into an anchor fragment the way GitHub
// does: lowercase, punctuation stripped, spaces to hyphens.
func filterSlugify(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	slug := strings.ToLower(in.String())
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = strings.Join(strings.Fields(slug), "-")
	return pongo2.AsValue(slug), nil
}

// filterDecamelize splits camelCase identifiers into human-readable words,
// matching the conversion used for sample titles.
func filterDecamelize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(samples.Decamelize(in.String())), nil
}
