package toolschema

import (
	"strings"
)

// DocStyle is the marker grammar used to split a raw documentation comment
// into an overall description and per-parameter descriptions. The grammar is
// pluggable because the observed formats vary (trailing-delimiter entries vs
// newline-terminated entries).
type DocStyle interface {
	// Parse never fails: absent or unstructured text yields an empty
	// description and an empty map. Documentation is advisory; names that do
	// not match the signature are dropped by the builder, not here.
	Parse(doc string) (description string, params map[string]string)
}

// DocStyleRest parses ":param name: description" entries. A description runs
// until the next recognized tag (:param, :type, :return, :rtype) or end of
// text; a trailing ";" delimiter is tolerated and stripped. This is the
// default style.
var DocStyleRest DocStyle = restDocStyle{}

// DocStyleLines parses "name: description" lines. The overall description is
// everything before the first such line; indented continuation lines extend
// the previous entry.
var DocStyleLines DocStyle = lineDocStyle{}

type restDocStyle struct{}

// restTags terminate a :param description. Order of lookup does not matter;
// the nearest following tag wins.
var restTags = []string{":param", ":type", ":return", ":rtype"}

func (restDocStyle) Parse(doc string) (string, map[string]string) {
	params := make(map[string]string)
	text := collapseWhitespace(doc)
	if text == "" {
		return "", params
	}

	first := nextRestTag(text, 0)
	desc := strings.TrimSpace(text[:first])

	pos := first
	for pos < len(text) {
		if !strings.HasPrefix(text[pos:], ":param") {
			pos = nextRestTag(text, pos+1)
			continue
		}
		end := nextRestTag(text, pos+len(":param"))
		entry := text[pos+len(":param") : end]
		if name, d, ok := strings.Cut(entry, ":"); ok {
			name = strings.TrimSpace(name)
			d = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(d), ";"))
			if name != "" && d != "" {
				params[name] = d
			}
		}
		pos = end
	}
	return desc, params
}

// nextRestTag returns the index of the first recognized tag at or after from,
// or len(text) if there is none.
func nextRestTag(text string, from int) int {
	end := len(text)
	for _, tag := range restTags {
		if i := strings.Index(text[from:], tag); i >= 0 && from+i < end {
			end = from + i
		}
	}
	return end
}

// collapseWhitespace joins all whitespace runs (including newlines) into
// single spaces, matching how multi-line doc comments are flattened before
// tag scanning.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type lineDocStyle struct{}

func (lineDocStyle) Parse(doc string) (string, map[string]string) {
	params := make(map[string]string)
	var descLines []string
	current := ""
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		name, rest, ok := cutParamLine(trimmed)
		switch {
		case ok:
			current = name
			params[current] = rest
		case current != "" && trimmed != "" && line != trimmed:
			// Indented continuation of the previous entry.
			params[current] = strings.TrimSpace(params[current] + " " + trimmed)
		case current == "" && trimmed != "":
			descLines = append(descLines, trimmed)
		default:
			current = ""
		}
	}
	return strings.Join(descLines, " "), params
}

// cutParamLine splits "name: description" where name is a single identifier.
func cutParamLine(line string) (string, string, bool) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	rest = strings.TrimSpace(rest)
	if name == "" || rest == "" || strings.ContainsAny(name, " \t") {
		return "", "", false
	}
	return name, rest, true
}
