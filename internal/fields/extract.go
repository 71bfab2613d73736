package fields

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dt-pm-tools/dor-analyzer/internal/content"
	"github.com/dt-pm-tools/dor-analyzer/internal/jira"
	"github.com/dt-pm-tools/dor-analyzer/internal/ticket"
)

// strategy tries one way of resolving a field; empty Text means "not found
// here, try the next one".
type strategy func(rec *ticket.Record, text string, f Field) Value

// Strategies are tried in order, first non-empty result wins.
var strategies = []strategy{fromAttribute, fromSection, fromInline}

// Extract resolves one logical field against the record and its normalized
// text. It returns a Value with ProvenanceNone and empty text when nothing is
// found, never an error. Placeholder terms like "TBD" are returned verbatim;
// judging them is the readiness engine's job.
func Extract(rec *ticket.Record, text string, f Field) Value {
	for _, s := range strategies {
		if v := s(rec, text, f); v.Text != "" {
			return v
		}
	}
	return Value{Provenance: ProvenanceNone}
}

// ExtractAll resolves every logical field.
func ExtractAll(rec *ticket.Record, text string) map[Field]Value {
	out := make(map[Field]Value, len(All()))
	for _, f := range All() {
		out[f] = Extract(rec, text, f)
	}
	return out
}

// fromAttribute reads a dedicated custom attribute when the record has one
// whose display name is known for this field.
func fromAttribute(rec *ticket.Record, _ string, f Field) Value {
	if rec == nil || len(rec.Attrs) == 0 {
		return Value{}
	}
	keys := make([]string, 0, len(rec.Attrs))
	for key := range rec.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, name := range attrNames[f] {
		for _, key := range keys {
			if !strings.EqualFold(key, name) {
				continue
			}
			if text := strings.TrimSpace(Flatten(rec.Attrs[key])); text != "" {
				return Value{Text: text, Provenance: ProvenanceAttribute}
			}
		}
	}
	return Value{}
}

// Flatten renders a loosely typed attribute value as display text. Lists and
// records are flattened recursively; ADF-shaped values go through the
// document normalizer. Unrecognized shapes yield "".
func Flatten(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		var parts []string
		for _, item := range t {
			if s := Flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		if node := jira.NodeFromAny(t); node != nil {
			return strings.TrimSpace(content.FromADF(node))
		}
		// Option/user/version records carry their display text under one of
		// these keys.
		for _, key := range []string{"displayName", "value", "name"} {
			if inner, ok := t[key]; ok {
				if s := Flatten(inner); s != "" {
					return s
				}
			}
		}
		return ""
	default:
		return ""
	}
}

// fromSection finds a heading line matching one of the field's synonyms and
// slices out everything up to the next heading that belongs to a different
// field.
func fromSection(_ *ticket.Record, text string, f Field) Value {
	if text == "" {
		return Value{}
	}
	expr, ok := headingExprs[f]
	if !ok {
		return Value{}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := expr.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var parts []string
		if rest := strings.TrimSpace(m[1]); rest != "" {
			parts = append(parts, rest)
		}
		for j := i + 1; j < len(lines); j++ {
			if owner, isHeading := headingOwner(lines[j]); isHeading && owner != f {
				break
			}
			parts = append(parts, lines[j])
		}

		body := strings.TrimSpace(strings.Join(parts, "\n"))
		if body == "" {
			continue
		}
		return Value{Text: body, Provenance: ProvenancePattern}
	}
	return Value{}
}

// headingOwner reports which field, if any, a line is a section heading for.
// Iteration follows All() so ambiguous lines resolve deterministically.
func headingOwner(line string) (Field, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}
	for _, f := range All() {
		if headingExprs[f].MatchString(line) {
			return f, true
		}
	}
	return "", false
}

// fromInline applies the natural-language fallback for the few fields that
// commonly appear without any heading.
func fromInline(_ *ticket.Record, text string, f Field) Value {
	expr, ok := inlineStrategies[f]
	if !ok || text == "" {
		return Value{}
	}
	if m := expr.FindString(text); m != "" {
		return Value{Text: strings.TrimSpace(m), Provenance: ProvenanceInline}
	}
	return Value{}
}

// Present lists the fields of a value map that carry any text, sorted for
// stable output.
func Present(values map[Field]Value) []Field {
	var out []Field
	for f, v := range values {
		if v.Text != "" {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
