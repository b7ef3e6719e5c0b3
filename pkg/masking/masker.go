package masking

import "sort"

// Masker applies compiled pattern groups to text.
type Masker struct {
	patterns map[string]*CompiledPattern
}

// NewMasker creates a Masker with all builtin patterns compiled.
func NewMasker() *Masker {
	return &Masker{patterns: compileBuiltins()}
}

// Detect returns the names of patterns that match the text, sorted for
// deterministic output.
func (m *Masker) Detect(text string) []string {
	var hits []string
	for name, p := range m.patterns {
		if p.Regex.MatchString(text) {
			hits = append(hits, name)
		}
	}
	sort.Strings(hits)
	return hits
}

// DetectGroup returns the names of patterns in the named group that match.
func (m *Masker) DetectGroup(group, text string) []string {
	var hits []string
	for _, name := range patternGroups[group] {
		p, ok := m.patterns[name]
		if !ok {
			continue
		}
		if p.Regex.MatchString(text) {
			hits = append(hits, name)
		}
	}
	sort.Strings(hits)
	return hits
}

// Mask replaces every match of every pattern with its replacement.
func (m *Masker) Mask(text string) string {
	for _, p := range m.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// Pattern returns the named compiled pattern, if present.
func (m *Masker) Pattern(name string) (*CompiledPattern, bool) {
	p, ok := m.patterns[name]
	return p, ok
}
