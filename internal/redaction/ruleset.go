// Package redaction resolves the exclusion rules a collection run must apply
// before anything is gathered or uploaded.
//
// Rules come from one of two on-disk formats: the structured format, split
// across a command/file rule file and a content rule file, or the legacy
// single-file INI format. The engine loads whichever is present, validates
// it, and produces a single normalized RuleSet.
package redaction

import (
	"gopkg.in/yaml.v3"
)

// Rule categories recognized in every rule file format.
const (
	CategoryCommands   = "commands"
	CategoryFiles      = "files"
	CategoryComponents = "components"
	CategoryPatterns   = "patterns"
	CategoryKeywords   = "keywords"
)

// ruleCategories lists every valid category, in the order they are reported.
var ruleCategories = []string{
	CategoryCommands,
	CategoryFiles,
	CategoryComponents,
	CategoryPatterns,
	CategoryKeywords,
}

// Expected key sets for the two structured rule files.
var (
	redactionFileKeys        = []string{CategoryCommands, CategoryFiles, CategoryComponents}
	contentRedactionFileKeys = []string{CategoryPatterns, CategoryKeywords}
)

// PatternSet holds the patterns category, which is the one category with two
// valid on-disk shapes: a flat list of substrings, or a regex wrapper
// ({regex: [...]}). Regex records which shape the source used.
type PatternSet struct {
	Entries []string
	Regex   bool
}

// IsZero reports whether the category is absent. A regex wrapper counts as
// present even when its list is empty, matching how the wrapper shape marks
// the category as configured.
func (p PatternSet) IsZero() bool {
	return len(p.Entries) == 0 && !p.Regex
}

// RuleSet is the resolved exclusion configuration. A nil/empty slice means
// the category is absent; the filtering step guarantees resolved rule sets
// never carry empty categories.
type RuleSet struct {
	Commands   []string
	Files      []string
	Components []string
	Patterns   PatternSet
	Keywords   []string
}

// IsEmpty reports whether no category carries any value.
func (r RuleSet) IsEmpty() bool {
	return len(r.Commands) == 0 &&
		len(r.Files) == 0 &&
		len(r.Components) == 0 &&
		r.Patterns.IsZero() &&
		len(r.Keywords) == 0
}

// filtered returns a copy with empty categories dropped, so the canonical
// rule set never contains empty entries.
func (r RuleSet) filtered() RuleSet {
	out := RuleSet{}
	if len(r.Commands) > 0 {
		out.Commands = r.Commands
	}
	if len(r.Files) > 0 {
		out.Files = r.Files
	}
	if len(r.Components) > 0 {
		out.Components = r.Components
	}
	if !r.Patterns.IsZero() {
		out.Patterns = r.Patterns
	}
	if len(r.Keywords) > 0 {
		out.Keywords = r.Keywords
	}
	return out
}

// MarshalYAML emits the rule set in the structured on-disk shape, with
// categories in their canonical order and patterns wrapped as {regex: [...]}
// when the regex shape was used. Output from a resolved rule set reloads
// through the structured loader without modification.
func (r RuleSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	appendEntry := func(key string, value interface{}) error {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(value); err != nil {
			return err
		}
		node.Content = append(node.Content, keyNode, valNode)
		return nil
	}

	if len(r.Commands) > 0 {
		if err := appendEntry(CategoryCommands, r.Commands); err != nil {
			return nil, err
		}
	}
	if len(r.Files) > 0 {
		if err := appendEntry(CategoryFiles, r.Files); err != nil {
			return nil, err
		}
	}
	if len(r.Components) > 0 {
		if err := appendEntry(CategoryComponents, r.Components); err != nil {
			return nil, err
		}
	}
	if !r.Patterns.IsZero() {
		var value interface{} = r.Patterns.Entries
		if r.Patterns.Regex {
			value = map[string][]string{"regex": r.Patterns.Entries}
		}
		if err := appendEntry(CategoryPatterns, value); err != nil {
			return nil, err
		}
	}
	if len(r.Keywords) > 0 {
		if err := appendEntry(CategoryKeywords, r.Keywords); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// isRuleCategory reports whether name is one of the recognized categories.
func isRuleCategory(name string) bool {
	for _, c := range ruleCategories {
		if name == c {
			return true
		}
	}
	return false
}
