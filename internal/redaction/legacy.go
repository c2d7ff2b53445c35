package redaction

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// legacyMigrationHint points operators at the supported format when the
// legacy file cannot be parsed at all.
const legacyMigrationHint = "the legacy format is deprecated; " +
	"to configure exclusions with YAML, use the structured redaction files instead"

// loadLegacyFile loads the legacy INI rule file. The file holds a single
// [remove] section whose values are comma-separated, backslash-escaped
// strings. parsed reports whether a remove section was actually consumed,
// which is what flips provenance away from the structured format.
func (e *Engine) loadLegacyFile(path string) (rules RuleSet, parsed bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			e.diag.Debugf("%s not found: no data files, commands, or patterns will be ignored, "+
				"and no keyword obfuscation will occur", path)
			return RuleSet{}, false, nil
		}
		return RuleSet{}, false, statErr
	}

	if permErr := e.checkPermissions(path); permErr != nil {
		return RuleSet{}, false, permErr
	}

	doc, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return RuleSet{}, false, &ParseError{Path: path, Err: err, Hint: legacyMigrationHint}
	}

	if keys := doc.Section(ini.DefaultSection).KeyStrings(); len(keys) > 0 {
		return RuleSet{}, false, &ParseError{
			Path: path,
			Err:  fmt.Errorf("keys defined outside of a section: %s", strings.Join(keys, ", ")),
			Hint: legacyMigrationHint,
		}
	}

	sections := sectionNames(doc)
	if len(sections) == 0 {
		e.diag.Debugf("%s exists but no parameters have been defined", path)
		return RuleSet{}, false, nil
	}
	if len(sections) != 1 || sections[0] != "remove" {
		return RuleSet{}, false, &SectionError{Path: path, Sections: sections}
	}

	rules, err = e.parseRemoveSection(doc.Section("remove"), path)
	if err != nil {
		return RuleSet{}, false, err
	}

	e.diag.Warnf("%s is deprecated, please migrate to the structured redaction files", path)
	return rules, true, nil
}

// parseRemoveSection converts the remove section's keys into a rule set.
// Every key must be a recognized category; values are unescaped and then
// split on commas.
func (e *Engine) parseRemoveSection(section *ini.Section, path string) (RuleSet, error) {
	var rules RuleSet
	for _, key := range section.Keys() {
		name := key.Name()
		if !isRuleCategory(name) {
			return RuleSet{}, &SchemaError{
				Source: path,
				Message: fmt.Sprintf("unknown key in %s: %s; valid keys are %s",
					path, name, strings.Join(ruleCategories, ", ")),
			}
		}
		values := strings.Split(unescapeLegacyValue(strings.TrimSpace(key.Value())), ",")
		switch name {
		case CategoryCommands:
			rules.Commands = values
		case CategoryFiles:
			rules.Files = values
		case CategoryComponents:
			rules.Components = values
		case CategoryPatterns:
			rules.Patterns = PatternSet{Entries: values}
		case CategoryKeywords:
			rules.Keywords = values
		}
	}
	return rules, nil
}

// sectionNames lists the sections actually defined in the file, excluding the
// implicit default section.
func sectionNames(doc *ini.File) []string {
	var names []string
	for _, name := range doc.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}
