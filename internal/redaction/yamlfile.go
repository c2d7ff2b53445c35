package redaction

import (
	"os"

	"gopkg.in/yaml.v3"
)

// yamlQuotingHint is appended to structured parse failures. List-opening
// brackets and similar tokens inside free-text values are the most common
// cause of unparseable rule files.
const yamlQuotingHint = "if using any YAML tokens such as [] in an expression, " +
	"be sure to wrap the expression in quotation marks"

// fragment is the result of loading one structured rule file. present records
// whether the document held any keys before filtering; precedence over the
// legacy format is decided on the pre-filter document, so a file whose every
// category is empty still counts as present.
type fragment struct {
	rules   RuleSet
	present bool
}

// loadStructuredFile loads and validates one YAML rule file. A missing file
// is a normal state and yields an empty fragment; missingNote describes the
// consequence for the debug log. Permission problems are fatal only in strict
// mode. Parse and schema failures are always fatal.
func (e *Engine) loadStructuredFile(path string, expectedKeys []string, missingNote string) (fragment, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			e.diag.Debugf("%s not found: %s", path, missingNote)
			return fragment{}, nil
		}
		return fragment{}, err
	}

	if err := e.checkPermissions(path); err != nil {
		return fragment{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fragment{}, err
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fragment{}, &ParseError{Path: path, Err: err, Hint: yamlQuotingHint}
	}
	if len(doc) == 0 {
		e.diag.Debugf("%s is empty", path)
		return fragment{}, nil
	}

	if err := validateDocument(doc, expectedKeys, path); err != nil {
		return fragment{}, err
	}

	return fragment{rules: ruleSetFromDocument(doc), present: true}, nil
}

// checkPermissions applies the strict-mode gating shared by every loader:
// fatal in strict mode, downgraded to a warning otherwise.
func (e *Engine) checkPermissions(path string) error {
	err := verifyPermissions(path)
	if err == nil {
		return nil
	}
	if e.strict {
		return err
	}
	e.diag.Warnf("%v", err)
	return nil
}

// ruleSetFromDocument converts a validated document into a typed rule set.
// Shapes other than those the validator accepts are unreachable here.
func ruleSetFromDocument(doc map[string]interface{}) RuleSet {
	rs := RuleSet{
		Commands:   stringList(doc[CategoryCommands]),
		Files:      stringList(doc[CategoryFiles]),
		Components: stringList(doc[CategoryComponents]),
		Keywords:   stringList(doc[CategoryKeywords]),
	}
	if value, ok := doc[CategoryPatterns]; ok {
		if mapping, isMap := value.(map[string]interface{}); isMap {
			rs.Patterns = PatternSet{Entries: stringList(mapping["regex"]), Regex: true}
		} else {
			rs.Patterns = PatternSet{Entries: stringList(value)}
		}
	}
	return rs
}

// stringList converts a validated list value. Nil yields nil, so absent and
// empty categories are indistinguishable after conversion.
func stringList(value interface{}) []string {
	list, ok := value.([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, item.(string))
	}
	return out
}
