package redaction

import (
	"fmt"
	"sort"
	"strings"
)

// validateDocument checks a parsed rule document against the expected key set
// for its source file. Keys outside expectedKeys are an error naming every
// unknown key. Every value must be a list of strings, with one exception: the
// patterns key may instead be a single-key mapping {regex: [list of strings]}.
// A nil value for any key is treated as an empty list.
func validateDocument(doc map[string]interface{}, expectedKeys []string, source string) error {
	var unknown []string
	for key := range doc {
		if !containsKey(expectedKeys, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &SchemaError{
			Source: source,
			Message: fmt.Sprintf("unknown section(s) in %s: %s; valid sections are %s",
				source, strings.Join(unknown, ", "), strings.Join(expectedKeys, ", ")),
		}
	}

	for _, key := range expectedKeys {
		value, ok := doc[key]
		if !ok {
			continue
		}
		if key == CategoryPatterns {
			if mapping, isMap := value.(map[string]interface{}); isMap {
				if err := validatePatternsMapping(mapping, source); err != nil {
					return err
				}
				continue
			}
		}
		if !isStringList(value) {
			return &SchemaError{
				Source:  source,
				Message: fmt.Sprintf("the %s section in %s must be a list of strings", key, source),
			}
		}
	}
	return nil
}

// validatePatternsMapping checks the regex-wrapper shape of the patterns
// section: exactly one key named "regex" whose value is a list of strings.
func validatePatternsMapping(mapping map[string]interface{}, source string) error {
	regex, ok := mapping["regex"]
	if !ok {
		return &SchemaError{
			Source: source,
			Message: fmt.Sprintf("the patterns section in %s contains a mapping but the \"regex\" key was not specified",
				source),
		}
	}
	if len(mapping) > 1 {
		return &SchemaError{
			Source: source,
			Message: fmt.Sprintf("unknown keys in the patterns section in %s; only \"regex\" is valid",
				source),
		}
	}
	if !isStringList(regex) {
		return &SchemaError{
			Source:  source,
			Message: fmt.Sprintf("the regex list under patterns in %s must be a list of strings", source),
		}
	}
	return nil
}

// isStringList reports whether value is a list of strings. A nil value counts
// as an empty list.
func isStringList(value interface{}) bool {
	if value == nil {
		return true
	}
	list, ok := value.([]interface{})
	if !ok {
		return false
	}
	for _, item := range list {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
