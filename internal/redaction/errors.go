package redaction

import (
	"fmt"
	"os"
	"strings"
)

// PermissionError reports a rule file whose access mode is not the required
// owner read/write-only mode. Outside strict mode it is downgraded to a
// warning; in strict mode it aborts resolution.
type PermissionError struct {
	Path string
	Mode os.FileMode
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("invalid permissions on %s: expected %04o, got %04o",
		e.Path, requiredRuleFileMode, e.Mode)
}

// ParseError reports a rule file that could not be parsed at all. Always
// fatal; Hint carries remediation guidance for the operator.
type ParseError struct {
	Path string
	Hint string
	Err  error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a parsed document whose key set or value shapes do not
// match the expected schema. Always fatal.
type SchemaError struct {
	Source  string
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

// SectionError reports a legacy rule file whose section set is anything other
// than the single "remove" section. A file with zero sections is treated as
// empty, not as an error.
type SectionError struct {
	Path     string
	Sections []string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("invalid section(s) in %s: %s; only \"remove\" is valid",
		e.Path, strings.Join(e.Sections, ", "))
}
