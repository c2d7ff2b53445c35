// Package specs classifies the collection framework's declarative descriptors
// into the categories used for audit reporting: which files the agent could
// read and which commands it could run, split into static, glob, and
// templated forms.
package specs

// Resolved descriptor categories.
const (
	FileStatic      = "file_static"
	FileGlob        = "file_glob"
	FileTemplate    = "file_template"
	CommandStatic   = "command_static"
	CommandTemplate = "command_template"
)

// SimpleFile collects one file at a fixed path.
type SimpleFile struct {
	Path string
}

// FirstFile collects the first existing file out of a set of alternatives.
type FirstFile struct {
	Paths []string
}

// GlobFile collects every file matching a set of glob patterns.
type GlobFile struct {
	Patterns []string
}

// TemplateFile collects files at a path templated per discovered instance.
type TemplateFile struct {
	Path string
}

// SimpleCommand runs one fixed command line.
type SimpleCommand struct {
	Cmd string
}

// TemplateCommand runs a command templated with per-instance arguments.
type TemplateCommand struct {
	Cmd string
}

// resolveDescriptor maps one descriptor shape to its category and the paths,
// patterns, or command lines it covers. Unrecognized shapes resolve to an
// empty category and are skipped by the caller.
func resolveDescriptor(d interface{}) (string, []string) {
	switch d := d.(type) {
	case SimpleFile:
		return FileStatic, []string{d.Path}
	case FirstFile:
		return FileStatic, d.Paths
	case GlobFile:
		return FileGlob, d.Patterns
	case TemplateFile:
		return FileTemplate, []string{d.Path}
	case SimpleCommand:
		return CommandStatic, []string{d.Cmd}
	case TemplateCommand:
		return CommandTemplate, []string{d.Cmd}
	}
	return "", nil
}
