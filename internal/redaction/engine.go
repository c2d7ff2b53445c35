package redaction

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/corbett/redact/internal/config"
)

// Resolution is the explicit result of one resolve run: the canonical rule
// set plus its provenance. UsingNewFormat is true unless the legacy fallback
// actually parsed content.
type Resolution struct {
	Rules          RuleSet
	UsingNewFormat bool
}

// Engine resolves the exclusion rule set from the configured rule files.
// It is built once per collection run; Resolve may be re-invoked and simply
// redoes the same reads.
type Engine struct {
	removeFile           string
	redactionFile        string
	contentRedactionFile string
	strict               bool
	diag                 Diagnostics

	resolution *Resolution
}

// NewEngine builds an engine from the operator settings. Strict mode (the
// validate setting) promotes permission warnings to fatal errors. A nil diag
// discards diagnostics.
func NewEngine(cfg *config.Config, diag Diagnostics) *Engine {
	if diag == nil {
		diag = nopDiagnostics{}
	}
	return &Engine{
		removeFile:           cfg.RemoveFile,
		redactionFile:        cfg.RedactionFile,
		contentRedactionFile: cfg.ContentRedactionFile,
		strict:               cfg.Validate,
		diag:                 diag,
	}
}

// Resolve loads the two structured rule files and merges them. When both are
// absent or empty it falls back entirely to the legacy file. The structured
// format wins whenever either file held a non-empty document, even if every
// category in it filters away. Any fatal loader error aborts resolution with
// no partial result; the caller must halt the collection run rather than
// proceed without the intended exclusions.
func (e *Engine) Resolve() (*Resolution, error) {
	redact, err := e.loadStructuredFile(e.redactionFile, redactionFileKeys,
		"no files or commands will be skipped")
	if err != nil {
		return nil, err
	}
	content, err := e.loadStructuredFile(e.contentRedactionFile, contentRedactionFileKeys,
		"no patterns will be skipped and no keyword obfuscation will occur")
	if err != nil {
		return nil, err
	}

	res := &Resolution{UsingNewFormat: true}
	if redact.present || content.present {
		res.Rules = mergeFragments(redact.rules, content.rules).filtered()
	} else {
		rules, parsed, err := e.loadLegacyFile(e.removeFile)
		if err != nil {
			return nil, err
		}
		if parsed {
			res.UsingNewFormat = false
		}
		res.Rules = rules.filtered()
	}

	e.resolution = res
	return res, nil
}

// Resolution returns the result of the last Resolve call, or nil if the
// engine has not resolved yet.
func (e *Engine) Resolution() *Resolution {
	return e.resolution
}

// Validate resolves the rule set and prints the parsed contents for operator
// confirmation, returning whether anything was configured. The contents are
// printed rather than logged since they may be sensitive.
func (e *Engine) Validate(out io.Writer) (bool, error) {
	res, err := e.Resolve()
	if err != nil {
		return false, err
	}
	if res.Rules.IsEmpty() {
		e.diag.Infof("no contents in the exclusion configuration to validate")
		return false, nil
	}

	data, err := yaml.Marshal(res.Rules)
	if err != nil {
		return false, fmt.Errorf("failed to serialize parsed rules: %w", err)
	}
	fmt.Fprintln(out, "Exclusion configuration parsed contents:")
	fmt.Fprint(out, string(data))
	e.diag.Infof("parsed successfully")
	return true, nil
}

// mergeFragments unions the two structured fragments. Their expected key sets
// are disjoint, so the later fragment can only contribute categories the
// earlier one does not define.
func mergeFragments(base, overlay RuleSet) RuleSet {
	merged := base
	if len(overlay.Commands) > 0 {
		merged.Commands = overlay.Commands
	}
	if len(overlay.Files) > 0 {
		merged.Files = overlay.Files
	}
	if len(overlay.Components) > 0 {
		merged.Components = overlay.Components
	}
	if !overlay.Patterns.IsZero() {
		merged.Patterns = overlay.Patterns
	}
	if len(overlay.Keywords) > 0 {
		merged.Keywords = overlay.Keywords
	}
	return merged
}
