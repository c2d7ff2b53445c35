package redaction

import (
	"github.com/corbett/redact/internal/config"
)

// Report summarizes a resolution for operator-facing output: per-category
// counts, format provenance, and the pass-through obfuscation settings.
type Report struct {
	Obfuscate          bool `yaml:"obfuscate"`
	ObfuscateHostname  bool `yaml:"obfuscate_hostname"`
	Commands           int  `yaml:"commands"`
	Files              int  `yaml:"files"`
	Components         int  `yaml:"components"`
	Patterns           int  `yaml:"patterns"`
	Keywords           int  `yaml:"keywords"`
	UsingNewFormat     bool `yaml:"using_new_format"`
	UsingPatternsRegex bool `yaml:"using_patterns_regex"`
}

// BuildReport summarizes a resolution. Counts use entryCount so a category
// that survived the legacy loader as a single empty string reports zero.
func BuildReport(res *Resolution, cfg *config.Config) Report {
	return Report{
		Obfuscate:          cfg.Obfuscate,
		ObfuscateHostname:  cfg.ObfuscateHostname,
		Commands:           entryCount(res.Rules.Commands),
		Files:              entryCount(res.Rules.Files),
		Components:         entryCount(res.Rules.Components),
		Patterns:           entryCount(res.Rules.Patterns.Entries),
		Keywords:           entryCount(res.Rules.Keywords),
		UsingNewFormat:     res.UsingNewFormat,
		UsingPatternsRegex: res.Rules.Patterns.Regex,
	}
}

// entryCount counts a category's entries. The legacy loader's comma split of
// an empty value yields a single empty string; that counts as zero.
func entryCount(list []string) int {
	if len(list) == 1 && list[0] == "" {
		return 0
	}
	return len(list)
}
