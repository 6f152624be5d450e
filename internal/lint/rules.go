package lint

import (
	"fmt"
	"regexp"
)

// Rules describes the commit message template being enforced.
// The zero value is not usable; build one with DefaultRules or from config.
type Rules struct {
	// Types are the allowed header types (e.g., "feat", "fix")
	Types []string
	// Sections are the required body section names, in mandated order
	Sections []string
	// SectionAliases maps accepted alternative headers to their canonical
	// section name (e.g., "Task" -> "Problem")
	SectionAliases map[string]string
	// TrailerKey is the required trailer key (e.g., "JIRA")
	TrailerKey string
	// TicketPattern matches a valid trailer value
	TicketPattern *regexp.Regexp
	// EmailDomain enables the author email check when non-empty
	// (email must be <first author token>@<domain>)
	EmailDomain string
}

// DefaultRules returns the team commit message template
func DefaultRules() Rules {
	return Rules{
		Types:    []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"},
		Sections: []string{"Problem", "Solution", "Test"},
		SectionAliases: map[string]string{
			"Task": "Problem",
		},
		TrailerKey:    "JIRA",
		TicketPattern: regexp.MustCompile(`^[A-Z0-9]+-[0-9]+$`),
	}
}

// TypeAllowed reports whether t is one of the allowed header types
func (r Rules) TypeAllowed(t string) bool {
	for _, allowed := range r.Types {
		if t == allowed {
			return true
		}
	}
	return false
}

// canonicalSection resolves a section header name to its canonical form.
// Returns "" if the name is not a known section.
func (r Rules) canonicalSection(name string) string {
	for _, s := range r.Sections {
		if name == s {
			return s
		}
	}
	if canonical, ok := r.SectionAliases[name]; ok {
		return canonical
	}
	return ""
}

// sectionIndex returns the mandated position of a canonical section name
func (r Rules) sectionIndex(name string) int {
	for i, s := range r.Sections {
		if name == s {
			return i
		}
	}
	return -1
}

// Validate checks the rules themselves for internal consistency
func (r Rules) Validate() error {
	if len(r.Types) == 0 {
		return fmt.Errorf("rules: no header types configured")
	}
	if len(r.Sections) == 0 {
		return fmt.Errorf("rules: no required sections configured")
	}
	if r.TrailerKey == "" {
		return fmt.Errorf("rules: no trailer key configured")
	}
	if r.TicketPattern == nil {
		return fmt.Errorf("rules: no ticket pattern configured")
	}
	for alias, canonical := range r.SectionAliases {
		if r.sectionIndex(canonical) < 0 {
			return fmt.Errorf("rules: alias %q points to unknown section %q", alias, canonical)
		}
	}
	return nil
}
