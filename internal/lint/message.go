package lint

import (
	"sort"
	"strings"
)

// Section is a named, headered block of free text in the commit message body
type Section struct {
	// Name is the canonical section name (e.g., "Problem")
	Name string
	// Body is the section text, stripped of surrounding blank lines
	Body string
}

// CommitMessage is the parsed form of a commit message that matched the
// template. It is never mutated after parsing.
type CommitMessage struct {
	// Type is the header type (e.g., "feat")
	Type string
	// Scope is the header scope token
	Scope string
	// Summary is the header summary text
	Summary string
	// Sections in appearance order
	Sections []Section
	// Trailers maps trailer key to value (e.g., "JIRA" -> "AUTH-456")
	Trailers map[string]string
}

// Section returns the body of the named section, if present
func (m *CommitMessage) Section(name string) (string, bool) {
	for _, s := range m.Sections {
		if s.Name == name {
			return s.Body, true
		}
	}
	return "", false
}

// Render re-serializes the message using the canonical template.
// Rendering a successfully parsed message reproduces semantically
// equivalent text (same type, scope, summary, sections, trailers).
func (m *CommitMessage) Render() string {
	var b strings.Builder

	b.WriteString(m.Type)
	b.WriteString("[")
	b.WriteString(m.Scope)
	b.WriteString("]: ")
	b.WriteString(m.Summary)
	b.WriteString("\n")

	for _, s := range m.Sections {
		b.WriteString("\n")
		b.WriteString(s.Name)
		b.WriteString(":\n")
		b.WriteString(s.Body)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(m.Trailers))
	for k := range m.Trailers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(m.Trailers[k])
		b.WriteString("\n")
	}

	return b.String()
}
