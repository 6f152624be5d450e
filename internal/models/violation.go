package models

import "fmt"

// ViolationKind identifies which template rule a commit message broke
type ViolationKind int

const (
	MissingHeader ViolationKind = iota
	MalformedHeader
	MissingSection
	OutOfOrderSection
	EmptySection
	MissingTrailer
	MalformedTrailer
	MalformedAuthor
)

var violationKindNames = []string{
	"MissingHeader",
	"MalformedHeader",
	"MissingSection",
	"OutOfOrderSection",
	"EmptySection",
	"MissingTrailer",
	"MalformedTrailer",
	"MalformedAuthor",
}

func (k ViolationKind) String() string {
	if int(k) < len(violationKindNames) {
		return violationKindNames[k]
	}
	return fmt.Sprintf("ViolationKind(%d)", int(k))
}

// Violation is a single template rule failure with enough context to fix it
type Violation struct {
	Kind    ViolationKind
	Section string // section name, for section-related kinds
	Excerpt string // offending input text, when there is one
	Line    int    // 1-based line in the message, 0 if not applicable
}

// Message returns the human-readable explanation for the violation
func (v Violation) Message() string {
	switch v.Kind {
	case MissingHeader:
		return "Empty commit message"
	case MalformedHeader:
		return "Invalid header format. Should be: <type>[<scope>]: <short-summary>"
	case MissingSection:
		return fmt.Sprintf("Missing '%s:' section", v.Section)
	case OutOfOrderSection:
		return fmt.Sprintf("'%s:' section out of order", v.Section)
	case EmptySection:
		return fmt.Sprintf("'%s:' section is empty", v.Section)
	case MissingTrailer:
		return "Missing JIRA reference"
	case MalformedTrailer:
		return "JIRA reference should be in format: <PROJ-123>"
	case MalformedAuthor:
		return "Author email doesn't match the expected format: <username>@<domain>"
	}
	return "Unknown violation"
}
