// Package lint implements the commit message template validator.
//
// A commit message must look like:
//
//	<type>[<scope>]: <short-summary>
//
//	Problem:
//	<text>
//
//	Solution:
//	<text>
//
//	Test:
//	<text>
//
//	JIRA: <PROJECT-123>
//
// Validation is a pure function over the message text: it never fails on
// malformed input, it classifies it. All violations in a message are
// collected so the author can fix them in one pass.
package lint

import (
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

var headerPattern = regexp.MustCompile(`^(\w+)\[(\w+)\]: (.+)$`)

// Validate checks text against the template rules. It returns the parsed
// message (nil only for an empty input) and every violation found.
func Validate(text string, rules Rules) (*CommitMessage, []models.Violation) {
	lines := splitLines(text)

	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, []models.Violation{{Kind: models.MissingHeader}}
	}

	var violations []models.Violation
	msg := &CommitMessage{Trailers: map[string]string{}}

	header := lines[headerIdx]
	if m := headerPattern.FindStringSubmatch(header); m == nil {
		violations = append(violations, models.Violation{
			Kind:    models.MalformedHeader,
			Excerpt: header,
			Line:    headerIdx + 1,
		})
	} else {
		msg.Type, msg.Scope, msg.Summary = m[1], m[2], strings.TrimSpace(m[3])
		if !rules.TypeAllowed(msg.Type) || msg.Summary == "" {
			violations = append(violations, models.Violation{
				Kind:    models.MalformedHeader,
				Excerpt: header,
				Line:    headerIdx + 1,
			})
		}
	}

	sections, trailer := scanBody(lines, headerIdx+1, rules)

	// First occurrence of each canonical section wins; duplicates are
	// ignored, matching the original checker's first-match scan.
	firstSeen := make(map[string]int)
	for idx, s := range sections {
		if _, ok := firstSeen[s.name]; !ok {
			firstSeen[s.name] = idx
		}
	}

	for _, name := range rules.Sections {
		if _, ok := firstSeen[name]; !ok {
			violations = append(violations, models.Violation{
				Kind:    models.MissingSection,
				Section: name,
			})
		}
	}

	// Mandated positions must be non-decreasing in appearance order.
	prev := -1
	for idx, s := range sections {
		if firstSeen[s.name] != idx {
			continue
		}
		want := rules.sectionIndex(s.name)
		if want < prev {
			violations = append(violations, models.Violation{
				Kind:    models.OutOfOrderSection,
				Section: s.name,
				Line:    s.line,
			})
			continue
		}
		prev = want
	}

	for idx, s := range sections {
		if firstSeen[s.name] != idx {
			continue
		}
		body := trimBlankLines(s.body)
		if body == "" {
			violations = append(violations, models.Violation{
				Kind:    models.EmptySection,
				Section: s.name,
				Line:    s.line,
			})
		}
		msg.Sections = append(msg.Sections, Section{Name: s.name, Body: body})
	}

	if trailer == nil {
		violations = append(violations, models.Violation{Kind: models.MissingTrailer})
	} else if !rules.TicketPattern.MatchString(trailer.value) {
		violations = append(violations, models.Violation{
			Kind:    models.MalformedTrailer,
			Excerpt: trailer.value,
			Line:    trailer.line,
		})
	} else {
		msg.Trailers[rules.TrailerKey] = trailer.value
	}

	return msg, violations
}

// ValidateAuthor checks the commit author against the configured email
// domain. Returns nil when the check is disabled or the author matches.
func ValidateAuthor(author, email string, rules Rules) *models.Violation {
	if rules.EmailDomain == "" {
		return nil
	}
	user := author
	if fields := strings.Fields(author); len(fields) > 0 {
		user = fields[0]
	}
	if email == user+"@"+rules.EmailDomain {
		return nil
	}
	return &models.Violation{
		Kind:    models.MalformedAuthor,
		Excerpt: author + " <" + email + ">",
	}
}

type foundSection struct {
	name string // canonical name
	line int    // 1-based line of the section header
	body []string
}

type foundTrailer struct {
	value string
	line  int // 1-based
}

// scanBody walks the lines after the header, collecting section bodies and
// the first trailer line. A section body runs until the next section header
// or the trailer.
func scanBody(lines []string, start int, rules Rules) ([]foundSection, *foundTrailer) {
	var sections []foundSection
	var trailer *foundTrailer

	trailerPrefix := rules.TrailerKey + ":"
	current := -1

	for i := start; i < len(lines); i++ {
		line := lines[i]

		if trailer == nil && strings.HasPrefix(line, trailerPrefix) {
			trailer = &foundTrailer{
				value: strings.TrimSpace(line[len(trailerPrefix):]),
				line:  i + 1,
			}
			current = -1
			continue
		}

		if name, rest, ok := sectionHeader(line, rules); ok {
			sections = append(sections, foundSection{name: name, line: i + 1})
			current = len(sections) - 1
			if strings.TrimSpace(rest) != "" {
				sections[current].body = append(sections[current].body, strings.TrimSpace(rest))
			}
			continue
		}

		if current >= 0 {
			sections[current].body = append(sections[current].body, line)
		}
	}

	return sections, trailer
}

// sectionHeader reports whether line starts a known section, returning the
// canonical section name and any remainder after the colon.
func sectionHeader(line string, rules Rules) (string, string, bool) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	canonical := rules.canonicalSection(name)
	if canonical == "" {
		return "", "", false
	}
	return canonical, rest, true
}

// splitLines normalizes line endings and splits the text into lines
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// trimBlankLines joins body lines, dropping leading and trailing blank lines
func trimBlankLines(body []string) string {
	start := 0
	end := len(body)
	for start < end && strings.TrimSpace(body[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(body[end-1]) == "" {
		end--
	}
	return strings.Join(body[start:end], "\n")
}
