package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_RoundTrip(t *testing.T) {
	rules := DefaultRules()

	msg, violations := Validate(goodMessage, rules)
	require.Empty(t, violations)

	rendered := msg.Render()
	assert.Equal(t, goodMessage, rendered)

	// Re-parsing the rendered text yields an equivalent message
	again, violations := Validate(rendered, rules)
	require.Empty(t, violations)
	assert.Equal(t, msg, again)
}

func TestRender_RoundTrip_MessyInput(t *testing.T) {
	// Extra blank lines and a Task alias still round-trip to the canonical form
	text := "fix[api]: handle nil payload\r\n\r\n\r\nTask:\r\nCrashes on empty body.\r\n\r\nSolution:\r\nGuard the decode path.\r\n\r\nTest:\r\nRegression test added.\r\n\r\n\r\nJIRA: API-12\r\n"

	msg, violations := Validate(text, DefaultRules())
	require.Empty(t, violations)

	again, violations := Validate(msg.Render(), DefaultRules())
	require.Empty(t, violations)

	assert.Equal(t, msg.Type, again.Type)
	assert.Equal(t, msg.Scope, again.Scope)
	assert.Equal(t, msg.Summary, again.Summary)
	assert.Equal(t, msg.Sections, again.Sections)
	assert.Equal(t, msg.Trailers, again.Trailers)
}

func TestSection_NotFound(t *testing.T) {
	msg := &CommitMessage{}
	_, ok := msg.Section("Problem")
	assert.False(t, ok)
}
