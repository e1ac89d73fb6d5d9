package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	template, err := Get("studykit.json", "summary")
	require.NoError(t, err)
	assert.NotEmpty(t, template)
	assert.Contains(t, template, "{{.Text}}")
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("studykit.json", "sonnet")
	assert.Error(t, err)
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "summary")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("studykit.json", "sonnet") })
}

func TestFormat(t *testing.T) {
	out := Format("Summarize {{.Text}} about {{.Topic}}", map[string]string{
		"Text":  "the material",
		"Topic": "biology",
	})
	assert.Equal(t, "Summarize the material about biology", out)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	out := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", out)
}
