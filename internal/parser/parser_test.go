package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/themegen/internal/audit"
	"github.com/balkashynov/themegen/internal/color"
	appErrors "github.com/balkashynov/themegen/internal/errors"
	"github.com/balkashynov/themegen/internal/theme"
)

func TestIsValidHexInput(t *testing.T) {
	valid := []string{"#ed174c", "ED174C", "#abc", "ABC", "#000000", "fff"}
	for _, in := range valid {
		assert.True(t, IsValidHexInput(in), in)
	}

	invalid := []string{"", "#", "#ed17", "#ed174", "#ed174c0", "#ggg", "##abc", " #abc", "#abcd"}
	for _, in := range invalid {
		assert.False(t, IsValidHexInput(in), in)
	}
}

func TestNormalizeHexInput(t *testing.T) {
	got, err := NormalizeHexInput("ed174c")
	require.NoError(t, err)
	assert.Equal(t, "#ed174c", got)

	got, err = NormalizeHexInput("#ED174C")
	require.NoError(t, err)
	assert.Equal(t, "#ED174C", got, "case is preserved")

	_, err = NormalizeHexInput("#ed17")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeInvalidColor))
}

// A short hex passes the text-field check and is stored literally, but the
// codec rejects it, so the stored theme surfaces a sentinel warning.
func TestShortHexAcceptedButUnparseable(t *testing.T) {
	got, err := NormalizeHexInput("abc")
	require.NoError(t, err)
	assert.Equal(t, "#abc", got)

	_, ok := color.Parse(got)
	assert.False(t, ok)

	c := theme.Default().Set(theme.Secondary, theme.Base, got)
	assert.Equal(t, "#abc", c.Secondary)

	warnings := audit.Audit(c, audit.DefaultThreshold)
	require.Len(t, warnings, 2)
	assert.Equal(t, theme.Secondary, warnings[1].Family)
	assert.Equal(t, color.SentinelRatio, warnings[1].Ratio)
}

func TestParseAssignments(t *testing.T) {
	parsed := ParseAssignments("primaryShade=#aa0033  secondary:336699 primaryContrast=fff")

	assert.Empty(t, parsed.Errors)
	require.Len(t, parsed.Assignments, 3)
	assert.Equal(t, Assignment{Family: theme.Primary, Role: theme.Shade, Value: "#aa0033"}, parsed.Assignments[0])
	assert.Equal(t, Assignment{Family: theme.Secondary, Role: theme.Base, Value: "#336699", Cascade: true}, parsed.Assignments[1])
	assert.Equal(t, Assignment{Family: theme.Primary, Role: theme.Contrast, Value: "#fff"}, parsed.Assignments[2])
}

func TestParseAssignmentsErrors(t *testing.T) {
	parsed := ParseAssignments("primaryRgb=#000000 tertiary:#000000 primary=#12 hello primaryTint=#010203")

	require.Len(t, parsed.Assignments, 1)
	assert.Equal(t, theme.Tint, parsed.Assignments[0].Role)
	assert.Len(t, parsed.Errors, 4)
}

func TestParseAssignmentsApply(t *testing.T) {
	parsed := ParseAssignments("primary:#ffffff secondaryTint=#010203")
	c := parsed.Apply(theme.Default())

	assert.Equal(t, "#000000", c.PrimaryContrast)
	assert.Equal(t, "#e1e1e1", c.PrimaryShade)
	assert.Equal(t, "#010203", c.SecondaryTint)
	assert.Equal(t, "#fcdce4", c.Secondary)
}

func TestParseAssignmentsEmpty(t *testing.T) {
	parsed := ParseAssignments("   ")
	assert.Empty(t, parsed.Assignments)
	assert.Empty(t, parsed.Errors)
}
