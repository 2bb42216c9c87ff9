package theme

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/balkashynov/themegen/internal/errors"
)

func TestDefaultFixture(t *testing.T) {
	c := Default()

	assert.Equal(t, "#ed174c", c.Get(Primary, Base))
	assert.Equal(t, "237,23,76", c.RGB(Primary, Base))
	assert.Equal(t, "#ffffff", c.Get(Primary, Contrast))
	assert.Equal(t, "255,255,255", c.RGB(Primary, Contrast))
	assert.Equal(t, "#d11443", c.Get(Primary, Shade))
	assert.Equal(t, "#ef2e5e", c.Get(Primary, Tint))
	assert.Equal(t, "#fcdce4", c.Get(Secondary, Base))
	assert.Equal(t, "252,220,228", c.RGB(Secondary, Base))
	assert.Equal(t, "#000000", c.Get(Secondary, Contrast))
	assert.Equal(t, "0,0,0", c.RGB(Secondary, Contrast))
	assert.Equal(t, "#dec2c9", c.Get(Secondary, Shade))
	assert.Equal(t, "#fce0e7", c.Get(Secondary, Tint))
}

func TestSetDirectTouchesOneRole(t *testing.T) {
	before := Default()
	after := before.Set(Primary, Shade, "#112233")

	assert.Equal(t, "#112233", after.PrimaryShade)
	assert.Equal(t, "#d11443", before.PrimaryShade, "Set must not mutate the receiver")

	after.PrimaryShade = before.PrimaryShade
	assert.Equal(t, before, after)
}

func TestSetDirectRefreshesCache(t *testing.T) {
	c := Default().Set(Secondary, Contrast, "#FFFFFF")

	assert.Equal(t, "#FFFFFF", c.SecondaryContrast)
	assert.Equal(t, "255,255,255", c.SecondaryContrastRgb)
	assert.Equal(t, "#fcdce4", c.Secondary)
	assert.Equal(t, "#dec2c9", c.SecondaryShade)
}

func TestSetDirectUnparseableKeepsCache(t *testing.T) {
	c := Default().Set(Primary, Base, "#abc")

	assert.Equal(t, "#abc", c.Primary)
	assert.Equal(t, "237,23,76", c.PrimaryRgb)
	assert.Equal(t, "#ffffff", c.PrimaryContrast)
}

func TestSetUnknownIsNoop(t *testing.T) {
	c := Default()
	assert.Equal(t, c, c.Set("tertiary", Base, "#000000"))
	assert.Equal(t, c, c.Set(Primary, "accent", "#000000"))
	assert.Equal(t, "", c.Get("tertiary", Base))
	assert.Equal(t, "", c.RGB(Primary, Shade))
}

func TestSetBaseCascades(t *testing.T) {
	c := Default().SetBase(Primary, "#ffffff")

	assert.Equal(t, "#ffffff", c.Primary)
	assert.Equal(t, "255,255,255", c.PrimaryRgb)
	assert.Equal(t, "#000000", c.PrimaryContrast)
	assert.Equal(t, "0,0,0", c.PrimaryContrastRgb)
	assert.Equal(t, "#e1e1e1", c.PrimaryShade)
	assert.Equal(t, "#ffffff", c.PrimaryTint)

	// secondary family untouched
	d := Default()
	assert.Equal(t, d.Secondary, c.Secondary)
	assert.Equal(t, d.SecondaryRgb, c.SecondaryRgb)
	assert.Equal(t, d.SecondaryContrast, c.SecondaryContrast)
	assert.Equal(t, d.SecondaryContrastRgb, c.SecondaryContrastRgb)
	assert.Equal(t, d.SecondaryShade, c.SecondaryShade)
	assert.Equal(t, d.SecondaryTint, c.SecondaryTint)
}

func TestSetBaseDefaultIsNotDerivedFixture(t *testing.T) {
	c := Default().SetBase(Primary, "#ed174c")

	assert.Equal(t, "#cf002e", c.PrimaryShade)
	assert.Equal(t, "#ff356a", c.PrimaryTint)
	assert.Equal(t, "#ffffff", c.PrimaryContrast)
}

func TestSetBaseIdempotent(t *testing.T) {
	for _, base := range []string{"#ed174c", "#FCDCE4", "#000000", "#abc", "nonsense"} {
		for _, f := range Families {
			once := Default().SetBase(f, base)
			twice := once.SetBase(f, base)
			assert.Equal(t, once, twice, "family %s base %s", f, base)
		}
	}
}

func TestSetBaseIgnoresPreviousDerivedValues(t *testing.T) {
	a := Default().Set(Secondary, Shade, "#123456").Set(Secondary, Tint, "#654321").SetBase(Secondary, "#336699")
	b := Default().SetBase(Secondary, "#336699")
	assert.Equal(t, b, a)
}

func TestSetBaseUnparseable(t *testing.T) {
	c := Default().SetBase(Secondary, "#abc")

	assert.Equal(t, "#abc", c.Secondary)
	assert.Equal(t, "252,220,228", c.SecondaryRgb, "cache keeps last parseable value")
	assert.Equal(t, "#ffffff", c.SecondaryContrast)
	assert.Equal(t, "255,255,255", c.SecondaryContrastRgb)
	assert.Equal(t, "#abc", c.SecondaryShade)
	assert.Equal(t, "#abc", c.SecondaryTint)
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "primary", Field(Primary, Base))
	assert.Equal(t, "primaryContrast", Field(Primary, Contrast))
	assert.Equal(t, "secondaryShade", Field(Secondary, Shade))
	assert.Equal(t, "secondaryTint", Field(Secondary, Tint))
}

func TestFieldsMatchJSONOrder(t *testing.T) {
	c := Default()
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var keys []string
	dec := json.NewDecoder(bytes.NewReader(raw))
	_, err = dec.Token()
	require.NoError(t, err)
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		_, err = dec.Token()
		require.NoError(t, err)
	}

	fields := c.Fields()
	require.Len(t, fields, 12)
	for i, fv := range fields {
		assert.Equal(t, keys[i], fv.Key)
	}
	assert.Equal(t, FieldValue{Key: "primaryContrastRgb", Value: "255,255,255"}, fields[3])
}

func TestParseField(t *testing.T) {
	f, r, err := ParseField("primaryContrast")
	require.NoError(t, err)
	assert.Equal(t, Primary, f)
	assert.Equal(t, Contrast, r)

	f, r, err = ParseField(" SecondaryTint ")
	require.NoError(t, err)
	assert.Equal(t, Secondary, f)
	assert.Equal(t, Tint, r)

	f, r, err = ParseField("secondary")
	require.NoError(t, err)
	assert.Equal(t, Secondary, f)
	assert.Equal(t, Base, r)
}

func TestParseFieldRejectsCacheAndUnknown(t *testing.T) {
	_, _, err := ParseField("primaryRgb")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownField))

	_, _, err = ParseField("primaryGlow")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownField))
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily("Secondary")
	require.NoError(t, err)
	assert.Equal(t, Secondary, f)

	_, err = ParseFamily("accent")
	assert.Error(t, err)
}

func TestFamilyTitle(t *testing.T) {
	assert.Equal(t, "Primary", Primary.Title())
	assert.Equal(t, "Secondary", Secondary.Title())
	assert.Equal(t, "", Family("").Title())
}
