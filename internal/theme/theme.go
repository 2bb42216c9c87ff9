// Package theme defines the twelve-field color aggregate edited by themegen
// and the two ways it may change: setting a single role, or setting a
// family's base color and deriving the rest from it.
package theme

import (
	"fmt"
	"strings"

	"github.com/balkashynov/themegen/internal/color"
	appErrors "github.com/balkashynov/themegen/internal/errors"
)

// Family groups the four roles that share a brand color.
type Family string

const (
	Primary   Family = "primary"
	Secondary Family = "secondary"
)

// Families lists families in display and audit order.
var Families = []Family{Primary, Secondary}

// Title returns the capitalized family name used in messages.
func (f Family) Title() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Role is a position within a family.
type Role string

const (
	Base     Role = "base"
	Contrast Role = "contrast"
	Shade    Role = "shade"
	Tint     Role = "tint"
)

// Roles lists roles in field order.
var Roles = []Role{Base, Contrast, Shade, Tint}

// Cached reports whether the role carries an "r,g,b" companion field.
func (r Role) Cached() bool {
	return r == Base || r == Contrast
}

// Colors is the theme aggregate. JSON keys and their order are the
// exported artifact format.
type Colors struct {
	Primary              string `json:"primary"`
	PrimaryRgb           string `json:"primaryRgb"`
	PrimaryContrast      string `json:"primaryContrast"`
	PrimaryContrastRgb   string `json:"primaryContrastRgb"`
	PrimaryShade         string `json:"primaryShade"`
	PrimaryTint          string `json:"primaryTint"`
	Secondary            string `json:"secondary"`
	SecondaryRgb         string `json:"secondaryRgb"`
	SecondaryContrast    string `json:"secondaryContrast"`
	SecondaryContrastRgb string `json:"secondaryContrastRgb"`
	SecondaryShade       string `json:"secondaryShade"`
	SecondaryTint        string `json:"secondaryTint"`
}

// Default returns the theme every new store starts from.
//
// The shade and tint values here are fixed fixtures and are not what
// SetBase would derive from the same base colors.
func Default() Colors {
	return Colors{
		Primary:              "#ed174c",
		PrimaryRgb:           "237,23,76",
		PrimaryContrast:      "#ffffff",
		PrimaryContrastRgb:   "255,255,255",
		PrimaryShade:         "#d11443",
		PrimaryTint:          "#ef2e5e",
		Secondary:            "#fcdce4",
		SecondaryRgb:         "252,220,228",
		SecondaryContrast:    "#000000",
		SecondaryContrastRgb: "0,0,0",
		SecondaryShade:       "#dec2c9",
		SecondaryTint:        "#fce0e7",
	}
}

// familyFields points at one family's slots inside a Colors value.
type familyFields struct {
	base, baseRGB, contrast, contrastRGB, shade, tint *string
}

func (c *Colors) family(f Family) (familyFields, bool) {
	switch f {
	case Primary:
		return familyFields{&c.Primary, &c.PrimaryRgb, &c.PrimaryContrast, &c.PrimaryContrastRgb, &c.PrimaryShade, &c.PrimaryTint}, true
	case Secondary:
		return familyFields{&c.Secondary, &c.SecondaryRgb, &c.SecondaryContrast, &c.SecondaryContrastRgb, &c.SecondaryShade, &c.SecondaryTint}, true
	}
	return familyFields{}, false
}

func (ff familyFields) role(r Role) (value, cache *string) {
	switch r {
	case Base:
		return ff.base, ff.baseRGB
	case Contrast:
		return ff.contrast, ff.contrastRGB
	case Shade:
		return ff.shade, nil
	case Tint:
		return ff.tint, nil
	}
	return nil, nil
}

// Get returns the hex value of a role, or "" for an unknown family or role.
func (c Colors) Get(f Family, r Role) string {
	ff, ok := c.family(f)
	if !ok {
		return ""
	}
	v, _ := ff.role(r)
	if v == nil {
		return ""
	}
	return *v
}

// RGB returns the cached "r,g,b" string of a base or contrast role.
func (c Colors) RGB(f Family, r Role) string {
	ff, ok := c.family(f)
	if !ok {
		return ""
	}
	_, cache := ff.role(r)
	if cache == nil {
		return ""
	}
	return *cache
}

// Set overwrites a single role and refreshes its cache when it has one.
// No other role changes. A value that does not parse is stored literally
// and leaves the cache at its previous value. Unknown families or roles
// leave c unchanged.
func (c Colors) Set(f Family, r Role, value string) Colors {
	ff, ok := c.family(f)
	if !ok {
		return c
	}
	v, cache := ff.role(r)
	if v == nil {
		return c
	}
	*v = value
	if cache != nil {
		refreshCache(cache, value)
	}
	return c
}

// SetBase sets a family's base color and derives its contrast, shade and
// tint from it. The result depends only on value, never on the previous
// derived roles, so applying it twice is the same as applying it once.
func (c Colors) SetBase(f Family, value string) Colors {
	ff, ok := c.family(f)
	if !ok {
		return c
	}
	contrast := color.OptimalContrast(value)

	*ff.base = value
	*ff.contrast = contrast
	*ff.shade = color.Shade(value)
	*ff.tint = color.Tint(value)
	refreshCache(ff.baseRGB, value)
	refreshCache(ff.contrastRGB, contrast)
	return c
}

func refreshCache(cache *string, hex string) {
	if rgb, ok := color.Parse(hex); ok {
		*cache = rgb.String()
	}
}

// Field returns the JSON key of a role, e.g. "primaryShade".
func Field(f Family, r Role) string {
	if r == Base {
		return string(f)
	}
	return string(f) + strings.ToUpper(string(r[:1])) + string(r[1:])
}

// FieldValue is one key/value pair of the aggregate.
type FieldValue struct {
	Key   string
	Value string
}

// Fields returns all twelve key/value pairs in JSON order.
func (c Colors) Fields() []FieldValue {
	out := make([]FieldValue, 0, 12)
	for _, f := range Families {
		for _, r := range Roles {
			out = append(out, FieldValue{Key: Field(f, r), Value: c.Get(f, r)})
			if r.Cached() {
				out = append(out, FieldValue{Key: Field(f, r) + "Rgb", Value: c.RGB(f, r)})
			}
		}
	}
	return out
}

// ParseField resolves a JSON key such as "secondaryTint" into its family
// and role. The "...Rgb" cache keys are rejected since they only change
// through their hex field.
func ParseField(name string) (Family, Role, error) {
	key := strings.TrimSpace(name)
	for _, f := range Families {
		for _, r := range Roles {
			if strings.EqualFold(key, Field(f, r)) {
				return f, r, nil
			}
			if r.Cached() && strings.EqualFold(key, Field(f, r)+"Rgb") {
				return "", "", appErrors.New(appErrors.CodeUnknownField,
					fmt.Sprintf("field %q is derived from %q and cannot be set directly", key, Field(f, r)), nil)
			}
		}
	}
	return "", "", appErrors.New(appErrors.CodeUnknownField, fmt.Sprintf("unknown field %q", key), nil)
}

// ParseFamily resolves "primary" or "secondary", case-insensitively.
func ParseFamily(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Families {
		if key == string(f) {
			return f, nil
		}
	}
	return "", appErrors.New(appErrors.CodeUnknownField,
		fmt.Sprintf("unknown family %q (use primary or secondary)", name), nil)
}
