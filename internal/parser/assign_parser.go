package parser

import (
	"regexp"
	"strings"

	"github.com/balkashynov/themegen/internal/theme"
)

// Assignment is one parsed theme edit.
type Assignment struct {
	Family theme.Family
	Role   theme.Role
	Value  string
	// Cascade marks a family base set that re-derives contrast, shade and tint.
	Cascade bool
}

// ParsedAssignments holds the edits found in an input line
type ParsedAssignments struct {
	Assignments []Assignment
	Errors      []string
}

var assignRegex = regexp.MustCompile(`^([A-Za-z]+)([=:])(\S*)$`)

// ParseAssignments extracts theme edits from a line using a compact syntax.
// Syntax: "primaryShade=#aa0033 secondary:#336699"
//
//	field=hex    - set a single field (primary, primaryContrast, secondaryTint, ...)
//	family:hex   - set a family base and derive its other roles
//
// Every token is checked; bad tokens are reported in Errors and skipped.
func ParseAssignments(input string) ParsedAssignments {
	result := ParsedAssignments{
		Assignments: []Assignment{},
		Errors:      []string{},
	}

	for _, token := range strings.Fields(input) {
		m := assignRegex.FindStringSubmatch(token)
		if m == nil {
			result.Errors = append(result.Errors, "Unrecognized token '"+token+"'. Use: field=#hex or family:#hex")
			continue
		}
		key, op, raw := m[1], m[2], m[3]

		value, err := NormalizeHexInput(raw)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid color for '"+key+"': "+err.Error())
			continue
		}

		if op == ":" {
			family, err := theme.ParseFamily(key)
			if err != nil {
				result.Errors = append(result.Errors, err.Error())
				continue
			}
			result.Assignments = append(result.Assignments, Assignment{
				Family:  family,
				Role:    theme.Base,
				Value:   value,
				Cascade: true,
			})
			continue
		}

		family, role, err := theme.ParseField(key)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Assignments = append(result.Assignments, Assignment{
			Family: family,
			Role:   role,
			Value:  value,
		})
	}

	return result
}

// Apply runs the assignments against c in order.
func (p ParsedAssignments) Apply(c theme.Colors) theme.Colors {
	for _, a := range p.Assignments {
		if a.Cascade {
			c = c.SetBase(a.Family, a.Value)
		} else {
			c = c.Set(a.Family, a.Role, a.Value)
		}
	}
	return c
}
