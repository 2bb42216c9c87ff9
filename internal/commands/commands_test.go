package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/themegen/internal/config"
	"github.com/balkashynov/themegen/internal/theme"
)

// run executes the CLI against a database in dir and returns its output.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", filepath.Join(dir, "themegen.db")))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags restores every flag to its default between runs.
func resetFlags() {
	var visit func(*cobra.Command)
	visit = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			visit(sub)
		}
	}
	visit(rootCmd)
}

func setupCLI(t *testing.T) string {
	t.Helper()
	cleanup := config.ResetForTesting(t)
	t.Cleanup(cleanup)
	return t.TempDir()
}

func TestContrastCommand(t *testing.T) {
	dir := setupCLI(t)

	out, err := run(t, dir, "contrast", "#000000", "ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "21.00")
	assert.Contains(t, out, "pass")

	_, err = run(t, dir, "contrast", "#000000", "nope")
	assert.Error(t, err)
}

func TestDeriveCommand(t *testing.T) {
	dir := setupCLI(t)

	out, err := run(t, dir, "derive", "ed174c")
	require.NoError(t, err)
	assert.Contains(t, out, "#ed174c")
	assert.Contains(t, out, "#ffffff")
	assert.Contains(t, out, "#cf002e")
	assert.Contains(t, out, "#ff356a")
}

func TestShowDefaultTheme(t *testing.T) {
	dir := setupCLI(t)

	out, err := run(t, dir, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "primaryShade")
	assert.Contains(t, out, "#d11443")
	assert.Contains(t, out, "Primary/Primary Contrast ratio (4.35)")

	out, err = run(t, dir, "show", "--json")
	require.NoError(t, err)
	var c theme.Colors
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, theme.Default(), c)
}

func TestSetBaseAndAudit(t *testing.T) {
	dir := setupCLI(t)

	_, err := run(t, dir, "audit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 contrast warning")

	out, err := run(t, dir, "base", "primary", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "Primary base set to #000000")

	out, err = run(t, dir, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "21.00")

	out, err = run(t, dir, "set", "secondaryTint", "abcdef")
	require.NoError(t, err)
	assert.Contains(t, out, "secondaryTint set to #abcdef")

	out, err = run(t, dir, "show", "--json")
	require.NoError(t, err)
	var c theme.Colors
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "#000000", c.Primary)
	assert.Equal(t, "#ffffff", c.PrimaryContrast)
	assert.Equal(t, "#abcdef", c.SecondaryTint)
}

func TestSetRejectsInvalidInputWithoutSaving(t *testing.T) {
	dir := setupCLI(t)

	_, err := run(t, dir, "set", "primary=#000000", "secondary:#zzzzzz")
	require.Error(t, err)

	out, err := run(t, dir, "show", "--json")
	require.NoError(t, err)
	var c theme.Colors
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, theme.Default(), c)
}

func TestAuditThresholdFlag(t *testing.T) {
	dir := setupCLI(t)

	_, err := run(t, dir, "audit", "--threshold", "4")
	assert.NoError(t, err)
}

func TestResetCommand(t *testing.T) {
	dir := setupCLI(t)

	_, err := run(t, dir, "base", "secondary", "#101010")
	require.NoError(t, err)
	out, err := run(t, dir, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme reset to default")

	out, err = run(t, dir, "show", "--json")
	require.NoError(t, err)
	var c theme.Colors
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, theme.Default(), c)
}

func TestExportCommand(t *testing.T) {
	dir := setupCLI(t)
	path := filepath.Join(dir, "out", "custom-theme.json")

	out, err := run(t, dir, "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var c theme.Colors
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, theme.Default(), c)
}

func TestEmailCommand(t *testing.T) {
	dir := setupCLI(t)

	out, err := run(t, dir, "email", "--name", "Ada", "--org", "Acme")
	require.NoError(t, err)
	assert.Contains(t, out, "To:      support@mpro.app")
	assert.Contains(t, out, "Subject: mpro5 Saturn colour profile")
	assert.Contains(t, out, "My name is Ada and I am from Acme.")
	assert.Contains(t, out, "mailto:support@mpro.app?subject=mpro5%20Saturn%20colour%20profile")
}

func TestVersionCommand(t *testing.T) {
	dir := setupCLI(t)
	SetVersion("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := run(t, dir, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "themegen 1.2.3")
}
