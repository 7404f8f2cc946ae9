package cmd

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexcat/regexcat/internal/config"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestModesCmd(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.execute("modes")
	require.NoError(t, err)
	out = ansiRE.ReplaceAllString(out, "")

	for _, want := range []string{
		"Clean-up modes (--cleanup)",
		"keepFullUrl",
		"removeSchemeSubdomainDomainSlash",
		"slash",
		"www.example.com/category/product",
		"example.com/category/product",
		"/category/product",
		"Matching modes (--match)",
		"wildcard",
		"/category/product.*",
		"/category/product$",
	} {
		assert.Contains(t, out, want)
	}
	assert.Empty(t, h.writer.Writes())
}

func TestModesCmd_RejectsArgs(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.execute("modes", "extra")
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	h := newHarness(t)
	writeSettings(t, `{"general": {"log_retention_count": 2}}`)
	t.Setenv(config.EnvMatch, "wildcard")

	out, _, err := h.execute("config")
	require.NoError(t, err)
	out = ansiRE.ReplaceAllString(out, "")

	assert.Contains(t, out, "Settings file: "+config.GetSettingsPath())
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "Pattern")
	assert.Regexp(t, `Log Retention Count\s+2`, out)
	assert.Regexp(t, `Auto Copy\s+true`, out)
	assert.Regexp(t, `Default Matching\s+wildcard`, out)
	assert.Contains(t, out, "(default_cleanup)")
}

func TestSettingsValues(t *testing.T) {
	values, err := settingsValues(config.DefaultSettings())
	require.NoError(t, err)

	assert.Equal(t, true, values["general"]["auto_copy"])
	assert.Equal(t, "keepFullUrl", values["pattern"]["default_cleanup"])
}

func TestPrintSettings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSettings(&buf, "/tmp/settings.json", config.DefaultSettings()))
	assert.Contains(t, ansiRE.ReplaceAllString(buf.String(), ""), "Settings file: /tmp/settings.json")
}
