package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCleanupMode(t *testing.T) {
	tests := []struct {
		in   string
		want CleanupMode
	}{
		{"keepFullUrl", KeepFull},
		{"KEEPFULLURL", KeepFull},
		{"full", KeepFull},
		{"removeScheme", RemoveScheme},
		{" scheme ", RemoveScheme},
		{"removeSchemeSubdomain", RemoveSchemeSubdomain},
		{"subdomain", RemoveSchemeSubdomain},
		{"removeSchemeSubdomainDomain", RemoveSchemeSubdomainDomain},
		{"domain", RemoveSchemeSubdomainDomain},
		{"removeSchemeSubdomainDomainSlash", RemoveSchemeSubdomainDomainSlash},
		{"slash", RemoveSchemeSubdomainDomainSlash},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCleanupMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCleanupMode("host")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseMatchingMode(t *testing.T) {
	for _, in := range []string{"wildcard", "Wildcard", "w"} {
		got, err := ParseMatchingMode(in)
		require.NoError(t, err)
		assert.Equal(t, Wildcard, got)
	}
	for _, in := range []string{"strict", "STRICT", "s"} {
		got, err := ParseMatchingMode(in)
		require.NoError(t, err)
		assert.Equal(t, Strict, got)
	}

	_, err := ParseMatchingMode("regex")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModeNamesRoundTrip(t *testing.T) {
	for _, m := range CleanupModes() {
		got, err := ParseCleanupMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.NotEmpty(t, m.Info().Label)
	}
	for _, m := range MatchingModes() {
		got, err := ParseMatchingMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestInvalidModeString(t *testing.T) {
	assert.Equal(t, "CleanupMode(9)", CleanupMode(9).String())
	assert.Equal(t, "MatchingMode(-1)", MatchingMode(-1).String())
}

func TestModeFlagValue(t *testing.T) {
	var c CleanupMode
	require.NoError(t, c.Set("domain"))
	assert.Equal(t, RemoveSchemeSubdomainDomain, c)
	assert.Error(t, c.Set("nope"))
	assert.Equal(t, RemoveSchemeSubdomainDomain, c, "failed Set must not change the value")

	m := Strict
	require.NoError(t, m.Set("wildcard"))
	assert.Equal(t, Wildcard, m)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.Equal(t, Options{Cleanup: KeepFull, Matching: Strict}, DefaultOptions())

	err := Options{Cleanup: CleanupMode(5), Matching: Strict}.Validate()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	err = Options{Cleanup: KeepFull, Matching: MatchingMode(2)}.Validate()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	opts := DefaultOptions().WithCleanup(RemoveScheme).WithMatching(Wildcard)
	assert.Equal(t, Options{Cleanup: RemoveScheme, Matching: Wildcard}, opts)
}
