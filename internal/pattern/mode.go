package pattern

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode is returned when a mode name does not match any known mode.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrInvalidOptions is returned by Options.Validate for out-of-range modes.
	ErrInvalidOptions = errors.New("invalid options")
)

// CleanupMode selects which leading portion of a URL is stripped before suffixing.
type CleanupMode int

const (
	KeepFull CleanupMode = iota
	RemoveScheme
	RemoveSchemeSubdomain
	RemoveSchemeSubdomainDomain
	RemoveSchemeSubdomainDomainSlash
)

// MatchingMode selects the regex suffix appended to every line.
type MatchingMode int

const (
	Wildcard MatchingMode = iota
	Strict
)

// ModeInfo describes a mode for the CLI and the TUI radio groups.
type ModeInfo struct {
	Name        string // Canonical name accepted by Parse*
	Alias       string // Short alias accepted by Parse*
	Label       string // Radio button label
	Description string // One line help text
}

var cleanupInfo = [...]ModeInfo{
	KeepFull: {
		Name:        "keepFullUrl",
		Alias:       "full",
		Label:       "Don't change anything.",
		Description: "Use every URL exactly as entered.",
	},
	RemoveScheme: {
		Name:        "removeScheme",
		Alias:       "scheme",
		Label:       "Remove Scheme.",
		Description: "Strip a leading http:// or https://.",
	},
	RemoveSchemeSubdomain: {
		Name:        "removeSchemeSubdomain",
		Alias:       "subdomain",
		Label:       "Remove Scheme & Subdomain.",
		Description: "Strip the scheme, then a leading www.",
	},
	RemoveSchemeSubdomainDomain: {
		Name:        "removeSchemeSubdomainDomain",
		Alias:       "domain",
		Label:       "Remove Scheme, Subdomain, Domain.",
		Description: "Keep only path, query and fragment.",
	},
	RemoveSchemeSubdomainDomainSlash: {
		Name:        "removeSchemeSubdomainDomainSlash",
		Alias:       "slash",
		Label:       "Remove Scheme, Sub, Dom, Trailing Slash.",
		Description: "Keep only path, query and fragment, without the leading slash.",
	},
}

var matchingInfo = [...]ModeInfo{
	Wildcard: {
		Name:        "wildcard",
		Alias:       "w",
		Label:       "Wildcard (e.g., /path/to/page.*)",
		Description: "Append .* so anything may follow.",
	},
	Strict: {
		Name:        "strict",
		Alias:       "s",
		Label:       "Strict (e.g., /path/to/page$)",
		Description: "Append $ to anchor the end.",
	},
}

// CleanupModes returns every cleanup mode in display order.
func CleanupModes() []CleanupMode {
	return []CleanupMode{
		KeepFull,
		RemoveScheme,
		RemoveSchemeSubdomain,
		RemoveSchemeSubdomainDomain,
		RemoveSchemeSubdomainDomainSlash,
	}
}

// MatchingModes returns every matching mode in display order.
func MatchingModes() []MatchingMode {
	return []MatchingMode{Wildcard, Strict}
}

func (m CleanupMode) Valid() bool {
	return m >= KeepFull && m <= RemoveSchemeSubdomainDomainSlash
}

// Info returns the descriptive metadata for m. Invalid modes get a zero
// ModeInfo whose Name reports the raw value.
func (m CleanupMode) Info() ModeInfo {
	if !m.Valid() {
		return ModeInfo{Name: fmt.Sprintf("CleanupMode(%d)", int(m))}
	}
	return cleanupInfo[m]
}

func (m CleanupMode) String() string {
	return m.Info().Name
}

// Set implements pflag.Value so modes can be bound directly to cobra flags.
func (m *CleanupMode) Set(s string) error {
	v, err := ParseCleanupMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *CleanupMode) Type() string {
	return "cleanup"
}

func (m MatchingMode) Valid() bool {
	return m == Wildcard || m == Strict
}

func (m MatchingMode) Info() ModeInfo {
	if !m.Valid() {
		return ModeInfo{Name: fmt.Sprintf("MatchingMode(%d)", int(m))}
	}
	return matchingInfo[m]
}

func (m MatchingMode) String() string {
	return m.Info().Name
}

func (m *MatchingMode) Set(s string) error {
	v, err := ParseMatchingMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *MatchingMode) Type() string {
	return "match"
}

// ParseCleanupMode resolves a canonical name or alias, ignoring case.
func ParseCleanupMode(s string) (CleanupMode, error) {
	s = strings.TrimSpace(s)
	for _, m := range CleanupModes() {
		info := cleanupInfo[m]
		if strings.EqualFold(s, info.Name) || strings.EqualFold(s, info.Alias) {
			return m, nil
		}
	}
	return KeepFull, fmt.Errorf("cleanup mode %q: %w", s, ErrUnknownMode)
}

// ParseMatchingMode resolves a canonical name or alias, ignoring case.
func ParseMatchingMode(s string) (MatchingMode, error) {
	s = strings.TrimSpace(s)
	for _, m := range MatchingModes() {
		info := matchingInfo[m]
		if strings.EqualFold(s, info.Name) || strings.EqualFold(s, info.Alias) {
			return m, nil
		}
	}
	return Strict, fmt.Errorf("matching mode %q: %w", s, ErrUnknownMode)
}

// Options is the pair of mode selections used for one pipeline run.
type Options struct {
	Cleanup  CleanupMode
	Matching MatchingMode
}

// DefaultOptions keeps URLs untouched and anchors them strictly.
func DefaultOptions() Options {
	return Options{Cleanup: KeepFull, Matching: Strict}
}

func (o Options) Validate() error {
	if !o.Cleanup.Valid() {
		return fmt.Errorf("%w: cleanup mode %d out of range", ErrInvalidOptions, int(o.Cleanup))
	}
	if !o.Matching.Valid() {
		return fmt.Errorf("%w: matching mode %d out of range", ErrInvalidOptions, int(o.Matching))
	}
	return nil
}

// WithCleanup returns a copy of o using mode c.
func (o Options) WithCleanup(c CleanupMode) Options {
	o.Cleanup = c
	return o
}

// WithMatching returns a copy of o using mode m.
func (o Options) WithMatching(m MatchingMode) Options {
	o.Matching = m
	return o
}
