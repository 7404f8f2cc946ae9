package pattern

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnparseable is wrapped by PathOf when a line cannot be read as an absolute URL.
var ErrUnparseable = errors.New("unparseable url")

const defaultScheme = "https://"

// Clean applies mode to a single candidate line. It never fails: lines that
// cannot be parsed in the domain modes are returned unchanged.
func Clean(line string, mode CleanupMode) string {
	switch mode {
	case KeepFull:
		return line
	case RemoveScheme:
		return stripScheme(line)
	case RemoveSchemeSubdomain:
		return strings.TrimPrefix(stripScheme(line), "www.")
	case RemoveSchemeSubdomainDomain:
		path, err := PathOf(line)
		if err != nil {
			return line
		}
		return path
	case RemoveSchemeSubdomainDomainSlash:
		path, err := PathOf(line)
		if err != nil {
			return line
		}
		return strings.TrimPrefix(path, "/")
	default:
		return line
	}
}

func stripScheme(line string) string {
	if rest, ok := strings.CutPrefix(line, "https://"); ok {
		return rest
	}
	return strings.TrimPrefix(line, "http://")
}

// PathOf returns everything after the host of line: path, query and fragment.
// Lines not starting with "http" are parsed as if prefixed with https://.
// Dot segments are resolved and the query is percent-encoded the way a
// browser address bar does it.
func PathOf(line string) (string, error) {
	target := line
	if !strings.HasPrefix(target, "http") {
		target = defaultScheme + target
	}

	u, err := parseURL(target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute url", ErrUnparseable, line)
	}
	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err != nil || n > maxPort {
			return "", fmt.Errorf("%w: port %s out of range", ErrUnparseable, port)
		}
	}
	u = u.ResolveReference(&url.URL{})

	var b strings.Builder
	path := u.EscapedPath()
	if path == "" && (u.Scheme == "http" || u.Scheme == "https") {
		path = "/"
	}
	b.WriteString(path)
	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(escapeQuery(u.RawQuery))
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.EscapedFragment())
	}
	return b.String(), nil
}

const maxPort = 65535

// parseURL parses target, reading "http:/host" and "http:host" as
// "http://host".
func parseURL(target string) (*url.URL, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	if u.Host != "" || (u.Scheme != "http" && u.Scheme != "https") {
		return u, nil
	}
	_, rest, _ := strings.Cut(target, ":")
	rest = strings.TrimLeft(rest, `/\`)
	if rest == "" {
		return u, nil
	}
	return url.Parse(u.Scheme + "://" + rest)
}

// escapeQuery percent-encodes the bytes a browser encodes in a query of an
// http(s) URL. Existing escapes are kept.
func escapeQuery(q string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(q); i++ {
		c := q[i]
		switch {
		case c <= ' ', c >= 0x7f, c == '"', c == '\'', c == '<', c == '>':
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
