package testutil

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

// WriteURLFile writes lines joined by sep to dir/name and returns the path.
// Pass "\r\n" as sep to simulate a list saved on Windows.
func WriteURLFile(dir, name, sep string, lines ...string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, sep)+sep), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

var (
	schemes    = []string{"", "http://", "https://"}
	subdomains = []string{"", "www.", "shop."}
	domains    = []string{"example.com", "example.org", "test.dev"}
	segments   = []string{"category", "product", "a", "b-c", "index.html", "%7Euser"}
)

// RandomURLs returns n URL-like lines built from a fixed vocabulary. The same
// seed always yields the same lines.
func RandomURLs(seed uint64, n int) []string {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	urls := make([]string, 0, n)
	for range n {
		var b strings.Builder
		b.WriteString(schemes[r.IntN(len(schemes))])
		b.WriteString(subdomains[r.IntN(len(subdomains))])
		b.WriteString(domains[r.IntN(len(domains))])
		for range r.IntN(4) {
			b.WriteString("/")
			b.WriteString(segments[r.IntN(len(segments))])
		}
		if r.IntN(4) == 0 {
			fmt.Fprintf(&b, "?id=%d", r.IntN(100))
		}
		urls = append(urls, b.String())
	}
	return urls
}
