// Package source gathers the raw URL list from the places the CLI accepts it.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/regexcat/regexcat/internal/clipboard"
)

type Kind string

const (
	KindArgs      Kind = "args"
	KindFile      Kind = "file"
	KindStdin     Kind = "stdin"
	KindClipboard Kind = "clipboard"
)

var readClipboard = clipboard.ReadText

// Request lists the inputs to combine. Empty fields are skipped.
type Request struct {
	Args      []string
	File      string
	Stdin     io.Reader
	Clipboard bool
}

// Read concatenates every requested input, one block per source in the order
// args, file, stdin, clipboard, and reports which sources contributed.
func Read(req Request) (string, []Kind, error) {
	var blocks []string
	var kinds []Kind

	if len(req.Args) > 0 {
		blocks = append(blocks, FromArgs(req.Args))
		kinds = append(kinds, KindArgs)
	}
	if req.File != "" {
		text, err := FromFile(req.File)
		if err != nil {
			return "", nil, err
		}
		blocks = append(blocks, text)
		kinds = append(kinds, KindFile)
	}
	if req.Stdin != nil {
		text, err := FromReader(req.Stdin)
		if err != nil {
			return "", nil, err
		}
		blocks = append(blocks, text)
		kinds = append(kinds, KindStdin)
	}
	if req.Clipboard {
		text, err := readClipboard()
		if err != nil {
			return "", nil, err
		}
		blocks = append(blocks, text)
		kinds = append(kinds, KindClipboard)
	}

	return strings.Join(blocks, "\n"), kinds, nil
}

// FromArgs treats each positional argument as one line.
func FromArgs(args []string) string {
	return strings.Join(args, "\n")
}

// FromFile reads a file containing URLs, one per line
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// FromReader reads everything from r.
func FromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
