package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	clipboardWriteAll = clipboard.WriteAll
	clipboardReadAll  = clipboard.ReadAll
)

// ErrUnavailable is returned when the platform has no usable clipboard utility.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a plain function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error {
	return f(text)
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboardWriteAll(text)
}

// System returns the Writer backed by the OS clipboard.
func System() Writer {
	return systemWriter{}
}

// Outcome is the result category of a clipboard attempt.
type Outcome int

const (
	Pending Outcome = iota // Not published yet
	Empty                  // Nothing to copy
	Copied                 // Text is on the clipboard
	Failed                 // The write returned an error
	Skipped                // Copying is disabled
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Empty:
		return "empty"
	case Copied:
		return "copied"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result reports one clipboard attempt back to the presentation layer.
type Result struct {
	Outcome Outcome
	Err     error
}

// Message returns the status line shown to the user. A pending result has
// no message.
func (r Result) Message() string {
	switch r.Outcome {
	case Copied:
		return "Output automatically copied to clipboard!"
	case Failed:
		return fmt.Sprintf("Failed to copy output to clipboard: %v", r.Err)
	case Empty:
		return "No URLs to process or output is empty."
	case Skipped:
		return "Clipboard copy disabled."
	default:
		return ""
	}
}

// Copy writes text with w. Empty text is reported as Empty without touching
// the clipboard. Failures are reported, never retried.
func Copy(w Writer, text string) Result {
	if text == "" {
		return Result{Outcome: Empty}
	}
	if w == nil {
		return Result{Outcome: Failed, Err: ErrUnavailable}
	}
	if err := w.WriteAll(text); err != nil {
		return Result{Outcome: Failed, Err: err}
	}
	return Result{Outcome: Copied}
}

// ReadText returns the current clipboard contents with Windows line endings
// normalized to "\n".
func ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboardReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return strings.ReplaceAll(text, "\r\n", "\n"), nil
}
