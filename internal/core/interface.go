package core

import (
	"context"

	"github.com/regexcat/regexcat/internal/clipboard"
	"github.com/regexcat/regexcat/internal/pattern"
)

// Run is the outcome of one pipeline invocation.
type Run struct {
	Seq     uint64           // Monotonic per service; higher is newer
	Options pattern.Options  // Modes used for every line of this run
	Pattern string           // Final alternation
	Lines   int              // Number of candidate lines
	Result  clipboard.Result // Clipboard attempt, Pending until Publish
}

// PatternService defines the interface the presentation layer uses to run
// the pipeline and publish its result.
type PatternService interface {
	// Compute returns the final pattern without side effects.
	Compute(raw string, opts pattern.Options) string

	// Begin computes a new run and assigns it the next sequence number.
	Begin(raw string, opts pattern.Options) Run

	// Publish makes the single clipboard attempt for run.
	Publish(ctx context.Context, run Run) Run

	// Copy writes run to the clipboard even when auto-copy is off.
	Copy(ctx context.Context, run Run) Run

	// AutoCopy reports whether Publish writes to the clipboard.
	AutoCopy() bool

	// Process is Begin followed by Publish.
	Process(ctx context.Context, raw string, opts pattern.Options) Run

	// IsCurrent reports whether run is the most recently begun run.
	IsCurrent(run Run) bool
}
