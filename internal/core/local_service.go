package core

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/regexcat/regexcat/internal/clipboard"
	"github.com/regexcat/regexcat/internal/pattern"
	"github.com/regexcat/regexcat/internal/utils"
)

// LocalPatternService implements PatternService in process.
type LocalPatternService struct {
	writer   clipboard.Writer
	autoCopy bool
	seq      atomic.Uint64
}

// NewLocalPatternService creates a service that copies through writer when
// autoCopy is set.
func NewLocalPatternService(writer clipboard.Writer, autoCopy bool) *LocalPatternService {
	return &LocalPatternService{
		writer:   writer,
		autoCopy: autoCopy,
	}
}

// AutoCopy reports whether Publish writes to the clipboard.
func (s *LocalPatternService) AutoCopy() bool {
	return s.autoCopy
}

func (s *LocalPatternService) Compute(raw string, opts pattern.Options) string {
	return pattern.Compute(raw, opts)
}

func (s *LocalPatternService) Begin(raw string, opts pattern.Options) Run {
	lines := pattern.ComputeLines(raw, opts)
	run := Run{
		Seq:     s.seq.Add(1),
		Options: opts,
		Pattern: pattern.Join(slices.Values(lines)),
		Lines:   len(lines),
	}

	if opts.Cleanup == pattern.RemoveSchemeSubdomainDomain || opts.Cleanup == pattern.RemoveSchemeSubdomainDomainSlash {
		for line := range pattern.Lines(raw) {
			if _, err := pattern.PathOf(line); err != nil {
				utils.Debug("run %d: kept line unchanged: %v", run.Seq, err)
			}
		}
	}
	return run
}

func (s *LocalPatternService) Publish(ctx context.Context, run Run) Run {
	return s.publish(ctx, run, false)
}

func (s *LocalPatternService) Copy(ctx context.Context, run Run) Run {
	return s.publish(ctx, run, true)
}

func (s *LocalPatternService) publish(ctx context.Context, run Run, force bool) Run {
	switch {
	case run.Pattern == "":
		run.Result = clipboard.Result{Outcome: clipboard.Empty}
	case !s.autoCopy && !force:
		run.Result = clipboard.Result{Outcome: clipboard.Skipped}
	case ctx.Err() != nil:
		run.Result = clipboard.Result{Outcome: clipboard.Failed, Err: ctx.Err()}
	default:
		run.Result = clipboard.Copy(s.writer, run.Pattern)
	}

	if run.Result.Err != nil {
		utils.Debug("run %d: clipboard write failed: %v", run.Seq, run.Result.Err)
	} else {
		utils.Debug("run %d: %d lines, %s", run.Seq, run.Lines, run.Result.Outcome)
	}
	return run
}

func (s *LocalPatternService) Process(ctx context.Context, raw string, opts pattern.Options) Run {
	return s.Publish(ctx, s.Begin(raw, opts))
}

func (s *LocalPatternService) IsCurrent(run Run) bool {
	return run.Seq == s.seq.Load()
}
