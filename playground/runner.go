// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package playground

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// A Runner prints the value of every example in a set of playgrounds.
type Runner struct {
	out     io.Writer
	log     logging.Logger
	heading *color.Color
}

// NewRunner constructs a [Runner] that writes to `out`. Headings are coloured
// iff `colored` is true, regardless of whether `out` is a terminal.
func NewRunner(out io.Writer, log logging.Logger, colored bool) *Runner {
	h := color.New(color.FgCyan, color.Bold)
	if colored {
		h.EnableColor()
	} else {
		h.DisableColor()
	}
	return &Runner{
		out:     out,
		log:     log,
		heading: h,
	}
}

// Run runs every example of every playground, in order. It stops at the first
// error, which is returned along with the playground and example names. The
// context is checked between examples.
func (r *Runner) Run(ctx context.Context, pgs ...Playground) error {
	for i, pg := range pgs {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return err
			}
		}
		if _, err := r.heading.Fprintf(r.out, "== %s ==\n", pg.Name); err != nil {
			return err
		}
		if err := r.runPlayground(ctx, pg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runPlayground(ctx context.Context, pg Playground) error {
	log := r.log.With(zap.String("playground", pg.Name))
	start := time.Now()

	for i, ex := range pg.Examples {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("playground %q interrupted before example %q: %w", pg.Name, ex.Name, err)
		}

		log.Debug("Running example",
			zap.Int("index", i),
			zap.String("example", ex.Name),
		)
		v, err := ex.Run()
		if err != nil {
			return fmt.Errorf("playground %q example %q: %w", pg.Name, ex.Name, err)
		}
		if _, err := fmt.Fprintf(r.out, "%s: %v\n", ex.Name, v); err != nil {
			return err
		}
	}

	log.Info("Playground complete",
		zap.Int("examples", len(pg.Examples)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
