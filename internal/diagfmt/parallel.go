package diagfmt

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"caret/internal/diag"
)

// PrettyAll renders distinct diagnostics concurrently and writes them to w in
// input order, one blank line between entries. Rendering shares no state
// between diagnostics, so the only coordination point is the ordered write.
func PrettyAll(ctx context.Context, w io.Writer, diags []*diag.Diagnostic, opts PrettyOpts, jobs int) error {
	if len(diags) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outs := make([]string, len(diags))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(diags)))
	for i, d := range diags {
		g.Go(func() error {
			s, err := Render(d, opts)
			if err != nil {
				return fmt.Errorf("render diagnostic %d: %w", i, err)
			}
			outs[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, s := range outs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
