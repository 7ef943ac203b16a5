package tidy

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Run invokes the base command once per file, with at most jobs
// processes in flight. Each file's combined stdout and stderr is
// printed to out under a banner as soon as that file finishes.
// progress receives one "Running: ..." line per file. The returned
// code is 0 when every run was clean and 1 otherwise.
func Run(ctx context.Context, base, files []string, jobs int, out, progress io.Writer) int {
	if jobs < 1 {
		jobs = 1
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	var mu sync.Mutex // serializes writes to out and progress
	rc := 0

	for _, file := range files {
		g.Go(func() error {
			full := append(append([]string{}, base...), file)

			mu.Lock()
			fmt.Fprintf(progress, "[clang-tidy-precommit] Running: %s\n", strings.Join(full, " "))
			mu.Unlock()

			cmd := exec.CommandContext(ctx, full[0], full[1:]...)
			output, err := cmd.CombinedOutput()

			mu.Lock()
			defer mu.Unlock()
			// Trailing-side trim only: clang-tidy indents continuation
			// lines and the leading whitespace is meaningful.
			if trimmed := strings.TrimRight(string(output), " \t\r\n"); trimmed != "" {
				fmt.Fprintf(out, "\n=== clang-tidy: %s ===\n%s\n", file, trimmed)
			}
			if err != nil {
				rc = 1
			}
			return nil
		})
	}

	// Workers report findings via rc, never as errors.
	_ = g.Wait()

	return rc
}
