// Package githist fetches and parses per-line-range git history. Failures
// are per range: a range whose query fails gets its failure text inline in
// the batch output instead of aborting the other ranges.
package githist

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"

	"docdrift/internal/model"
)

const DefaultMaxCount = 5
const DefaultTimeout = 30 * time.Second

// NoLinesSentinel is returned for an empty range batch. Empty batches are
// legitimate (e.g. no doc comment exists), not errors.
const NoLinesSentinel = "No lines found to analyze."

type Options struct {
	GitBinary string        // default "git"
	Timeout   time.Duration // per invocation, default 30s
	Runner    Runner        // overrides GitBinary when set
}

type Client struct {
	runner  Runner
	timeout time.Duration
}

func NewClient(opts Options) *Client {
	runner := opts.Runner
	if runner == nil {
		bin := strings.TrimSpace(opts.GitBinary)
		if bin == "" {
			bin = "git"
		}
		runner = execRunner{bin: bin}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{runner: runner, timeout: timeout}
}

// FetchHistory issues one line-scoped log query per range and concatenates
// the sections, each prefixed with a header naming the range. Ranges with
// start > end are dropped.
func (c *Client) FetchHistory(ctx context.Context, filePath string, ranges []model.LineRange, maxCount int) string {
	if len(ranges) == 0 {
		return NoLinesSentinel
	}
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}

	path, dir := resolvePaths(filePath)

	var sections []string
	for _, r := range ranges {
		if r.Start > r.End {
			continue
		}
		sections = append(sections, c.fetchRange(ctx, dir, path, r, maxCount))
	}
	return strings.Join(sections, "\n")
}

func (c *Client) fetchRange(ctx context.Context, dir, path string, r model.LineRange, maxCount int) string {
	rctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stdout, stderr, err := c.runner.Run(rctx, dir,
		"log",
		"-L", fmt.Sprintf("%d,%d:%s", r.Start, r.End, path),
		fmt.Sprintf("--max-count=%d", maxCount),
	)

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		// Covers untracked files and timeouts (the killed process exits
		// non-zero) the same way.
		return fmt.Sprintf("Error reading lines %d-%d: %s", r.Start, r.End, strings.TrimSpace(stderr))
	case err != nil:
		return fmt.Sprintf("Git execution failed: %s", err)
	default:
		return fmt.Sprintf("--- History for lines %d-%d ---\n%s", r.Start, r.End, stdout)
	}
}

// resolvePaths returns the absolute file path to hand to git and the
// directory to run it from: the repository worktree root when the file is
// inside one, else the file's own directory, where git will then fail per
// range with its usual diagnostics.
func resolvePaths(filePath string) (path, dir string) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return filePath, "."
	}

	dir = filepath.Dir(abs)
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return abs, dir
	}
	wt, err := repo.Worktree()
	if err != nil {
		return abs, dir
	}
	return abs, wt.Filesystem.Root()
}
