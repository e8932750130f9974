package githist

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes one VCS invocation. err is nil only on a zero exit; a
// non-zero exit surfaces as *exec.ExitError.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error)
}

type execRunner struct {
	bin string
}

func (r execRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = dir

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	return out.String(), errb.String(), err
}
