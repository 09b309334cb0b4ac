package shortcut

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external program and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec. The program is resolved on PATH and
// invoked directly, never through a shell.
type ExecRunner struct {
	// Dir is the working directory for the child; empty means the caller's.
	Dir string
}

// Run executes name with args and waits for it to finish.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return out, fmt.Errorf("running %s: %w: %s", name, err, msg)
		}
		return out, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}
