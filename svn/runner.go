package svn

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one client invocation and returns its stdout text.
// The concrete implementation spawns the svn binary; tests substitute a
// fake returning canned reports so extractor logic runs without a
// subprocess. Implementations must be safe for concurrent use - the
// engine never serializes invocations against the same working copy.
type Runner interface {
	Run(ctx context.Context, args []string, workingDir string) (string, error)
}

// execRunner runs the real binary. One subprocess per call, no retries
// and no internal timeout; cancellation comes from the caller's context.
type execRunner struct {
	binary string
}

func (r *execRunner) Run(ctx context.Context, args []string, workingDir string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = workingDir
	cmd.Env = utf8Env(os.Environ())

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", err
	}

	// stderr is discarded on success; svn chats there about externals
	// and upgrades even when the command works.
	return stdout.String(), nil
}

// utf8Env forces a UTF-8 locale in the child environment so that
// non-ASCII paths and commit messages survive the decode.
func utf8Env(env []string) []string {
	out := make([]string, 0, len(env)+2)
	for _, kv := range env {
		if strings.HasPrefix(kv, "LANG=") || strings.HasPrefix(kv, "LC_ALL=") {
			continue
		}
		out = append(out, kv)
	}
	return append(out, "LANG=en_US.UTF-8", "LC_ALL=en_US.UTF-8")
}
