// Package runner spawns the external registry tool and captures its
// complete output. One invocation per call, no shared state: each run owns
// its buffers exclusively, so concurrent operations need no coordination.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// Sink receives diagnostic lines for one invocation. A nil Sink discards
// them. Injected per call rather than toggled globally so diagnostics are
// scoped to the operation that asked for them.
type Sink func(format string, args ...any)

func (s Sink) logf(format string, args ...any) {
	if s != nil {
		s(format, args...)
	}
}

// Result is the complete outcome of one tool invocation: the exit code and
// both output streams, fully drained and decoded. A non-zero exit code is
// a result here, not an error; the facade decides what it means.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run executes the registry tool with the given argv and waits for it to
// exit and for both streams to drain. The only error it returns is a
// *types.LaunchError: the tool could not be started at all. The ambient
// environment is inherited, stdin is unused, no working directory is set.
func Run(ctx context.Context, args []string, diag Sink) (Result, error) {
	return run(ctx, Command(), args, diag)
}

func run(ctx context.Context, exe string, args []string, diag Sink) (Result, error) {
	cmd := exec.CommandContext(ctx, exe, args...)

	// Independent buffers for each stream. os/exec pumps both pipes
	// concurrently, so a full buffer on one side cannot deadlock the other.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	diag.logf("exec: %s %s", exe, strings.Join(args, " "))

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			diag.logf("launch failed: %v", err)
			return Result{}, &types.LaunchError{Path: exe, Err: err}
		}
		exitCode = exitErr.ExitCode()
	}

	res := Result{
		ExitCode: exitCode,
		Stdout:   decode(stdout.Bytes()),
		Stderr:   decode(stderr.Bytes()),
	}
	diag.logf("exit: code=%d stdout=%dB stderr=%dB",
		res.ExitCode, len(res.Stdout), len(res.Stderr))
	return res, nil
}
