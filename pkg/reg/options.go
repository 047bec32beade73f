package reg

import (
	"context"

	"github.com/joshuapare/regkit/internal/runner"
	"github.com/joshuapare/regkit/pkg/types"
)

// Option configures a Key at construction time.
type Option func(*Key)

// WithHost targets the registry of a remote machine instead of the local
// one. The tool addresses it as \\host\HIVE\key.
func WithHost(host string) Option {
	return func(k *Key) { k.host = host }
}

// WithArch selects the 32-bit (x86) or 64-bit (x64) registry view on
// 64-bit systems. New rejects selectors other than ArchX86/ArchX64/empty.
func WithArch(arch types.Arch) Option {
	return func(k *Key) { k.arch = arch }
}

// WithDiagnostics installs a sink for per-invocation diagnostics (the
// command line executed, the exit code). The default discards them.
func WithDiagnostics(sink func(format string, args ...any)) Option {
	return func(k *Key) { k.diag = runner.Sink(sink) }
}

// withExec substitutes the subprocess layer; tests use it to feed canned
// tool output through the full facade path.
func withExec(fn func(ctx context.Context, args []string) (runner.Result, error)) Option {
	return func(k *Key) { k.exec = fn }
}
