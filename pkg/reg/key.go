package reg

import (
	"context"
	"regexp"
	"strings"

	"github.com/joshuapare/regkit/internal/regcmd"
	"github.com/joshuapare/regkit/internal/regtext"
	"github.com/joshuapare/regkit/internal/runner"
	"github.com/joshuapare/regkit/pkg/types"
)

// keyPath is the key-segment grammar: zero or more \segment groups, where
// a segment is alphanumeric/underscore/whitespace. The empty string is the
// hive root; a trailing separator never matches.
var keyPath = regexp.MustCompile(`^(\\[a-zA-Z0-9_\s]+)*$`)

// execFunc runs one tool invocation. Swappable so tests can substitute
// canned output for a live subprocess.
type execFunc func(ctx context.Context, args []string) (runner.Result, error)

// Key is an immutable handle on one registry key. Construct with New or
// ParsePath; derive with Parent or Subkeys. A Key is never mutated after
// construction, so handles can be shared freely across goroutines.
type Key struct {
	host string
	hive types.Hive
	key  string
	arch types.Arch
	exec execFunc
	diag runner.Sink
}

// New validates hive, key path, and options, and returns a Key handle.
// Validation happens here exactly once; operations never re-check.
func New(hive types.Hive, key string, opts ...Option) (*Key, error) {
	k := &Key{hive: hive, key: key}
	for _, opt := range opts {
		opt(k)
	}
	if !k.hive.Valid() {
		return nil, types.ErrInvalidHive
	}
	if !keyPath.MatchString(k.key) {
		return nil, types.ErrInvalidKeyPath
	}
	if !k.arch.Valid() {
		return nil, types.ErrInvalidArchitecture
	}
	if k.exec == nil {
		diag := k.diag
		k.exec = func(ctx context.Context, args []string) (runner.Result, error) {
			return runner.Run(ctx, args, diag)
		}
	}
	return k, nil
}

// ParsePath constructs a Key from a textual path such as
// "HKLM\Software\Vendor", "HKEY_CURRENT_USER\Console", or
// "\\host\HKLM\Software". Hive names parse in short or long form.
func ParsePath(path string, opts ...Option) (*Key, error) {
	rest := path
	if host, ok := strings.CutPrefix(rest, regcmd.HostPrefix); ok {
		i := strings.Index(host, regcmd.Separator)
		if i <= 0 {
			return nil, types.ErrInvalidKeyPath
		}
		opts = append(opts, WithHost(host[:i]))
		rest = host[i+1:]
	}
	hiveTok, key := rest, ""
	if i := strings.Index(rest, regcmd.Separator); i >= 0 {
		hiveTok, key = rest[:i], rest[i:]
	}
	hive, ok := types.ParseHive(hiveTok)
	if !ok {
		return nil, types.ErrInvalidHive
	}
	return New(hive, key, opts...)
}

// Host returns the remote machine name, or "" for the local registry.
func (k *Key) Host() string { return k.host }

// Hive returns the key's registry hive.
func (k *Key) Hive() types.Hive { return k.hive }

// KeyPath returns the key path under the hive ("" for the hive root).
func (k *Key) KeyPath() string { return k.key }

// Arch returns the registry view selector.
func (k *Key) Arch() types.Arch { return k.arch }

// Path returns the full path handed to the tool:
// (\\host\ when host is set) + hive + key.
func (k *Key) Path() string { return k.target().Path() }

func (k *Key) String() string { return k.Path() }

// Parent returns a new Key addressing the parent of this key, with the
// same host, hive, and view. The parent of a first-level key (and of the
// root itself) is the hive root.
func (k *Key) Parent() *Key {
	parent := *k
	if i := strings.LastIndex(k.key, regcmd.Separator); i > 0 {
		parent.key = k.key[:i]
	} else {
		parent.key = ""
	}
	return &parent
}

// child builds a subkey handle from a parsed sub-path, inheriting host,
// hive, view, and wiring. Paths come from the output parser, which only
// ever emits hive-rooted lines, so no revalidation happens.
func (k *Key) child(subPath string) *Key {
	c := *k
	c.key = subPath
	return &c
}

func (k *Key) target() regcmd.Target {
	return regcmd.Target{Host: k.host, Hive: k.hive, Key: k.key, Arch: k.arch}
}

func (k *Key) source() regtext.Source {
	return regtext.Source{Host: k.host, Hive: k.hive, Key: k.key, Arch: k.arch}
}
