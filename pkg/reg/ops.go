package reg

import (
	"context"
	"errors"

	"github.com/joshuapare/regkit/internal/regcmd"
	"github.com/joshuapare/regkit/internal/regtext"
	"github.com/joshuapare/regkit/pkg/types"
)

// invoke runs one tool invocation and applies the shared outcome contract:
// a launch failure propagates as *types.LaunchError, a non-zero exit
// becomes *types.CommandError carrying both captured streams, and success
// yields the decoded stdout for parsing.
func (k *Key) invoke(ctx context.Context, args []string) (string, error) {
	res, err := k.exec(ctx, args)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", &types.CommandError{
			Args:     args,
			ExitCode: res.ExitCode,
			Stdout:   res.Stdout,
			Stderr:   res.Stderr,
		}
	}
	return res.Stdout, nil
}

// Values lists the key's values, in the tool's output order.
func (k *Key) Values(ctx context.Context) ([]types.Value, error) {
	stdout, err := k.invoke(ctx, regcmd.Query(k.target()))
	if err != nil {
		return nil, err
	}
	return regtext.ParseValues(k.source(), stdout), nil
}

// Subkeys lists the key's direct subkeys, in the tool's output order. Each
// result inherits this key's host, hive, and view.
func (k *Key) Subkeys(ctx context.Context) ([]*Key, error) {
	stdout, err := k.invoke(ctx, regcmd.Query(k.target()))
	if err != nil {
		return nil, err
	}
	paths := regtext.ParseSubkeys(k.source(), stdout)
	subkeys := make([]*Key, 0, len(paths))
	for _, p := range paths {
		subkeys = append(subkeys, k.child(p))
	}
	return subkeys, nil
}

// Value reads one value by name (DefaultValue for the unnamed value). A
// successful query with no matching row reports ok=false: the value is
// absent, which is a result, not an error.
func (k *Key) Value(ctx context.Context, name string) (types.Value, bool, error) {
	stdout, err := k.invoke(ctx, regcmd.QueryValue(k.target(), name))
	if err != nil {
		return types.Value{}, false, err
	}
	v, ok := regtext.ParseValue(k.source(), stdout)
	return v, ok, nil
}

// SetValue writes a value, overwriting any existing one without prompting.
// An invalid type is rejected before any process is spawned.
func (k *Key) SetValue(ctx context.Context, name string, vt types.RegType, data string) error {
	if !vt.Valid() {
		return types.ErrInvalidValueType
	}
	_, err := k.invoke(ctx, regcmd.SetValue(k.target(), name, vt, data))
	return err
}

// DeleteValue removes one value by name (DefaultValue for the unnamed value).
func (k *Key) DeleteValue(ctx context.Context, name string) error {
	_, err := k.invoke(ctx, regcmd.DeleteValue(k.target(), name))
	return err
}

// Create creates the key; a no-op when the key already exists.
func (k *Key) Create(ctx context.Context) error {
	_, err := k.invoke(ctx, regcmd.CreateKey(k.target()))
	return err
}

// EraseValues removes every value under the key but leaves subkeys intact.
func (k *Key) EraseValues(ctx context.Context) error {
	_, err := k.invoke(ctx, regcmd.EraseValues(k.target()))
	return err
}

// DeleteKey removes the key and its entire subtree.
func (k *Key) DeleteKey(ctx context.Context) error {
	_, err := k.invoke(ctx, regcmd.DeleteKey(k.target()))
	return err
}

// Exists reports whether the key exists: a clean query means yes, a
// non-zero exit means no. A launch failure (tool missing) propagates as an
// error rather than masquerading as a missing key.
func (k *Key) Exists(ctx context.Context) (bool, error) {
	_, err := k.invoke(ctx, regcmd.Query(k.target()))
	var cmdErr *types.CommandError
	if errors.As(err, &cmdErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ValueExists reports whether the named value exists, with the same error
// contract as Exists: only a non-zero exit reads as "no".
func (k *Key) ValueExists(ctx context.Context, name string) (bool, error) {
	_, ok, err := k.Value(ctx, name)
	var cmdErr *types.CommandError
	if errors.As(err, &cmdErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ok, nil
}
