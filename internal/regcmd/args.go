// Package regcmd builds the exact ordered argument vectors reg.exe expects
// for each registry operation. Everything here is a pure transformation of
// inputs to an argv slice; validation of those inputs happens upstream, at
// key construction time.
package regcmd

import "github.com/joshuapare/regkit/pkg/types"

// Target addresses one registry key for argv construction.
type Target struct {
	Host string // "" for the local machine
	Hive types.Hive
	Key  string // "" for the hive root, else \segment\segment...
	Arch types.Arch
}

// Path renders the full key path handed to the tool:
// (\\host\ when host is non-empty) + hive short name + key.
func (t Target) Path() string {
	p := string(t.Hive) + t.Key
	if t.Host != "" {
		p = HostPrefix + t.Host + Separator + p
	}
	return p
}

// archFlag returns the /reg:32 or /reg:64 suffix for the target, or nil for
// the default view.
func (t Target) archFlag() []string {
	switch t.Arch {
	case types.ArchX86:
		return []string{FlagReg32}
	case types.ArchX64:
		return []string{FlagReg64}
	}
	return nil
}

// Query lists a key's values and subkeys: QUERY <path>.
func Query(t Target) []string {
	return append([]string{SubQuery, t.Path()}, t.archFlag()...)
}

// QueryValue reads one value: QUERY <path> (/ve | /v <name>).
func QueryValue(t Target, name string) []string {
	args := []string{SubQuery, t.Path()}
	if name == types.DefaultValue {
		args = append(args, FlagDefaultValue)
	} else {
		args = append(args, FlagValueName, name)
	}
	return append(args, t.archFlag()...)
}

// SetValue writes one value, overwriting without prompting:
// ADD <path> (/ve | /v <name>) /t <type> /d <data> /f.
func SetValue(t Target, name string, vt types.RegType, data string) []string {
	args := []string{SubAdd, t.Path()}
	if name == types.DefaultValue {
		args = append(args, FlagDefaultValue)
	} else {
		args = append(args, FlagValueName, name)
	}
	args = append(args, FlagType, string(vt), FlagData, data, FlagForce)
	return append(args, t.archFlag()...)
}

// DeleteValue removes one value: DELETE <path> /f (/v <name> | /ve).
func DeleteValue(t Target, name string) []string {
	args := []string{SubDelete, t.Path(), FlagForce}
	if name == types.DefaultValue {
		args = append(args, FlagDefaultValue)
	} else {
		args = append(args, FlagValueName, name)
	}
	return append(args, t.archFlag()...)
}

// EraseValues removes every value under the key, leaving subkeys intact:
// DELETE <path> /f /va.
func EraseValues(t Target) []string {
	return append([]string{SubDelete, t.Path(), FlagForce, FlagAllValues}, t.archFlag()...)
}

// DeleteKey removes the key and its entire subtree: DELETE <path> /f.
func DeleteKey(t Target) []string {
	return append([]string{SubDelete, t.Path(), FlagForce}, t.archFlag()...)
}

// CreateKey creates the key, a no-op when it already exists: ADD <path> /f.
func CreateKey(t Target) []string {
	return append([]string{SubAdd, t.Path(), FlagForce}, t.archFlag()...)
}
