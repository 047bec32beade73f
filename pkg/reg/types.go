package reg

import "github.com/joshuapare/regkit/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/reg

// Core types.
type (
	Hive    = types.Hive
	Arch    = types.Arch
	RegType = types.RegType
	Value   = types.Value
)

// Error types.
type (
	Error        = types.Error
	ErrKind      = types.ErrKind
	CommandError = types.CommandError
	LaunchError  = types.LaunchError
)

// Hive constants.
const (
	HKLM = types.HKLM
	HKCU = types.HKCU
	HKCR = types.HKCR
	HKU  = types.HKU
	HKCC = types.HKCC
)

// Architecture selectors.
const (
	ArchDefault = types.ArchDefault
	ArchX86     = types.ArchX86
	ArchX64     = types.ArchX64
)

// Registry value type constants.
const (
	REG_SZ        = types.REG_SZ
	REG_MULTI_SZ  = types.REG_MULTI_SZ
	REG_EXPAND_SZ = types.REG_EXPAND_SZ
	REG_DWORD     = types.REG_DWORD
	REG_QWORD     = types.REG_QWORD
	REG_BINARY    = types.REG_BINARY
	REG_NONE      = types.REG_NONE
)

// DefaultValue names a key's default (unnamed) value.
const DefaultValue = types.DefaultValue

// Validation sentinels.
var (
	ErrInvalidHive         = types.ErrInvalidHive
	ErrInvalidKeyPath      = types.ErrInvalidKeyPath
	ErrInvalidArchitecture = types.ErrInvalidArchitecture
	ErrInvalidValueType    = types.ErrInvalidValueType
)
