package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInput  ErrKind = iota // invalid hive/key path/architecture/value type
	ErrKindLaunch                // reg.exe could not be started at all
	ErrKindExit                  // reg.exe launched but exited non-zero
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels raised synchronously, before any process is spawned.
var (
	// ErrInvalidHive indicates an unrecognized registry hive identifier.
	ErrInvalidHive = &Error{Kind: ErrKindInput, Msg: "invalid registry hive"}
	// ErrInvalidKeyPath indicates a key path outside the \segment\segment grammar.
	ErrInvalidKeyPath = &Error{Kind: ErrKindInput, Msg: "invalid registry key path"}
	// ErrInvalidArchitecture indicates an architecture selector other than x86/x64.
	ErrInvalidArchitecture = &Error{Kind: ErrKindInput, Msg: "invalid architecture, use x86 or x64"}
	// ErrInvalidValueType indicates a value type outside the REG_* enumeration.
	ErrInvalidValueType = &Error{Kind: ErrKindInput, Msg: "invalid registry value type"}
)

// LaunchError reports that the registry tool could not be started (missing
// binary, permissions). Distinct from a non-zero exit: a launch failure
// short-circuits and never also reports an exit-code error.
type LaunchError struct {
	Path string // executable we attempted to start
	Err  error  // underlying exec error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Kind reports ErrKindLaunch for classification alongside *Error.
func (e *LaunchError) Kind() ErrKind { return ErrKindLaunch }

// CommandError reports that the registry tool launched but exited non-zero.
// It carries the exit code and both captured streams for diagnostics.
type CommandError struct {
	Args     []string // argv handed to the tool
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("reg %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
	}
	return fmt.Sprintf("reg %s exited with code %d: %s", strings.Join(e.Args, " "), e.ExitCode, msg)
}

// Kind reports ErrKindExit for classification alongside *Error.
func (e *CommandError) Kind() ErrKind { return ErrKindExit }

// -----------------------------------------------------------------------------
// Hives, Architectures, Value Types
// -----------------------------------------------------------------------------

// Hive identifies one of the five top-level registry namespaces, in the
// short form the reg tool accepts in key paths.
type Hive string

const (
	HKLM Hive = "HKLM" // HKEY_LOCAL_MACHINE
	HKCU Hive = "HKCU" // HKEY_CURRENT_USER
	HKCR Hive = "HKCR" // HKEY_CLASSES_ROOT
	HKU  Hive = "HKU"  // HKEY_USERS
	HKCC Hive = "HKCC" // HKEY_CURRENT_CONFIG
)

// Hives lists every valid hive.
var Hives = []Hive{HKLM, HKCU, HKCR, HKU, HKCC}

// longNames maps each hive to the long form reg.exe prints in QUERY output.
var longNames = map[Hive]string{
	HKLM: "HKEY_LOCAL_MACHINE",
	HKCU: "HKEY_CURRENT_USER",
	HKCR: "HKEY_CLASSES_ROOT",
	HKU:  "HKEY_USERS",
	HKCC: "HKEY_CURRENT_CONFIG",
}

// Valid reports whether h is one of the five known hives.
func (h Hive) Valid() bool {
	_, ok := longNames[h]
	return ok
}

// LongName returns the long form ("HKEY_LOCAL_MACHINE") the tool prints in
// query output, or "" for an invalid hive.
func (h Hive) LongName() string { return longNames[h] }

func (h Hive) String() string { return string(h) }

// ParseHive resolves a short ("HKLM") or long ("HKEY_LOCAL_MACHINE") hive
// name, case-insensitively.
func ParseHive(s string) (Hive, bool) {
	up := strings.ToUpper(s)
	for h, long := range longNames {
		if up == string(h) || up == long {
			return h, true
		}
	}
	return "", false
}

// Arch selects between the 32-bit and 64-bit mirrored registry views on a
// 64-bit system. The zero value means the tool's default view. Whether the
// host actually runs a 64-bit registry is the caller's responsibility; the
// selector is passed through unverified.
type Arch string

const (
	ArchDefault Arch = ""
	ArchX86     Arch = "x86"
	ArchX64     Arch = "x64"
)

// Valid reports whether a is empty, x86, or x64.
func (a Arch) Valid() bool {
	return a == ArchDefault || a == ArchX86 || a == ArchX64
}

// RegType enumerates the registry value types the reg tool emits in its
// QUERY output. Textual (not numeric) because this package only ever sees
// the tool's text representation.
type RegType string

const (
	REG_SZ        RegType = "REG_SZ"
	REG_MULTI_SZ  RegType = "REG_MULTI_SZ"
	REG_EXPAND_SZ RegType = "REG_EXPAND_SZ"
	REG_DWORD     RegType = "REG_DWORD"
	REG_QWORD     RegType = "REG_QWORD"
	REG_BINARY    RegType = "REG_BINARY"
	REG_NONE      RegType = "REG_NONE"
)

// RegTypes lists the closed enumeration, in the order the value-line grammar
// alternates over them.
var RegTypes = []RegType{
	REG_SZ, REG_MULTI_SZ, REG_EXPAND_SZ, REG_DWORD, REG_QWORD, REG_BINARY, REG_NONE,
}

// Valid reports whether t is one of the seven enumeration members.
func (t RegType) Valid() bool {
	switch t {
	case REG_SZ, REG_MULTI_SZ, REG_EXPAND_SZ, REG_DWORD, REG_QWORD, REG_BINARY, REG_NONE:
		return true
	}
	return false
}

func (t RegType) String() string { return string(t) }

// DefaultValue is the name of a key's default (unnamed) value. The tool's
// /ve flag addresses it on both query and set paths; this package keeps the
// empty-string convention behind one constant.
const DefaultValue = ""
