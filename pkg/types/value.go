package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one parsed row of the reg tool's QUERY output: a named, typed
// datum under a key. Data holds the raw text exactly as the tool printed
// it; no type-specific decoding happens during parsing, so DWORD/QWORD
// values keep whatever radix the tool chose (usually "0x..." hex).
//
// Values are constructed by the output parser and never mutated.
type Value struct {
	Host string // "" for the local machine
	Hive Hive
	Key  string // "" for the hive root, else \segment\segment...
	Name string // DefaultValue for the key's unnamed value
	Type RegType
	Data string
	Arch Arch
}

// DWORD interprets Data as a 32-bit number. Radix follows the text: "0x"
// prefixed input parses as hex, otherwise decimal.
func (v Value) DWORD() (uint32, error) {
	if v.Type != REG_DWORD {
		return 0, fmt.Errorf("value %q is %s, not REG_DWORD", v.Name, v.Type)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v.Data), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", v.Name, err)
	}
	return uint32(n), nil
}

// QWORD interprets Data as a 64-bit number, same radix handling as DWORD.
func (v Value) QWORD() (uint64, error) {
	if v.Type != REG_QWORD {
		return 0, fmt.Errorf("value %q is %s, not REG_QWORD", v.Name, v.Type)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v.Data), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", v.Name, err)
	}
	return n, nil
}

// Strings splits a REG_MULTI_SZ payload on the "\0" separator reg.exe
// prints between list entries.
func (v Value) Strings() ([]string, error) {
	if v.Type != REG_MULTI_SZ {
		return nil, fmt.Errorf("value %q is %s, not REG_MULTI_SZ", v.Name, v.Type)
	}
	if v.Data == "" {
		return nil, nil
	}
	return strings.Split(v.Data, `\0`), nil
}
