package regtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

func src() Source {
	return Source{Hive: types.HKCU, Key: `\Software\X`}
}

func TestParseValues(t *testing.T) {
	stdout := "\r\n" +
		"HKEY_CURRENT_USER\\Software\\X\r\n" +
		"    name    REG_SZ    hello\r\n" +
		"\r\n"

	values := ParseValues(src(), stdout)
	require.Len(t, values, 1)
	assert.Equal(t, "name", values[0].Name)
	assert.Equal(t, types.REG_SZ, values[0].Type)
	assert.Equal(t, "hello", values[0].Data)
	assert.Equal(t, types.HKCU, values[0].Hive)
	assert.Equal(t, `\Software\X`, values[0].Key)
}

func TestParseValuesOrderAndTypes(t *testing.T) {
	stdout := `
HKEY_CURRENT_USER\Software\X
    first     REG_SZ        hello world
    second    REG_DWORD     0x2a
    third     REG_QWORD     0x100000000
    fourth    REG_MULTI_SZ  a\0b
    fifth     REG_BINARY    dead00beef
`
	values := ParseValues(src(), stdout)
	require.Len(t, values, 5)

	assert.Equal(t, "first", values[0].Name)
	assert.Equal(t, "hello world", values[0].Data, "internal whitespace in data is preserved")
	assert.Equal(t, types.REG_DWORD, values[1].Type)
	assert.Equal(t, "0x2a", values[1].Data, "numeric data stays a raw string")
	assert.Equal(t, types.REG_QWORD, values[2].Type)
	assert.Equal(t, types.REG_MULTI_SZ, values[3].Type)
	assert.Equal(t, types.REG_BINARY, values[4].Type)
}

func TestParseValuesSkipsMalformedLines(t *testing.T) {
	// Second row is missing its type tag; it must be dropped silently,
	// not reported as an error.
	stdout := `
HKEY_CURRENT_USER\Software\X
    good      REG_SZ    hello
    malformed line without a tag
    alsogood  REG_DWORD 0x1
`
	values := ParseValues(src(), stdout)
	require.Len(t, values, 2)
	assert.Equal(t, "good", values[0].Name)
	assert.Equal(t, "alsogood", values[1].Name)
}

func TestParseValuesNameWithSpaces(t *testing.T) {
	stdout := `
HKEY_CURRENT_USER\Software\X
    my spaced name    REG_SZ    data here
`
	values := ParseValues(src(), stdout)
	require.Len(t, values, 1)
	assert.Equal(t, "my spaced name", values[0].Name)
	assert.Equal(t, "data here", values[0].Data)
}

func TestParseValuesHugeBinaryRow(t *testing.T) {
	// A REG_BINARY rendering can run to megabytes (two hex digits per
	// byte, values up to 1MB). An oversized row must parse, and must not
	// cut off the rows after it.
	hexBlob := strings.Repeat("ab", 40*1024) // one 80KB line
	stdout := "\r\nHKEY_CURRENT_USER\\Software\\X\r\n" +
		"    before    REG_SZ        hello\r\n" +
		"    blob      REG_BINARY    " + hexBlob + "\r\n" +
		"    after     REG_SZ        world\r\n"

	values := ParseValues(src(), stdout)
	require.Len(t, values, 3)
	assert.Equal(t, "before", values[0].Name)
	assert.Equal(t, "blob", values[1].Name)
	assert.Equal(t, types.REG_BINARY, values[1].Type)
	assert.Equal(t, hexBlob, values[1].Data)
	assert.Equal(t, "after", values[2].Name)
}

func TestParseValuesEmptyOutput(t *testing.T) {
	assert.Empty(t, ParseValues(src(), ""))
	assert.Empty(t, ParseValues(src(), "\r\n\r\n"))
	// Header only, no rows.
	assert.Empty(t, ParseValues(src(), "HKEY_CURRENT_USER\\Software\\X\r\n"))
}

func TestParseValueLastMatchWins(t *testing.T) {
	// Legacy tool variants print an extra header row even for /v queries;
	// the last matching line is the authoritative one.
	stdout := `
HKEY_CURRENT_USER\Software\X
    name    REG_SZ    stale
    name    REG_SZ    fresh
`
	v, ok := ParseValue(src(), stdout)
	require.True(t, ok)
	assert.Equal(t, "fresh", v.Data)
}

func TestParseValueAbsent(t *testing.T) {
	_, ok := ParseValue(src(), "")
	assert.False(t, ok)

	_, ok = ParseValue(src(), "HKEY_CURRENT_USER\\Software\\X\r\n")
	assert.False(t, ok)
}

func TestParseValueDefault(t *testing.T) {
	stdout := `
HKEY_CURRENT_USER\Software\X
    (Default)    REG_SZ    hello
`
	v, ok := ParseValue(src(), stdout)
	require.True(t, ok)
	assert.Equal(t, "(Default)", v.Name)
	assert.Equal(t, "hello", v.Data)
}

func TestParseSubkeys(t *testing.T) {
	// The tool echoes the queried key as the first result row after the
	// header; that self-echo must be excluded.
	stdout := `
HKEY_CURRENT_USER\Software\X
HKEY_CURRENT_USER\Software\X
HKEY_CURRENT_USER\Software\X\Alpha
HKEY_CURRENT_USER\Software\X\Beta
`
	subkeys := ParseSubkeys(src(), stdout)
	assert.Equal(t, []string{`\Software\X\Alpha`, `\Software\X\Beta`}, subkeys)
}

func TestParseSubkeysSkipsNonPathLines(t *testing.T) {
	stdout := `
HKEY_CURRENT_USER\Software\X
    name    REG_SZ    hello
HKEY_CURRENT_USER\Software\X\Child
End of search: 1 match(es) found.
`
	subkeys := ParseSubkeys(src(), stdout)
	assert.Equal(t, []string{`\Software\X\Child`}, subkeys)
}

func TestParseSubkeysRoot(t *testing.T) {
	stdout := `
HKEY_CURRENT_USER
HKEY_CURRENT_USER
HKEY_CURRENT_USER\Software
HKEY_CURRENT_USER\Console
`
	subkeys := ParseSubkeys(Source{Hive: types.HKCU}, stdout)
	assert.Equal(t, []string{`\Software`, `\Console`}, subkeys)
}

func TestParseSubkeysEmptyOutput(t *testing.T) {
	assert.Empty(t, ParseSubkeys(src(), ""))
}
