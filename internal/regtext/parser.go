// Package regtext turns the raw stdout of reg.exe QUERY invocations back
// into typed records. The tool's output is line-oriented and loosely
// structured: a header line echoing the queried path, then value rows
// ("name  REG_TYPE  data") or hive-rooted subkey paths, separated by
// blank lines. Parsing is deliberately lenient - rows that fit no grammar
// are dropped, never reported - so blank separators and format drift
// across Windows releases do not break callers.
package regtext

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// Source identifies the key whose query output is being parsed. Parsed
// value records inherit these fields; the subkey grammar uses Hive and Key
// to drop the tool's echo of the queried key itself.
type Source struct {
	Host string
	Hive types.Hive
	Key  string
	Arch types.Arch
}

var (
	// valueLine matches one value row: a losslessly captured name (trimmed
	// afterwards), a type tag from the closed REG_* enumeration, then the
	// rest of the line as the raw data. Greedy name capture mirrors the
	// tool's own column discipline: the LAST type tag on the line wins.
	valueLine = regexp.MustCompile(`^(.*)\s(` + typeAlternation() + `)\s+(.*)$`)

	// subkeyLine matches a hive-rooted key path row.
	subkeyLine = regexp.MustCompile(
		`^(HKEY_LOCAL_MACHINE|HKEY_CURRENT_USER|HKEY_CLASSES_ROOT|HKEY_USERS|HKEY_CURRENT_CONFIG)(.*)$`,
	)
)

func typeAlternation() string {
	names := make([]string, len(types.RegTypes))
	for i, t := range types.RegTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}

const (
	// scannerInitialBufferSize is the starting line buffer; most rows are
	// well under this.
	scannerInitialBufferSize = 64 * 1024

	// scannerMaxLineSize caps a single output line. Registry values go up
	// to 1MB and a REG_BINARY row renders two hex digits per byte, so the
	// cap leaves headroom above 2MB.
	scannerMaxLineSize = 4 * 1024 * 1024
)

// contentLines splits stdout into trimmed lines, drops blanks, and drops
// exactly one leading non-blank line: the header the tool always emits
// (a repeated echo of the queried path). This skip is a hard structural
// assumption about reg.exe's output format. Zero non-blank lines in,
// zero lines out.
func contentLines(stdout string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(stdout))
	// Grow past the scanner's default 64KB line limit: one oversized
	// REG_BINARY row must not cut the listing short.
	sc.Buffer(make([]byte, 0, scannerInitialBufferSize), scannerMaxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}
	return lines[1:]
}

// ParseValues converts a QUERY listing into value records, output order
// preserved. Lines outside the value grammar are skipped silently.
func ParseValues(src Source, stdout string) []types.Value {
	var values []types.Value
	for _, line := range contentLines(stdout) {
		if v, ok := parseValueLine(src, line); ok {
			values = append(values, v)
		}
	}
	return values
}

// ParseValue extracts a single value from a QUERY /v or /ve invocation.
// The LAST matching line wins: legacy variants of the tool print an extra
// header row even when a name was given. No matching line means the value
// is absent, which on a zero exit code is a result, not an error.
func ParseValue(src Source, stdout string) (types.Value, bool) {
	var (
		value types.Value
		found bool
	)
	for _, line := range contentLines(stdout) {
		if v, ok := parseValueLine(src, line); ok {
			value = v
			found = true
		}
	}
	return value, found
}

func parseValueLine(src Source, line string) (types.Value, bool) {
	m := valueLine.FindStringSubmatch(line)
	if m == nil {
		return types.Value{}, false
	}
	return types.Value{
		Host: src.Host,
		Hive: src.Hive,
		Key:  src.Key,
		Name: strings.TrimSpace(m[1]),
		Type: types.RegType(m[2]),
		Data: m[3],
		Arch: src.Arch,
	}, true
}

// ParseSubkeys converts a QUERY listing into the key paths of src's direct
// subkeys, output order preserved. The tool echoes the queried key itself
// as a result row; that self-echo is filtered out, not returned as a
// subkey of itself. Output lines never carry the \\host\ prefix, so the
// comparison uses the long-form hive name plus the key path.
func ParseSubkeys(src Source, stdout string) []string {
	self := src.Hive.LongName() + src.Key
	var subkeys []string
	for _, line := range contentLines(stdout) {
		m := subkeyLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if line == self {
			continue
		}
		subkeys = append(subkeys, m[2])
	}
	return subkeys
}
