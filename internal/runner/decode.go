package runner

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decode converts captured console bytes to UTF-8. BOM-marked output is
// transcoded from the marked encoding (reg.exe emits UTF-16LE with a BOM
// when unicode console output is active). BOM-less output that already
// reads as UTF-8 (plain ASCII included) passes through; anything else is
// treated as Windows-1252, the usual western ANSI code page of the
// console. Transformers are per call: each invocation owns its state.
func decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	bomAware := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(bomAware, b)
	if err != nil {
		return string(b)
	}
	if utf8.Valid(out) {
		return string(out)
	}
	ansi, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), out)
	if err != nil {
		return string(out)
	}
	return string(ansi)
}
