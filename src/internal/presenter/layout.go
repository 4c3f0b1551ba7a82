package presenter

import "strings"

// DefaultTagWidth is the tag column width when none is configured.
const DefaultTagWidth = 32

// fallbackWidth caps the render width; it also stands in when the terminal
// width is unknown.
const fallbackWidth = 180

// fmtHeader right-aligns tag in a field of exactly width characters.
// Longer tags pass through untouched; trimming them is takeLast's job.
func fmtHeader(tag string, width int) string {
	if pad := width - len([]rune(tag)); pad > 0 {
		return strings.Repeat(" ", pad) + tag
	}
	return tag
}

// takeLast keeps the trailing size characters of s, preserving the most
// specific suffix of an overlong tag. The bool is false when size < 1.
func takeLast(s string, size int) (string, bool) {
	if size < 1 {
		return "", false
	}
	r := []rune(s)
	if size >= len(r) {
		return s, true
	}
	return string(r[len(r)-size:]), true
}

// indentWrap hard-cuts message every width-headerSize characters and
// indents continuation lines back under the header. Deliberately not
// word-aware: device logs are dense key=value runs where mid-token cuts
// read better than ragged columns.
func indentWrap(message string, width, headerSize int) string {
	wrapArea := width - headerSize
	r := []rune(message)
	if wrapArea <= 0 || len(r) <= wrapArea {
		return message
	}

	var b strings.Builder
	indent := "\n" + strings.Repeat(" ", headerSize)
	for cur := 0; cur < len(r); cur += wrapArea {
		if cur > 0 {
			b.WriteString(indent)
		}
		b.WriteString(string(r[cur:min(len(r), cur+wrapArea)]))
	}
	return b.String()
}
