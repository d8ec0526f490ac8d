package content

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLineLength caps displayed lines in runes
const MaxLineLength = 80

var ansiSequence = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// SanitizeLine strips ANSI sequences and control characters, converts tabs to spaces
// and truncates to MaxLineLength runes
func SanitizeLine(line string) string {
	line = ansiSequence.ReplaceAllString(line, "")

	var b strings.Builder
	b.Grow(len(line))
	count := 0
	for _, r := range line {
		if count >= MaxLineLength {
			break
		}
		switch {
		case r == '\t':
			r = ' '
		case unicode.IsControl(r):
			continue
		}
		b.WriteRune(r)
		count++
	}
	return strings.TrimSpace(b.String())
}

// HasControl reports whether line carries escape sequences or control characters other than tab
// A display line never spans rows, so newlines count as control characters
func HasControl(line string) bool {
	for _, r := range line {
		if r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
