package content

import (
	"strings"
	"testing"
)

// TestSanitizeLine tests the sanitization of ANSI sequences and control characters
func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Normal text",
			input:    "Hello World",
			expected: "Hello World",
		},
		{
			name:     "ANSI color sequence",
			input:    "\x1b[31mRed Text\x1b[0m",
			expected: "Red Text",
		},
		{
			name:     "Tab converted to space",
			input:    "Line\twith\ttabs",
			expected: "Line with tabs",
		},
		{
			name:     "Control characters removed",
			input:    "Line\x00with\x01control\x02chars",
			expected: "Linewithcontrolchars",
		},
		{
			name:     "Multiple ANSI sequences",
			input:    "\x1b[1m\x1b[32mBold Green\x1b[0m Normal",
			expected: "Bold Green Normal",
		},
		{
			name:     "Mixed content",
			input:    "func\x1b[33m main\x1b[0m() {\treturn\x00}",
			expected: "func main() { return}",
		},
		{
			name:     "Surrounding space trimmed",
			input:    "  padded \n",
			expected: "padded",
		},
		{
			name:     "Multibyte kept",
			input:    "Join us →",
			expected: "Join us →",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLine(tt.input); got != tt.expected {
				t.Errorf("SanitizeLine(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeLineTruncates(t *testing.T) {
	long := strings.Repeat("→", MaxLineLength+20)
	got := SanitizeLine(long)
	if n := len([]rune(got)); n != MaxLineLength {
		t.Errorf("Expected %d runes, got %d", MaxLineLength, n)
	}
}

func TestHasControl(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Hello World", false},
		{"Line\twith\ttabs", false},
		{"Line\nwith\nnewlines", true},
		{"\x1b[31mRed Text\x1b[0m", true},
		{"Line\x00with\x00null", true},
		{"Line\x07with\x07bell", true},
	}
	for _, tt := range tests {
		if got := HasControl(tt.input); got != tt.expected {
			t.Errorf("HasControl(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
