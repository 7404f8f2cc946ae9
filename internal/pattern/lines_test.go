package pattern

import (
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \n\t\n", nil},
		{"single", "a", []string{"a"}},
		{"trims", "  a  \n\tb\t", []string{"a", "b"}},
		{"keeps order and duplicates", "c\na\nc", []string{"c", "a", "c"}},
		{"drops blank lines", "a\n\n  \nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner spaces kept", "a b\n", []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitLines(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLines_IsLazy(t *testing.T) {
	count := 0
	for range Lines("a\nb\nc\nd") {
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Fatalf("expected iteration to stop after first line, got %d", count)
	}
}
