package utils

import (
	"strings"
	"testing"
)

func TestRandString(t *testing.T) {
	code := RandString(8)
	if len(code) != 8 {
		t.Fatalf("len = %d, want 8", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(letters, r) {
			t.Errorf("unexpected rune %q in %q", r, code)
		}
	}
}
