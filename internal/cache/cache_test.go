package cache

import (
	"strings"
	"testing"
)

func TestResultKeyIsStable(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}

	first := ResultKey(image)
	second := ResultKey(image)
	if first != second {
		t.Fatalf("same bytes must produce the same key: %q vs %q", first, second)
	}
	if !strings.HasPrefix(first, "ocr:result:") {
		t.Fatalf("unexpected key format: %q", first)
	}
	if len(first) != len("ocr:result:")+40 {
		t.Fatalf("expected 40 hex chars of SHA-1, got %q", first)
	}
}

func TestResultKeyDiffersPerImage(t *testing.T) {
	if ResultKey([]byte("a")) == ResultKey([]byte("b")) {
		t.Fatal("different bytes must produce different keys")
	}
}
