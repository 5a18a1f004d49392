package helper

import (
	"strings"
	"testing"
)

func TestGenerateAdUIDFormat(t *testing.T) {
	uid := GenerateAdUID()
	if !strings.HasPrefix(uid, "AD-") {
		t.Fatalf("uid %q should start with AD-", uid)
	}
	code := strings.TrimPrefix(uid, "AD-")
	if len(code) != 6 {
		t.Fatalf("code %q should be 6 chars", code)
	}
	for _, ch := range code {
		if !strings.ContainsRune(adUIDAlphabet, ch) {
			t.Errorf("unexpected character %q in %q", ch, uid)
		}
	}
}

func TestGenerateAdUIDVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[GenerateAdUID()] = true
	}
	// 32^6 codes; 100 draws colliding down to a handful would mean a
	// broken generator
	if len(seen) < 95 {
		t.Fatalf("expected near-unique codes, got %d distinct of 100", len(seen))
	}
}
