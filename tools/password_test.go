package tools

import "testing"

func TestVerifyPasswordRoundTrip(t *testing.T) {
	for _, password := range []string{"secret123", "", "päss wörd", "averyveryverylongpassword!"} {
		if !VerifyPassword(password, HashPassword(password)) {
			t.Fatalf("verify(p, hash(p)) must hold for %q", password)
		}
	}
}

func TestVerifyPasswordRejectsOthers(t *testing.T) {
	digest := HashPassword("secret123")
	if VerifyPassword("secret124", digest) {
		t.Fatal("different password must not verify")
	}
	if VerifyPassword("", digest) {
		t.Fatal("empty password must not verify against a real digest")
	}
}

func TestHashPasswordShape(t *testing.T) {
	a := HashPassword("secret123")
	b := HashPassword("secret123")
	if a != b {
		t.Fatal("hashing must be deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}
