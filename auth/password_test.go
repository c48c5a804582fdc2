package auth

import "testing"

func TestHashPasswordAndVerify(t *testing.T) {
	hashed, err := HashPassword("orchid-paper-lamp")
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if hashed == "orchid-paper-lamp" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !VerifyPassword("orchid-paper-lamp", hashed) {
		t.Fatalf("expected verification to succeed for correct password")
	}
	if VerifyPassword("wrong-password", hashed) {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected verification to fail for invalid hash")
	}
}
