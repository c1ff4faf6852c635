package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("expected mismatching password to fail")
	}
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(16)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := GenerateSecureRandomString(16)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("two draws must differ")
	}
}
