package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := CheckPassword("correct horse battery", hash); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := CheckPassword("wrong password", hash); err == nil {
		t.Error("expected mismatch error")
	}
}
