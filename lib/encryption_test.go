package lib

import "testing"

func TestEncryptDecrypt(t *testing.T) {
	sealed, err := Encrypt("refresh-token-value", "session-secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if sealed == "refresh-token-value" {
		t.Fatal("Encrypt returned the plaintext")
	}

	opened, err := Decrypt(sealed, "session-secret")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if opened != "refresh-token-value" {
		t.Errorf("Decrypt = %q, want refresh-token-value", opened)
	}
}

func TestDecrypt_WrongSecret(t *testing.T) {
	sealed, err := Encrypt("refresh-token-value", "session-secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, err := Decrypt(sealed, "another-secret"); err == nil {
		t.Fatal("expected Decrypt to fail with the wrong secret")
	}
}

func TestEncrypt_Empty(t *testing.T) {
	sealed, err := Encrypt("", "session-secret")
	if err != nil || sealed != "" {
		t.Errorf("Encrypt(\"\") = %q, %v; want empty, nil", sealed, err)
	}
}
