package util

import "testing"

func TestBcryptRoundTrip(t *testing.T) {
	hash, err := HashPasswordBcrypt("secret123")
	if err != nil {
		t.Fatalf("HashPasswordBcrypt: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}

	if err := ComparePasswordBcrypt(hash, "secret123"); err != nil {
		t.Errorf("matching password rejected: %v", err)
	}
	if err := ComparePasswordBcrypt(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestBcryptEmptyInputs(t *testing.T) {
	if _, err := HashPasswordBcrypt(""); err == nil {
		t.Error("empty password should not hash")
	}
	if err := ComparePasswordBcrypt("", "secret123"); err == nil {
		t.Error("empty hash should not match")
	}
	if err := ComparePasswordBcrypt("somehash", ""); err == nil {
		t.Error("empty password should not match")
	}
}
