package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("Str0ng!Pass")
	salt := []byte("fixed-salt-for-testing")

	key1, err := DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	key2, err := DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if len(key1) != AESKeySize {
		t.Errorf("key length = %d, want %d", len(key1), AESKeySize)
	}
	if !bytes.Equal(key1, key2) {
		t.Error("derivation is not deterministic for a fixed (password, salt) pair")
	}
}

func TestDeriveKey_DifferentSaltsUnlinkable(t *testing.T) {
	password := []byte("Str0ng!Pass")

	key1, err := DeriveKey(password, []byte("salt-one-aaaaaaaaaaaaa"))
	if err != nil {
		t.Fatal(err)
	}
	key2, err := DeriveKey(password, []byte("salt-two-bbbbbbbbbbbbb"))
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(key1, key2) {
		t.Error("different salts produced identical keys")
	}
}

func TestDeriveKey_EmptyPassword(t *testing.T) {
	_, err := DeriveKey(nil, []byte("some-salt-bytes-here"))
	if !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestDeriveKey_InvalidSalt(t *testing.T) {
	if _, err := DeriveKey([]byte("pw"), nil); !errors.Is(err, ErrInvalidSaltSize) {
		t.Errorf("empty salt: expected ErrInvalidSaltSize, got %v", err)
	}
	if _, err := DeriveKey([]byte("pw"), make([]byte, 65)); !errors.Is(err, ErrInvalidSaltSize) {
		t.Errorf("oversized salt: expected ErrInvalidSaltSize, got %v", err)
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"default", DefaultParams, false},
		{"stronger", Params{Memory: 128 * 1024, Iterations: 4, Parallelism: 8}, false},
		{"low memory", Params{Memory: 32 * 1024, Iterations: 3, Parallelism: 4}, true},
		{"low iterations", Params{Memory: 64 * 1024, Iterations: 1, Parallelism: 4}, true},
		{"low parallelism", Params{Memory: 64 * 1024, Iterations: 3, Parallelism: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSaltString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		salt, err := NewSaltString()
		if err != nil {
			t.Fatalf("NewSaltString() error = %v", err)
		}
		if len(salt) != SaltStringSize {
			t.Fatalf("salt length = %d, want %d", len(salt), SaltStringSize)
		}
		if strings.ContainsRune(salt, 0) {
			t.Fatal("salt contains a zero byte")
		}
		if seen[salt] {
			t.Fatal("duplicate salt generated")
		}
		seen[salt] = true
	}
}
