package auth

import (
	"strings"
	"testing"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Ala  ", "ala"},
		{"BOB", "bob"},
		{"\tmixed Case\n", "mixed case"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeUsername(tt.in); got != tt.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if NormalizeUsername(" Ala ") != NormalizeUsername("ALA") {
		t.Error("padding and case variants must collide")
	}
}

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	b, _ := GenerateSalt()
	if len(a) != 32 {
		t.Errorf("salt length = %d, want 32 hex chars", len(a))
	}
	if a == b {
		t.Error("two salts should not repeat")
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	h1, err := HashPassword("secret1", "abcd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, _ := HashPassword("secret1", "abcd")
	if h1 != h2 {
		t.Error("same inputs must give same hash")
	}
	if len(h1) != 128 {
		t.Errorf("hash length = %d, want 128", len(h1))
	}
	h3, _ := HashPassword("secret1", "abce")
	if h1 == h3 {
		t.Error("different salt must change the hash")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, _ := GenerateSalt()
	hash, err := HashPassword("tablefootball", salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"correct password", "tablefootball", hash, true},
		{"one character changed", "tablefootbalL", hash, false},
		{"empty password", "", hash, false},
		{"short hash", "tablefootball", hash[:64], false},
		{"corrupt hex", "tablefootball", strings.Repeat("zz", 64), false},
		{"empty hash", "tablefootball", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.password, salt, tt.hash); got != tt.want {
				t.Errorf("VerifyPassword = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionTokens(t *testing.T) {
	tok, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if len(tok) != 64 {
		t.Errorf("token length = %d, want 64", len(tok))
	}
	other, _ := NewSessionToken()
	if tok == other {
		t.Error("tokens should not repeat")
	}

	digest := HashToken(tok)
	if digest == tok {
		t.Error("digest must differ from token")
	}
	if HashToken(tok) != digest {
		t.Error("HashToken must be deterministic")
	}
	// sha256("abc")
	if got := HashToken("abc"); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("HashToken(abc) = %s", got)
	}
}
