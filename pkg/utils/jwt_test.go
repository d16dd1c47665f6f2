package utils

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestShareTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	token, err := CreateShareToken(id, time.Hour)
	if err != nil {
		t.Fatalf("CreateShareToken: %v", err)
	}

	claims, err := ValidateShareToken(token)
	if err != nil {
		t.Fatalf("ValidateShareToken: %v", err)
	}
	if claims.ItineraryID != id.String() {
		t.Errorf("ItineraryID = %q, want %q", claims.ItineraryID, id)
	}
}

func TestValidateShareTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := ValidateShareToken(token); err != ErrInvalidToken {
			t.Errorf("ValidateShareToken(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestValidateShareTokenRejectsExpired(t *testing.T) {
	token, err := CreateShareToken(uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("CreateShareToken: %v", err)
	}
	if _, err := ValidateShareToken(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	if raw, err := hex.DecodeString(token); err != nil || len(raw) != 32 {
		t.Errorf("token %q is not 32 hex-encoded bytes", token)
	}

	if _, err := GenerateSecureToken(0); err == nil {
		t.Error("expected error for zero length")
	}
}
