package utils

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var shareTokenKey = loadShareTokenKey()

func loadShareTokenKey() []byte {
	if secret := os.Getenv("SHARE_TOKEN_SECRET"); secret != "" {
		return []byte(secret)
	}
	// Without a configured secret, sign with a per-process random key:
	// issued delete tokens stop working after a restart.
	secret, err := GenerateSecureToken(32)
	if err != nil {
		log.Fatalf("Error generating share token key: %v", err)
	}
	log.Println("SHARE_TOKEN_SECRET not set, using a per-process random key")
	return []byte(secret)
}

// ShareClaims authorizes deleting one shared itinerary. The token is issued
// once at share time and never stored server-side in plain form.
type ShareClaims struct {
	ItineraryID string `json:"itinerary_id"`
	jwt.RegisteredClaims
}

// CreateShareToken signs a delete token scoped to a single itinerary. The
// token lives as long as the share itself.
func CreateShareToken(itineraryID uuid.UUID, ttl time.Duration) (string, error) {
	claims := &ShareClaims{
		ItineraryID: itineraryID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(shareTokenKey)
}

// ValidateShareToken parses and verifies a delete token, returning its
// claims, or ErrInvalidToken for anything that does not check out.
func ValidateShareToken(tokenString string) (*ShareClaims, error) {
	claims := &ShareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return shareTokenKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
