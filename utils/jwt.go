package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateUserJWT generates a JWT token for an authenticated citizen
func GenerateUserJWT(userID int64, secret []byte, expiresInHours int) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(expiresInHours) * time.Hour)

	claims := jwt.MapClaims{
		"user_id":    userID,
		"actor_type": "user",
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	return signed, expiresAt, err
}

// GenerateOfficerJWT generates a JWT token for an authenticated officer; the
// token is scoped to police only (citizen endpoints must reject it).
func GenerateOfficerJWT(officerID, stationID int64, secret []byte, expiresInHours int) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(expiresInHours) * time.Hour)
	claims := jwt.MapClaims{
		"officer_id": officerID,
		"station_id": stationID,
		"actor_type": "police",
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	return signed, expiresAt, err
}
