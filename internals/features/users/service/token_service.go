package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"polstat_backend/internals/features/users/model"
)

const tokenTTL = 12 * time.Hour

// IssueToken signs a session token carrying the user id and role.
func IssueToken(user model.User, secret string) (string, time.Time, error) {
	expiresAt := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.UserRole,
		"iat":     time.Now().Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
