package utils

import (
	"errors"
	"os"
	"time"

	"brushfloss/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token carrying the given email claim.
// The token expires after the specified duration.
func GenerateToken(email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractEmailFromToken extracts the email claim from a valid JWT token string.
func ExtractEmailFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("token does not contain a valid 'email' claim")
	}

	return email, nil
}
