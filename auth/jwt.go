package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// TokenTTL is how long an issued credential stays valid.
const TokenTTL = 48 * time.Hour

// contextEmail is the gin context key holding the verified claim email.
const contextEmail = "decodedEmail"

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateToken signs an access token for the given email, expiring TokenTTL
// after issuance.
func GenerateToken(email string, secret []byte) (string, error) {
	claims := &Claims{
		Email:          email,
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(TokenTTL).Unix()},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the decoded claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// VerifyJWT gates a route on a valid bearer credential. A missing header is
// rejected with 401; a header not of the form "Bearer <token>", or a
// malformed, expired or badly signed token, with 403. On success the claim
// email is stored on the context for downstream handlers.
func VerifyJWT(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader("Authorization")

		if authorizationHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		parts := strings.Fields(authorizationHeader)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}

		claims, err := ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}

		c.Set(contextEmail, claims.Email)
		c.Next()
	}
}

// EmailFromContext returns the verified email set by VerifyJWT.
func EmailFromContext(c *gin.Context) (string, bool) {
	email := c.GetString(contextEmail)
	return email, email != ""
}
