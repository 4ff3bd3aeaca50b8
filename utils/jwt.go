package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignDevToken issues an HS256 token carrying userID in the sub claim,
// accepted by the local development verifier. Not used in production,
// where tokens come from the identity provider.
func SignDevToken(userID string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString(secret)
}
