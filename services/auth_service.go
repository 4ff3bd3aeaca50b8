package services

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/hukuhuku/shot-tracker/utils"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidHeader means the Authorization header was missing, empty,
	// or not a Bearer credential.
	ErrInvalidHeader = errors.New("invalid Authorization header")
	// ErrTokenVerification means the identity provider rejected the token.
	ErrTokenVerification = errors.New("token verification failed")
	// ErrVerifierDisabled means no provider credentials were configured at
	// startup. Surfaced to clients as an ordinary auth failure.
	ErrVerifierDisabled = errors.New("token verification is disabled")
)

// TokenVerifier validates a raw Authorization header value and returns the
// stable user ID it proves. Implementations never return a 5xx-worthy
// error: any failure is an authentication failure.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, authHeader string) (string, error)
}

// bearerToken strips the Bearer prefix, rejecting malformed headers.
func bearerToken(authHeader string) (string, error) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer") {
		return "", ErrInvalidHeader
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer")), nil
}

// FirebaseVerifier checks ID tokens against the Firebase Admin client
// initialized by utils.InitFirebase.
type FirebaseVerifier struct{}

func NewFirebaseVerifier() *FirebaseVerifier {
	return &FirebaseVerifier{}
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, authHeader string) (string, error) {
	idToken, err := bearerToken(authHeader)
	if err != nil {
		return "", err
	}

	client := utils.FirebaseAuth()
	if client == nil {
		return "", ErrVerifierDisabled
	}

	decoded, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", ErrTokenVerification
	}
	return decoded.UID, nil
}

// LocalJWTVerifier validates HS256 tokens signed with a shared secret.
// Development only; lets the frontend run without Firebase credentials.
type LocalJWTVerifier struct {
	Secret []byte
}

func NewLocalJWTVerifier(secret []byte) *LocalJWTVerifier {
	return &LocalJWTVerifier{Secret: secret}
}

func (v *LocalJWTVerifier) VerifyToken(ctx context.Context, authHeader string) (string, error) {
	tokenString, err := bearerToken(authHeader)
	if err != nil {
		return "", err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenVerification
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenVerification
	}

	if sub, _ := claims["sub"].(string); sub != "" {
		return sub, nil
	}
	if uid, _ := claims["user_id"].(string); uid != "" {
		return uid, nil
	}
	return "", ErrTokenVerification
}

// NewVerifierFromEnv picks the verifier for this deployment: Firebase when
// service-account credentials were configured, the local JWT verifier when
// only JWT_SECRET is set, otherwise a disabled Firebase verifier that
// rejects every request.
func NewVerifierFromEnv() TokenVerifier {
	if utils.FirebaseAuth() != nil {
		return NewFirebaseVerifier()
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return NewLocalJWTVerifier([]byte(secret))
	}
	return NewFirebaseVerifier()
}
