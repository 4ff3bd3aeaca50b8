package utils

import (
	"context"
	"log"
	"os"
	"sync/atomic"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseInitialized atomic.Bool
	firebaseAuthClient  *auth.Client
)

// InitFirebase initializes the process-wide Firebase Admin client from the
// FIREBASE_SERVICE_ACCOUNT env var (the service-account JSON itself, not a
// file path). A missing credential disables token verification and is
// logged, not fatal. Calling this more than once is a no-op.
func InitFirebase() {
	if !firebaseInitialized.CompareAndSwap(false, true) {
		return
	}

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT")
	if serviceAccountJSON == "" {
		log.Println("Firebase service account not found; token verification disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	if err != nil {
		log.Printf("Failed to initialize Firebase app: %v", err)
		return
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Printf("Failed to initialize Firebase auth client: %v", err)
		return
	}

	firebaseAuthClient = client
	log.Println("Firebase Admin SDK initialized successfully")
}

// FirebaseAuth returns the shared auth client, or nil when verification is
// disabled (no credentials at startup).
func FirebaseAuth() *auth.Client {
	return firebaseAuthClient
}
