package auth

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseResolver resolves Firebase ID tokens. A custom "role" claim, when
// present, becomes Identity.Role.
type FirebaseResolver struct {
	verifier idTokenVerifier
}

func NewFirebaseResolver(ctx context.Context, credentialsFile, projectID string) (*FirebaseResolver, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase: init app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: init auth client: %w", err)
	}

	return &FirebaseResolver{verifier: client}, nil
}

func (r *FirebaseResolver) ResolveToken(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	verified, err := r.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		if fbauth.IsIDTokenExpired(err) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if verified.UID == "" {
		return nil, ErrInvalidToken
	}

	identity := &Identity{
		UserID:    verified.UID,
		ExpiresAt: time.Unix(verified.Expires, 0),
	}
	if email, ok := verified.Claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := verified.Claims["role"].(string); ok {
		identity.Role = role
	}
	return identity, nil
}
