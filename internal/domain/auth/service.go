package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle issues tokens for an existing account matching a
	// verified Google email.
	LoginWithGoogle(ctx context.Context, email string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates a refresh token and issues a new pair.
	RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
