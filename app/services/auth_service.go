package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/sessions"
)

// TokenStore extends the read side of the session with the write operations
// the auth flow needs.
type TokenStore interface {
	sessions.TokenSource
	SetToken(token string) error
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Verify(ctx context.Context) (*models.User, error)
}

type authService struct {
	api   *APIClient
	store TokenStore
}

func NewAuthService(api *APIClient, store TokenStore) AuthService {
	return &authService{api: api, store: store}
}

// Login authenticates against the store API and persists the returned
// bearer token for subsequent commands.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	payload := map[string]string{"username": username, "password": password}

	var resp LoginResponse
	if err := s.api.Post(ctx, "/auth/login", payload, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return nil, errors.New("login failed: server returned no token")
	}

	if err := s.store.SetToken(resp.Token); err != nil {
		return nil, fmt.Errorf("storing session token: %w", err)
	}

	log.Printf("AuthService: logged in as %s (role %s)", resp.User.Username, resp.User.Role)
	return &resp.User, nil
}

// Logout tells the server to invalidate the token, then drops the local
// session either way.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.api.Post(ctx, "/auth/logout", nil, nil); err != nil && !errors.Is(err, ErrSessionExpired) {
		log.Printf("AuthService: server-side logout failed: %v", err)
	}
	return s.store.Clear()
}

// Verify asks the server who the stored token belongs to.
func (s *authService) Verify(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, "/auth/verify", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
