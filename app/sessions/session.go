package sessions

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/securecookie"
)

const tokenName = "authToken"

// ErrNoSession is returned when no token has been stored yet.
var ErrNoSession = errors.New("no stored session")

// TokenSource is what the API client needs from a session: the current
// bearer token and a way to drop it when the server rejects it.
type TokenSource interface {
	Token() (string, error)
	Clear() error
}

// FileStore persists the bearer token to a single file, encoded with
// securecookie so the token is not readable at rest.
type FileStore struct {
	path string
	sc   *securecookie.SecureCookie
}

func NewFileStore(path string, authKey, encKey []byte) *FileStore {
	return &FileStore{
		path: path,
		sc:   securecookie.New(authKey, encKey),
	}
}

func (s *FileStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("reading session file: %w", err)
	}

	var token string
	if err := s.sc.Decode(tokenName, string(data), &token); err != nil {
		// A corrupt or foreign-keyed session file is as good as no session.
		log.Printf("SessionStore: discarding undecodable session file: %v", err)
		return "", ErrNoSession
	}
	return token, nil
}

func (s *FileStore) SetToken(token string) error {
	encoded, err := s.sc.Encode(tokenName, token)
	if err != nil {
		return fmt.Errorf("encoding session token: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// ExpiresAt extracts the expiry claim from a bearer token without verifying
// its signature. Verification is the server's job; the client only wants to
// warn before firing requests with a token that is already dead.
func ExpiresAt(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parsing token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}

// Expired reports whether the token carries an expiry claim in the past.
// Tokens without a readable expiry are treated as live; the server has the
// final word either way.
func Expired(token string, now time.Time) bool {
	exp, err := ExpiresAt(token)
	if err != nil {
		return false
	}
	return exp.Before(now)
}
