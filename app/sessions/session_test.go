package sessions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	testAuthKey = []byte("0123456789abcdef0123456789abcdef")
	testEncKey  = []byte("0123456789abcdef")
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session")
	return NewFileStore(path, testAuthKey, testEncKey)
}

func TestFileStoreRoundtrip(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Token(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Token on empty store = %v, want ErrNoSession", err)
	}

	if err := store.SetToken("bearer-value"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "bearer-value" {
		t.Errorf("token = %q, want %q", token, "bearer-value")
	}

	// The raw file must not contain the token.
	raw, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("reading session file: %v", err)
	}
	if string(raw) == "bearer-value" {
		t.Error("token stored in plaintext")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Token(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Token after Clear = %v, want ErrNoSession", err)
	}

	// Clearing an already-empty store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.path, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("writing garbage file: %v", err)
	}

	if _, err := store.Token(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Token on a corrupt file = %v, want ErrNoSession", err)
	}
}

func TestFileStoreForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	writer := NewFileStore(path, testAuthKey, testEncKey)
	if err := writer.SetToken("bearer-value"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	// A store with different keys cannot decode the file.
	reader := NewFileStore(path, []byte("ffffffffffffffffffffffffffffffff"), []byte("ffffffffffffffff"))
	if _, err := reader.Token(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Token with foreign keys = %v, want ErrNoSession", err)
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, err := ExpiresAt(signedToken(t, exp))
	if err != nil {
		t.Fatalf("ExpiresAt: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %v, want %v", got, exp)
	}

	if _, err := ExpiresAt("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	if Expired(signedToken(t, now.Add(time.Hour)), now) {
		t.Error("live token reported expired")
	}
	if !Expired(signedToken(t, now.Add(-time.Hour)), now) {
		t.Error("dead token reported live")
	}
	// Tokens without a readable expiry are treated as live.
	if Expired("not-a-token", now) {
		t.Error("unreadable token reported expired")
	}
}
