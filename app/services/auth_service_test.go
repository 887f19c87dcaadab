package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/sessions"
)

// memStore is an in-memory TokenStore for tests.
type memStore struct {
	token string
}

func (m *memStore) Token() (string, error) {
	if m.token == "" {
		return "", sessions.ErrNoSession
	}
	return m.token, nil
}

func (m *memStore) SetToken(token string) error {
	m.token = token
	return nil
}

func (m *memStore) Clear() error {
	m.token = ""
	return nil
}

func setupAuth(t *testing.T, router *mux.Router) (AuthService, *memStore) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	store := &memStore{}
	api := NewAPIClient(server.URL+"/api", 5*time.Second, store)
	return NewAuthService(api, store), store
}

func TestLoginStoresToken(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] != "admin" || creds["password"] != "password" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(LoginResponse{
			Token: "issued-token",
			User:  models.User{UserID: 1, Username: "admin", Role: models.RoleAdmin},
		})
	}).Methods("POST")

	auth, store := setupAuth(t, router)

	user, err := auth.Login(context.Background(), "admin", "password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("user = %+v", user)
	}
	if store.token != "issued-token" {
		t.Errorf("stored token = %q, want issued-token", store.token)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
	}).Methods("POST")

	auth, store := setupAuth(t, router)

	if _, err := auth.Login(context.Background(), "admin", "wrong"); err == nil {
		t.Fatal("expected an error for bad credentials")
	}
	if store.token != "" {
		t.Errorf("token stored after a failed login: %q", store.token)
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(LoginResponse{User: models.User{Username: "admin"}})
	}).Methods("POST")

	auth, store := setupAuth(t, router)

	if _, err := auth.Login(context.Background(), "admin", "password"); err == nil {
		t.Fatal("expected an error when the server returns no token")
	}
	if store.token != "" {
		t.Errorf("token stored despite the empty response: %q", store.token)
	}
}

func TestLogoutClearsSessionEvenWhenServerFails(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}).Methods("POST")

	auth, store := setupAuth(t, router)
	store.token = "stale-token"

	if err := auth.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if store.token != "" {
		t.Error("local session survived logout")
	}
}

func TestVerify(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer stored-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(models.User{UserID: 1, Username: "admin", Role: models.RoleAdmin})
	}).Methods("GET")

	auth, store := setupAuth(t, router)
	store.token = "stored-token"

	user, err := auth.Verify(context.Background())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if user.UserID != 1 || user.Username != "admin" {
		t.Errorf("user = %+v", user)
	}
}
