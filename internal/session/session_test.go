package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/app/services"
	"github.com/okul/schoolhub/internal/client"
	"github.com/okul/schoolhub/internal/pkg/apperrors"
	"github.com/okul/schoolhub/internal/pkg/auth"
	"github.com/okul/schoolhub/internal/pkg/tokenstore"
)

const userJSON = `{"id":"u-1","email":"jane@school.test","first_name":"Jane","last_name":"Doe","role":"TEACHER","is_active":true}`

// issueAccessToken signs an access token the way the backend would, so the
// client-side claim checks in Initialize see a well-formed, unexpired token.
func issueAccessToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: "u-1",
		Email:  "jane@school.test",
		Role:   "TEACHER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// fakeBackend emulates the auth endpoints the session manager exercises.
// It returns the access token it issues so tests can assert persistence.
func fakeBackend(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	access := issueAccessToken(t)
	pairJSON := `{"access":"` + access + `","refresh":"R1","user":` + userJSON + `}`

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode login: %v", err)
		}
		if req.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"detail":"Invalid credentials"}`)
			return
		}
		io.WriteString(w, pairJSON)
	})
	mux.HandleFunc("/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, pairJSON)
	})
	mux.HandleFunc("/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/auth/profile/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+access {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"detail":"token expired"}`)
			return
		}
		io.WriteString(w, userJSON)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, access
}

func newManager(t *testing.T, serverURL string, store tokenstore.Store) *Manager {
	t.Helper()
	c, err := client.New(client.Options{
		BaseURL: serverURL,
		Store:   store,
		Logger:  zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	return NewManager(services.NewAuthService(c))
}

func TestLoginTransitionsToAuthenticated(t *testing.T) {
	server, access := fakeBackend(t)
	store := tokenstore.NewMemStore()
	m := newManager(t, server.URL, store)

	user, err := m.Login(context.Background(), dto.LoginRequest{Email: "jane@school.test", Password: "correct"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if m.State() != StateAuthenticated {
		t.Fatalf("state = %v", m.State())
	}
	if user.Role != "teacher" {
		t.Fatalf("role not normalized: %q", user.Role)
	}

	pair, _ := store.Read()
	if pair.Access != access || pair.Refresh != "R1" {
		t.Fatalf("tokens not persisted: %+v", pair)
	}
}

func TestFailedLoginStaysAnonymous(t *testing.T) {
	server, _ := fakeBackend(t)
	store := tokenstore.NewMemStore()
	m := newManager(t, server.URL, store)

	_, err := m.Login(context.Background(), dto.LoginRequest{Email: "jane@school.test", Password: "wrong"})
	if err == nil {
		t.Fatal("expected login error")
	}
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid-credentials error, got %v", err)
	}
	if m.State() != StateAnonymous {
		t.Fatalf("state = %v", m.State())
	}
	if m.User() != nil {
		t.Fatal("user must be nil after failed login")
	}
}

func TestInitializeRestoresStoredSession(t *testing.T) {
	server, _ := fakeBackend(t)
	store := tokenstore.NewMemStore()
	m := newManager(t, server.URL, store)

	// First process: log in. Second process: bootstrap from the store.
	if _, err := m.Login(context.Background(), dto.LoginRequest{Email: "jane@school.test", Password: "correct"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m2 := newManager(t, server.URL, store)
	m2.Initialize(context.Background())
	if m2.State() != StateAuthenticated {
		t.Fatalf("state = %v", m2.State())
	}
	if u := m2.User(); u == nil || u.ID != "u-1" {
		t.Fatalf("user = %+v", m2.User())
	}
}

func TestInitializeWithoutTokensIsAnonymous(t *testing.T) {
	server, _ := fakeBackend(t)
	m := newManager(t, server.URL, tokenstore.NewMemStore())

	m.Initialize(context.Background())
	if m.State() != StateAnonymous {
		t.Fatalf("state = %v", m.State())
	}
}

func TestInitializeWithGarbageTokenSkipsProfileFetch(t *testing.T) {
	// A token that cannot be decoded is torn down locally; the profile
	// endpoint must never be consulted.
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/auth/profile/", func(w http.ResponseWriter, r *http.Request) {
		t.Error("profile fetched with an undecodable token")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := tokenstore.NewMemStore()
	if err := store.Save(auth.TokenPair{Access: "not-a-jwt", Refresh: "R1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.SaveUser([]byte(userJSON)); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	m := newManager(t, server.URL, store)
	m.Initialize(context.Background())
	if m.State() != StateAnonymous {
		t.Fatalf("state = %v", m.State())
	}
	pair, _ := store.Read()
	if !pair.Empty() {
		t.Fatalf("tokens survived teardown: %+v", pair)
	}
}

func TestInitializeWithExpiredTokenAndNoRefreshIsAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/auth/profile/", func(w http.ResponseWriter, r *http.Request) {
		t.Error("profile fetched with an expired, unrefreshable token")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	store := tokenstore.NewMemStore()
	if err := store.Save(auth.TokenPair{Access: signed}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.SaveUser([]byte(userJSON)); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	m := newManager(t, server.URL, store)
	m.Initialize(context.Background())
	if m.State() != StateAnonymous {
		t.Fatalf("state = %v", m.State())
	}
}

func TestLogoutAlwaysTearsDown(t *testing.T) {
	// A backend whose logout endpoint fails must still end the local session.
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"access":"A1","refresh":"R1","user":`+userJSON+`}`)
	})
	mux.HandleFunc("/auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"detail":"boom"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := tokenstore.NewMemStore()
	m := newManager(t, server.URL, store)
	if _, err := m.Login(context.Background(), dto.LoginRequest{Email: "jane@school.test", Password: "correct"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m.Logout(context.Background())
	if m.State() != StateAnonymous {
		t.Fatalf("state = %v", m.State())
	}
	pair, _ := store.Read()
	if !pair.Empty() {
		t.Fatalf("tokens survived logout: %+v", pair)
	}
}

func TestRegisterSignsIn(t *testing.T) {
	server, _ := fakeBackend(t)
	m := newManager(t, server.URL, tokenstore.NewMemStore())

	ok, err := m.Register(context.Background(), dto.RegisterRequest{
		Email:           "jane@school.test",
		Username:        "jane",
		FirstName:       "Jane",
		LastName:        "Doe",
		Role:            "teacher",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	})
	if err != nil || !ok {
		t.Fatalf("Register: ok=%v err=%v", ok, err)
	}
	if m.State() != StateAuthenticated {
		t.Fatalf("state = %v", m.State())
	}
}

func TestRegisterValidationFailureStaysAnonymous(t *testing.T) {
	server, _ := fakeBackend(t)
	m := newManager(t, server.URL, tokenstore.NewMemStore())

	ok, err := m.Register(context.Background(), dto.RegisterRequest{
		Email:           "jane@school.test",
		Username:        "jane",
		FirstName:       "Jane",
		LastName:        "Doe",
		Role:            "teacher",
		Password:        "secret123",
		PasswordConfirm: "mismatch",
	})
	if ok || err == nil {
		t.Fatalf("expected validation failure, ok=%v err=%v", ok, err)
	}
	if m.State() != StateAnonymous && m.State() != StateUnknown {
		t.Fatalf("state = %v", m.State())
	}
}

func TestListenersObserveTransitions(t *testing.T) {
	server, _ := fakeBackend(t)
	m := newManager(t, server.URL, tokenstore.NewMemStore())

	var states []State
	m.OnChange(func(snap Snapshot) {
		if !snap.Loading {
			states = append(states, snap.State)
		}
	})

	if _, err := m.Login(context.Background(), dto.LoginRequest{Email: "jane@school.test", Password: "correct"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout(context.Background())

	if len(states) < 2 {
		t.Fatalf("expected at least two settled transitions, got %v", states)
	}
	if states[len(states)-2] != StateAuthenticated || states[len(states)-1] != StateAnonymous {
		t.Fatalf("unexpected transition order: %v", states)
	}
}

func TestRegisterReportsLoadingWhileInFlight(t *testing.T) {
	server, _ := fakeBackend(t)
	m := newManager(t, server.URL, tokenstore.NewMemStore())

	var sawLoading bool
	var settled []Snapshot
	m.OnChange(func(snap Snapshot) {
		if snap.Loading {
			sawLoading = true
			return
		}
		settled = append(settled, snap)
	})

	ok, err := m.Register(context.Background(), dto.RegisterRequest{
		Email:           "jane@school.test",
		Username:        "jane",
		FirstName:       "Jane",
		LastName:        "Doe",
		Role:            "teacher",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	})
	if err != nil || !ok {
		t.Fatalf("Register: ok=%v err=%v", ok, err)
	}
	if !sawLoading {
		t.Fatal("listeners never saw a loading snapshot during register")
	}
	if len(settled) == 0 || settled[len(settled)-1].State != StateAuthenticated {
		t.Fatalf("unexpected settled snapshots: %+v", settled)
	}
}

func TestLogoutReportsLoadingWhileInFlight(t *testing.T) {
	server, _ := fakeBackend(t)
	m := newManager(t, server.URL, tokenstore.NewMemStore())
	if _, err := m.Login(context.Background(), dto.LoginRequest{Email: "jane@school.test", Password: "correct"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	var sawLoading bool
	var last Snapshot
	m.OnChange(func(snap Snapshot) {
		if snap.Loading {
			sawLoading = true
			return
		}
		last = snap
	})

	m.Logout(context.Background())
	if !sawLoading {
		t.Fatal("listeners never saw a loading snapshot during logout")
	}
	if last.State != StateAnonymous {
		t.Fatalf("final state = %v", last.State)
	}
}
