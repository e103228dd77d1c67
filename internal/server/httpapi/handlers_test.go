package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayankt25/backend/internal/logging"
	"github.com/mayankt25/backend/internal/server/auth"
	"github.com/mayankt25/backend/internal/server/config"
	"github.com/mayankt25/backend/internal/server/repositories/repomanager"
	"github.com/mayankt25/backend/internal/server/services"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		SecretKey:  testSecret,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	rm := repomanager.NewInMemoryRepositoryManager()
	users := services.NewUserService(nil, rm, cfg)
	notes := services.NewNoteService(nil, rm)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return New(logger, users, notes, cfg.SecretKey).Handler()
}

func TestHealth(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Get("/health").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.status", "ok")).
		End()
}

func TestRegister_OK(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Post("/auth/createuser").
		JSON(`{"name":"Alice","email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.success", true)).
		Assert(jsonpath.Present("$.token")).
		End()
}

func TestRegister_ValidationReportsEveryField(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Post("/auth/createuser").
		JSON(`{"name":"Al","email":"nope","password":"12345"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.success", false)).
		Assert(jsonpath.Len("$.error", 3)).
		End()
}

func TestRegister_MalformedBody(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Post("/auth/createuser").
		Body(`{not json`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestRegister_Duplicate(t *testing.T) {
	h := newTestHandler(t)

	apitest.New().
		Handler(h).
		Post("/auth/createuser").
		JSON(`{"name":"Alice","email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.success", true)).
		End()

	// Second registration with the same email is reported as a conflict and
	// never yields a token.
	apitest.New().
		Handler(h).
		Post("/auth/createuser").
		JSON(`{"name":"Alice Again","email":"a@x.com","password":"secret2"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.success", false)).
		Assert(jsonpath.Equal("$.error", "User already exists")).
		Assert(jsonpath.NotPresent("$.token")).
		End()
}

func TestLogin_OK(t *testing.T) {
	h := newTestHandler(t)
	registerAlice(t, h)

	apitest.New().
		Handler(h).
		Post("/auth/login").
		JSON(`{"email":"a@x.com","password":"secret1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.success", true)).
		Assert(jsonpath.Present("$.token")).
		End()
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestHandler(t)
	registerAlice(t, h)

	apitest.New().
		Handler(h).
		Post("/auth/login").
		JSON(`{"email":"a@x.com","password":"wrong-password"}`).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.success", false)).
		Assert(jsonpath.Equal("$.error", "Please enter correct login credentials.")).
		Assert(jsonpath.NotPresent("$.token")).
		End()
}

func TestLogin_UnknownEmail_SameShape(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Post("/auth/login").
		JSON(`{"email":"ghost@x.com","password":"whatever"}`).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "Please enter correct login credentials.")).
		End()
}

func TestLogin_Validation(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Post("/auth/login").
		JSON(`{"email":"not-an-email","password":""}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Len("$.error", 2)).
		End()
}

func TestGetUser_OmitsPasswordHash(t *testing.T) {
	h := newTestHandler(t)
	token := registerAlice(t, h)

	apitest.New().
		Handler(h).
		Post("/auth/getuser").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.name", "Alice")).
		Assert(jsonpath.Equal("$.email", "a@x.com")).
		Assert(jsonpath.NotPresent("$.password")).
		Assert(jsonpath.NotPresent("$.password_hash")).
		End()
}

func TestAuthGate_MissingToken(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Get("/notes").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.error", "Authentication token missing")).
		End()
}

func TestAuthGate_BadScheme(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Get("/notes").
		Header("Authorization", "Token abc").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestAuthGate_GarbageToken(t *testing.T) {
	apitest.New().
		Handler(newTestHandler(t)).
		Get("/notes").
		Header("Authorization", "Bearer not.a.jwt").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.error", "Please authenticate using a valid token")).
		End()
}

func TestAuthGate_ForeignSecretToken(t *testing.T) {
	// A structurally valid token signed with a different secret must be
	// rejected.
	forged, err := auth.GenerateToken("u1", []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	apitest.New().
		Handler(newTestHandler(t)).
		Get("/notes").
		Header("Authorization", "Bearer "+forged).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	h := newTestHandler(t)
	token := registerAlice(t, h)

	apitest.New().
		Handler(h).
		Get("/notes").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusOK).
		Body(`[]`).
		End()
}

func TestAddNote_ValidationBoundaries(t *testing.T) {
	h := newTestHandler(t)
	token := registerAlice(t, h)

	// Title of exactly 5 and description of exactly 7 characters pass.
	apitest.New().
		Handler(h).
		Post("/notes").
		Header("Authorization", "Bearer "+token).
		JSON(`{"title":"12345","description":"1234567"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "12345")).
		End()

	// One character short on both fields: both violations reported.
	apitest.New().
		Handler(h).
		Post("/notes").
		Header("Authorization", "Bearer "+token).
		JSON(`{"title":"1234","description":"123456"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Len("$.errors", 2)).
		End()
}

func TestUpdateNote_NotFound(t *testing.T) {
	h := newTestHandler(t)
	token := registerAlice(t, h)

	apitest.New().
		Handler(h).
		Put("/notes/2b1f7e9a-0000-4000-8000-000000000000").
		Header("Authorization", "Bearer "+token).
		JSON(`{"title":"Whatever"}`).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "Not Found.")).
		End()
}

func TestDeleteNote_NotFound(t *testing.T) {
	h := newTestHandler(t)
	token := registerAlice(t, h)

	apitest.New().
		Handler(h).
		Delete("/notes/2b1f7e9a-0000-4000-8000-000000000000").
		Header("Authorization", "Bearer "+token).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}
