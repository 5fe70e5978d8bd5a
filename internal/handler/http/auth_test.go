package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eterna-app/eterna/internal/service"
	"github.com/eterna-app/eterna/internal/store"
	"github.com/eterna-app/eterna/models"
)

var validRegisterRequest = models.RegisterRequest{
	FirstName: "Marie",
	LastName:  "Curie",
	Email:     "marie@example.com",
	Password:  "polonium",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created with a token and the user in the envelope.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 7, FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	decodeInto(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, signedToken, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.UserID)
	assert.Equal(t, "marie@example.com", resp.User.Email)
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request with a failure envelope.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.Response
	decodeInto(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid JSON was passed", resp.Message)
}

// TestRegister_DuplicateEmail verifies the 409 Conflict mapping when the
// email is already taken.
func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp models.Response
	decodeInto(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, store.ErrEmailAlreadyExists.Error(), resp.Message)
}

// TestRegister_ValidationError verifies the 400 mapping of service-level
// validation failures.
func TestRegister_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrPasswordTooShort
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRegister_TokenCreationFails verifies that an unmapped failure becomes a
// generic 500 that does not leak the underlying error.
func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errService
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.Response
	decodeInto(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Message)
	assert.NotContains(t, rec.Body.String(), errService.Error())
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies 200 OK with a token for valid credentials.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 7, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	body := jsonBody(t, models.LoginRequest{Email: "marie@example.com", Password: "polonium"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	decodeInto(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, signedToken, resp.Token)
}

// TestLogin_WrongCredentials verifies that authentication failures map to
// 401 with the generic credentials message.
func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	body := jsonBody(t, models.LoginRequest{Email: "marie@example.com", Password: "radium"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.Response
	decodeInto(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, service.ErrWrongPassword.Error(), resp.Message)
}

// TestLogin_InvalidJSON verifies 400 Bad Request for a malformed body.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// changePassword
// ─────────────────────────────────────────────

// TestChangePassword_Success verifies that the authenticated user's id is
// forwarded to the service and 200 OK is returned.
func TestChangePassword_Success(t *testing.T) {
	var gotUserID int64
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, userID int64, _ models.ChangePasswordRequest) error {
			gotUserID = userID
			return nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "polonium", NewPassword: "radium88"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.changePassword(rec, withUserID(req, 7))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotUserID)

	var resp models.Response
	decodeInto(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "password updated", resp.Message)
}

// TestChangePassword_NoUserInContext verifies 401 when the middleware did not
// run.
func TestChangePassword_NoUserInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestChangePassword_WrongCurrentPassword verifies the 401 mapping.
func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ int64, _ models.ChangePasswordRequest) error {
			return service.ErrWrongPassword
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "radium88"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.changePassword(rec, withUserID(req, 7))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
