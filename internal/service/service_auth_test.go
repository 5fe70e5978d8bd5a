package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/store"
	"github.com/eterna-app/eterna/models"
)

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   "test_sign_key",
		tokenIssuer:    "eterna-test",
		tokenDuration:  time.Hour,
		now:            func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) },
		logger:         logger.Nop(),
	}
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "Marie", user.FirstName)
			assert.Equal(t, "Curie", user.LastName)
			assert.Equal(t, "marie@example.com", user.Email)
			assert.NotEqual(t, "s3cret-password", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-password")))

			user.UserID = 7
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		FirstName: "Marie",
		LastName:  "Curie",
		Email:     "marie@example.com",
		Password:  "s3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_RegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "missing first name",
			req:     models.RegisterRequest{LastName: "Curie", Email: "marie@example.com", Password: "s3cret-password"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "missing email",
			req:     models.RegisterRequest{FirstName: "Marie", LastName: "Curie", Password: "s3cret-password"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "missing password",
			req:     models.RegisterRequest{FirstName: "Marie", LastName: "Curie", Email: "marie@example.com"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "malformed email",
			req:     models.RegisterRequest{FirstName: "Marie", LastName: "Curie", Email: "not-an-email", Password: "s3cret-password"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{FirstName: "Marie", LastName: "Curie", Email: "marie@example.com", Password: "abc"},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(&mockUserRepository{})

			_, err := svc.RegisterUser(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		FirstName: "Marie",
		LastName:  "Curie",
		Email:     "marie@example.com",
		Password:  "s3cret-password",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	storedHash := hashForTest(t, "s3cret-password")
	lastLoginUpdated := false

	repo := &mockUserRepository{
		findActiveUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "marie@example.com", email)
			return models.User{UserID: 7, Email: email, PasswordHash: storedHash, IsActive: true}, nil
		},
		updateLastLoginFn: func(_ context.Context, userID int64, at time.Time) error {
			assert.Equal(t, int64(7), userID)
			assert.False(t, at.IsZero())
			lastLoginUpdated = true
			return nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "marie@example.com",
		Password: "s3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.True(t, lastLoginUpdated)
	require.NotNil(t, user.LastLogin)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findActiveUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})

	// Unknown email and wrong password are indistinguishable to the client.
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &mockUserRepository{
		findActiveUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hashForTest(t, "right-password")}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "marie@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_LastLoginFailureDoesNotBlock(t *testing.T) {
	repo := &mockUserRepository{
		findActiveUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hashForTest(t, "s3cret-password")}, nil
		},
		updateLastLoginFn: func(_ context.Context, _ int64, _ time.Time) error {
			return errStorage
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "marie@example.com",
		Password: "s3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Nil(t, user.LastLogin)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// ChangePassword
// ─────────────────────────────────────────────

func TestAuthService_ChangePassword_Success(t *testing.T) {
	hashUpdated := false
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(7), userID)
			return models.User{UserID: userID, PasswordHash: hashForTest(t, "old-password")}, nil
		},
		updatePasswordHashFn: func(_ context.Context, userID int64, passwordHash string) error {
			assert.Equal(t, int64(7), userID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("new-password")))
			hashUpdated = true
			return nil
		},
	}
	svc := newTestAuthService(repo)

	err := svc.ChangePassword(context.Background(), 7, models.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})

	require.NoError(t, err)
	assert.True(t, hashUpdated)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, PasswordHash: hashForTest(t, "old-password")}, nil
		},
	}
	svc := newTestAuthService(repo)

	err := svc.ChangePassword(context.Background(), 7, models.ChangePasswordRequest{
		CurrentPassword: "not-the-old-password",
		NewPassword:     "new-password",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_ChangePassword_ShortNewPassword(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	err := svc.ChangePassword(context.Background(), 7, models.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "abc",
	})

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_InvalidToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	other := newTestAuthService(&mockUserRepository{})
	other.tokenIssuer = "someone-else"

	token, err := other.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
