package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eterna-app/eterna/internal/config"
	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/store"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now supplies the wall clock; replaced in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It requires all four fields, a well-formed email address and a password of
// at least six characters. The password is hashed with bcrypt before
// persistence.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - ErrInvalidEmail if the email address does not parse.
//   - ErrPasswordTooShort if the password is shorter than six characters.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.TrimSpace(req.Email)
	if firstName == "" || lastName == "" || email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("incomplete registration data")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := mail.ParseAddress(email); err != nil {
		log.Error().Str("email", email).Msg("malformed email address")
		return models.User{}, ErrInvalidEmail
	}

	if len(req.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the active account by email and compares the stored bcrypt hash
// with the supplied password. Both a missing account and a wrong password
// produce the same ErrWrongPassword so that login responses do not reveal
// which part failed. On success the account's last-login timestamp is
// refreshed.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongPassword if the account is unknown, inactive, or the password
//     does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("email", email).Msg("incomplete login data")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindActiveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	loginTime := a.now()
	if err := a.userRepository.UpdateLastLogin(ctx, foundUser.UserID, loginTime); err != nil {
		// The user is already authenticated; a failed timestamp refresh
		// should not block the login.
		log.Err(err).Int64("id", foundUser.UserID).Msg("error updating last login")
	} else {
		foundUser.LastLogin = &loginTime
	}

	return foundUser, nil
}

// ChangePassword replaces the account's password hash after verifying the
// current password.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrPasswordTooShort if the new password is shorter than six characters.
//   - ErrWrongPassword if the current password does not verify.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.CurrentPassword == "" || req.NewPassword == "" {
		return ErrInvalidDataProvided
	}

	if len(req.NewPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		log.Info().Int64("id", userID).Msg("current password does not match")
		return ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("error hashing new password")
		return fmt.Errorf("error hashing new password: %w", err)
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, userID, string(newHash)); err != nil {
		log.Err(err).Int64("id", userID).Msg("error updating password hash")
		return fmt.Errorf("error updating password hash: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
