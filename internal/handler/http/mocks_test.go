package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/eterna-app/eterna/internal/config"
	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/service"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

var errService = errors.New("service error")

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, req)
	}
	return nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	getProfileFn           func(ctx context.Context, userID int64) (models.User, models.Profile, models.CapsuleStats, error)
	updateProfileFn        func(ctx context.Context, userID int64, req models.UpdateProfileRequest) error
	uploadProfilePictureFn func(ctx context.Context, userID int64, file service.FileUpload) (string, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID int64) (models.User, models.Profile, models.CapsuleStats, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return models.User{}, models.Profile{}, models.CapsuleStats{}, nil
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, req)
	}
	return nil
}

func (m *mockProfileService) UploadProfilePicture(ctx context.Context, userID int64, file service.FileUpload) (string, error) {
	if m.uploadProfilePictureFn != nil {
		return m.uploadProfilePictureFn(ctx, userID, file)
	}
	return "", nil
}

// ─────────────────────────────────────────────
// Mock: service.CapsuleService
// ─────────────────────────────────────────────

type mockCapsuleService struct {
	createCapsuleFn func(ctx context.Context, req models.CreateCapsuleRequest) (int64, error)
	listCapsulesFn  func(ctx context.Context, userID int64) ([]models.Capsule, error)
	getCapsuleFn    func(ctx context.Context, capsuleID int64) (models.Capsule, bool, error)
	updateCapsuleFn func(ctx context.Context, capsuleID, userID int64, req models.UpdateCapsuleRequest) error
	deleteCapsuleFn func(ctx context.Context, capsuleID, userID int64) error
	shareCapsuleFn  func(ctx context.Context, capsuleID, ownerID int64, req models.ShareCapsuleRequest) (models.Share, error)
}

func (m *mockCapsuleService) CreateCapsule(ctx context.Context, req models.CreateCapsuleRequest) (int64, error) {
	if m.createCapsuleFn != nil {
		return m.createCapsuleFn(ctx, req)
	}
	return 1, nil
}

func (m *mockCapsuleService) ListCapsules(ctx context.Context, userID int64) ([]models.Capsule, error) {
	if m.listCapsulesFn != nil {
		return m.listCapsulesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCapsuleService) GetCapsule(ctx context.Context, capsuleID int64) (models.Capsule, bool, error) {
	if m.getCapsuleFn != nil {
		return m.getCapsuleFn(ctx, capsuleID)
	}
	return models.Capsule{}, false, nil
}

func (m *mockCapsuleService) UpdateCapsule(ctx context.Context, capsuleID, userID int64, req models.UpdateCapsuleRequest) error {
	if m.updateCapsuleFn != nil {
		return m.updateCapsuleFn(ctx, capsuleID, userID, req)
	}
	return nil
}

func (m *mockCapsuleService) DeleteCapsule(ctx context.Context, capsuleID, userID int64) error {
	if m.deleteCapsuleFn != nil {
		return m.deleteCapsuleFn(ctx, capsuleID, userID)
	}
	return nil
}

func (m *mockCapsuleService) ShareCapsule(ctx context.Context, capsuleID, ownerID int64, req models.ShareCapsuleRequest) (models.Share, error) {
	if m.shareCapsuleFn != nil {
		return m.shareCapsuleFn(ctx, capsuleID, ownerID, req)
	}
	return models.Share{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.MediaService
// ─────────────────────────────────────────────

type mockMediaService struct {
	uploadMediaFn func(ctx context.Context, capsuleID int64, files []service.FileUpload) (models.UploadResult, error)
	deleteMediaFn func(ctx context.Context, req models.DeleteMediaRequest) (models.DeleteResult, error)
}

func (m *mockMediaService) UploadMedia(ctx context.Context, capsuleID int64, files []service.FileUpload) (models.UploadResult, error) {
	if m.uploadMediaFn != nil {
		return m.uploadMediaFn(ctx, capsuleID, files)
	}
	return models.UploadResult{}, nil
}

func (m *mockMediaService) DeleteMedia(ctx context.Context, req models.DeleteMediaRequest) (models.DeleteResult, error) {
	if m.deleteMediaFn != nil {
		return m.deleteMediaFn(ctx, req)
	}
	return models.DeleteResult{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler backed by the given service mocks. Nil
// mocks get default implementations so only the services under test need to
// be supplied.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.ProfileService == nil {
		svcs.ProfileService = &mockProfileService{}
	}
	if svcs.CapsuleService == nil {
		svcs.CapsuleService = &mockCapsuleService{}
	}
	if svcs.MediaService == nil {
		svcs.MediaService = &mockMediaService{}
	}

	return NewHandler(svcs, config.Files{UploadDir: t.TempDir()}, logger.Nop())
}

// withUserID simulates the auth middleware by storing userID in the request
// context.
func withUserID(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

// withCapsuleID injects a chi route context carrying the capsuleID URL param,
// as the router would when dispatching /api/capsules/{capsuleID}.
func withCapsuleID(r *http.Request, capsuleID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("capsuleID", capsuleID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeInto unmarshals the recorded response body into out.
func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
