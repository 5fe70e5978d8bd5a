package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

// HTTPClientConfig configures the HTTP/REST implementation of
// [ServerAdapter].
type HTTPClientConfig struct {
	// BaseURL is the server address, with or without a scheme
	// (e.g. "localhost:8080" or "https://eterna.example.com").
	BaseURL string

	// Timeout bounds every request. Zero means the 15 second default.
	Timeout time.Duration
}

const defaultClientTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authorized returns a request carrying the stored bearer token.
func (h *httpServerAdapter) authorized(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register and stores the bearer token from the response
// envelope via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(result.Token)

	if result.User == nil {
		return models.User{}, fmt.Errorf("register response carries no user")
	}
	return *result.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the bearer token from the response
// envelope via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(result.Token)

	if result.User == nil {
		return models.User{}, fmt.Errorf("login response carries no user")
	}
	return *result.User, nil
}

// ChangePassword implements [ServerAdapter].
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	return mapHTTPError(resp)
}

// GetProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.ProfileResponse, error) {
	var result models.ProfileResponse

	resp, err := h.authorized(ctx).
		SetResult(&result).
		Get("/api/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return result, nil
}

// UpdateProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/profile")
	if err != nil {
		return fmt.Errorf("update profile request: %w", err)
	}
	return mapHTTPError(resp)
}

// CreateCapsule implements [ServerAdapter].
func (h *httpServerAdapter) CreateCapsule(ctx context.Context, req models.CreateCapsuleRequest) (int64, error) {
	var result models.CreateCapsuleResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/capsules")
	if err != nil {
		return 0, fmt.Errorf("create capsule request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.CapsuleID, nil
}

// ListCapsules implements [ServerAdapter].
func (h *httpServerAdapter) ListCapsules(ctx context.Context, userID int64) ([]models.Capsule, error) {
	var result models.ListCapsulesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("user_id", fmt.Sprintf("%d", userID)).
		SetResult(&result).
		Get("/api/capsules")
	if err != nil {
		return nil, fmt.Errorf("list capsules request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Capsules, nil
}

// GetCapsule implements [ServerAdapter].
func (h *httpServerAdapter) GetCapsule(ctx context.Context, capsuleID int64) (models.CapsuleDetailResponse, error) {
	var result models.CapsuleDetailResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/api/capsules/%d", capsuleID))
	if err != nil {
		return models.CapsuleDetailResponse{}, fmt.Errorf("get capsule request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CapsuleDetailResponse{}, err
	}

	return result, nil
}

// UpdateCapsule implements [ServerAdapter].
func (h *httpServerAdapter) UpdateCapsule(ctx context.Context, capsuleID int64, req models.UpdateCapsuleRequest) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/api/capsules/%d", capsuleID))
	if err != nil {
		return fmt.Errorf("update capsule request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteCapsule implements [ServerAdapter].
func (h *httpServerAdapter) DeleteCapsule(ctx context.Context, capsuleID int64) error {
	resp, err := h.authorized(ctx).
		Post(fmt.Sprintf("/api/capsules/%d/delete", capsuleID))
	if err != nil {
		return fmt.Errorf("delete capsule request: %w", err)
	}
	return mapHTTPError(resp)
}

// ShareCapsule implements [ServerAdapter].
func (h *httpServerAdapter) ShareCapsule(ctx context.Context, capsuleID int64, req models.ShareCapsuleRequest) error {
	resp, err := h.authorized(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/api/capsules/%d/share", capsuleID))
	if err != nil {
		return fmt.Errorf("share capsule request: %w", err)
	}
	return mapHTTPError(resp)
}

// UploadMedia implements [ServerAdapter]. All files travel in one multipart
// request under the "media" field name.
func (h *httpServerAdapter) UploadMedia(ctx context.Context, capsuleID int64, files []MediaFile) (models.UploadMediaResponse, error) {
	var result models.UploadMediaResponse

	req := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"capsule_id": fmt.Sprintf("%d", capsuleID)}).
		SetResult(&result)

	for _, f := range files {
		req.SetMultipartField("media", f.FileName, f.MimeType, bytes.NewReader(f.Data))
	}

	resp, err := req.Post("/api/media")
	if err != nil {
		return models.UploadMediaResponse{}, fmt.Errorf("upload media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadMediaResponse{}, err
	}

	return result, nil
}

// DeleteMedia implements [ServerAdapter].
func (h *httpServerAdapter) DeleteMedia(ctx context.Context, req models.DeleteMediaRequest) (models.DeleteMediaResponse, error) {
	var result models.DeleteMediaResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/media/delete")
	if err != nil {
		return models.DeleteMediaResponse{}, fmt.Errorf("delete media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteMediaResponse{}, err
	}

	return result, nil
}
