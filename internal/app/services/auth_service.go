package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
	"github.com/okul/schoolhub/internal/pkg/apperrors"
	"github.com/okul/schoolhub/internal/pkg/auth"
	"github.com/okul/schoolhub/internal/pkg/validation"
)

// AuthService handles authentication endpoints under /auth/*. Login and
// Register persist the returned credential pair and user into the token
// store; Logout clears them unconditionally.
type AuthService struct {
	client *client.Client
}

// NewAuthService creates a new AuthService
func NewAuthService(c *client.Client) *AuthService {
	return &AuthService{client: c}
}

// Login exchanges credentials for a token pair and the authenticated user.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var out dto.AuthResponse
	if err := s.client.Post(ctx, "/auth/login/", req, &out); err != nil {
		if client.IsStatus(err, http.StatusUnauthorized) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidCredentials, err)
		}
		return nil, err
	}
	if err := s.persistSession(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and signs it in, mirroring the backend's
// auto-login-after-signup behavior.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var out dto.AuthResponse
	if err := s.client.Post(ctx, "/auth/register/", req, &out); err != nil {
		return nil, err
	}
	if err := s.persistSession(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AuthService) persistSession(resp *dto.AuthResponse) error {
	pair := auth.TokenPair{Access: resp.Access, Refresh: resp.Refresh}
	if err := s.client.Store().Save(pair); err != nil {
		return fmt.Errorf("persist tokens: %w", err)
	}
	raw, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.client.Store().SaveUser(raw)
}

// Logout notifies the server best-effort and always clears local state. The
// returned error reports the server call outcome only; local teardown has
// already happened by the time it returns.
func (s *AuthService) Logout(ctx context.Context) error {
	pair, readErr := s.client.Store().Read()

	var serverErr error
	if readErr == nil && pair.Refresh != "" {
		serverErr = s.client.Post(ctx, "/auth/logout/", dto.LogoutRequest{Refresh: pair.Refresh}, nil)
	}

	if err := s.client.Store().Clear(); err != nil {
		return fmt.Errorf("clear token store: %w", err)
	}
	return serverErr
}

// Refresh explicitly exchanges the stored refresh token for a new access
// token. The transport does this automatically on 401; this is for callers
// that want to refresh ahead of a known expiry.
func (s *AuthService) Refresh(ctx context.Context) (string, error) {
	pair, err := s.client.Store().Read()
	if err != nil {
		return "", err
	}
	if pair.Refresh == "" {
		return "", apperrors.ErrNoRefreshToken
	}

	var out dto.RefreshResponse
	if err := s.client.Post(ctx, "/auth/refresh/", dto.RefreshRequest{Refresh: pair.Refresh}, &out); err != nil {
		return "", err
	}
	if err := s.client.Store().SaveAccess(out.Access); err != nil {
		return "", err
	}
	return out.Access, nil
}

// VerifyToken asks the backend whether the stored access token is still
// accepted.
func (s *AuthService) VerifyToken(ctx context.Context) bool {
	return s.client.Get(ctx, "/auth/verify-token/", nil, nil) == nil
}

// Profile fetches the current user.
func (s *AuthService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/auth/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the current user's profile and returns the merged
// record. The backend exposes the update as a PUT on a dedicated path; the
// profile path itself is read-only.
func (s *AuthService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.client.Put(ctx, "/auth/profile/update/", req, &user); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(user)
	if err == nil {
		_ = s.client.Store().SaveUser(raw)
	}
	return &user, nil
}

// ChangePassword updates the caller's password.
func (s *AuthService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	return s.client.Post(ctx, "/auth/change-password/", req, nil)
}

// CheckStoredSession validates the persisted credential pair locally,
// without a network round trip: a missing, malformed, or expired-and-
// unrefreshable access token fails here so the session layer can go
// anonymous immediately.
func (s *AuthService) CheckStoredSession() error {
	pair, err := s.client.Store().Read()
	if err != nil {
		return err
	}
	return auth.CheckStored(pair)
}

// StoredUser returns the cached user from the token store, if any.
// Used for fast session bootstrap before the profile fetch completes.
func (s *AuthService) StoredUser() (*models.User, error) {
	raw, err := s.client.Store().User()
	if err != nil || len(raw) == 0 {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
