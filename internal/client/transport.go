package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/pkg/auth"
	"github.com/okul/schoolhub/internal/pkg/tokenstore"
)

// refreshPath is the dedicated token-refresh endpoint. The refresh call
// itself is sent outside the auth transport so a failing refresh can never
// recurse into another refresh.
const refreshPath = "/auth/refresh/"

// authTransport decorates a RoundTripper with the session cross-cutting
// behavior: attach the stored bearer token to every outgoing request, and on
// a 401 perform at most one refresh-and-replay before tearing the session
// down. A replayed request that 401s again is returned as-is, bounding the
// loop to one refresh per original request.
//
// Concurrent requests that each hit a 401 each run their own refresh; the
// store never holds a torn pair because refreshMu serializes the
// read-refresh-write sequence, and the backend treats refresh as idempotent.
type authTransport struct {
	base        http.RoundTripper
	store       tokenstore.Store
	refreshURL  string
	refreshHTTP *http.Client
	onExpired   func()
	log         zerolog.Logger

	refreshMu sync.Mutex
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	pair, err := t.store.Read()
	if err != nil {
		return nil, fmt.Errorf("auth transport: read token store: %w", err)
	}

	outgoing := req.Clone(req.Context())
	if pair.Access != "" {
		outgoing.Header.Set("Authorization", auth.BearerValue(pair.Access))
	}

	resp, err := t.base.RoundTrip(outgoing)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// 401 on the original request. Without a refresh token the session is
	// unrecoverable: clear and surface the 401 to the caller untouched.
	if pair.Refresh == "" {
		t.expire("no refresh token stored")
		return resp, nil
	}

	// Requests with an unreplayable body cannot be retried safely.
	if req.Body != nil && req.GetBody == nil {
		t.expire("401 on request with unreplayable body")
		return resp, nil
	}

	newAccess, refreshErr := t.refresh(req.Context(), pair.Refresh)
	if refreshErr != nil {
		t.log.Warn().Err(refreshErr).Msg("token refresh failed")
		t.expire("refresh call failed")
		return resp, nil
	}

	drain(resp)

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("auth transport: rewind request body: %w", err)
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", auth.BearerValue(newAccess))

	t.log.Debug().Str("path", req.URL.Path).Msg("replaying request after token refresh")
	resp2, err := t.base.RoundTrip(retry)
	if err != nil {
		return nil, err
	}
	if resp2.StatusCode == http.StatusUnauthorized {
		// The refreshed token was rejected too. One attempt only.
		t.expire("replayed request rejected")
	}
	return resp2, nil
}

// refresh exchanges the refresh token for a new access token and persists
// it, keeping the stored refresh token intact.
func (t *authTransport) refresh(ctx context.Context, refreshToken string) (string, error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	body, err := json.Marshal(dto.RefreshRequest{Refresh: refreshToken})
	if err != nil {
		return "", fmt.Errorf("encode refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.refreshURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.refreshHTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh call: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read refresh response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeAPIError(resp.StatusCode, data)
	}

	var out dto.RefreshResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if out.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	if err := t.store.SaveAccess(out.Access); err != nil {
		return "", fmt.Errorf("persist refreshed token: %w", err)
	}

	t.log.Info().Msg("access token refreshed")
	return out.Access, nil
}

// expire tears the session down: clear the store and notify the application
// so it can route the user back to the login entry point.
func (t *authTransport) expire(reason string) {
	t.log.Info().Str("reason", reason).Msg("session expired, clearing tokens")
	if err := t.store.Clear(); err != nil {
		t.log.Error().Err(err).Msg("failed to clear token store")
	}
	if t.onExpired != nil {
		t.onExpired()
	}
}

func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
}
