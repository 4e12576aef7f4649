package rosterd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/pennantrace/sandlot/internal/domain/user"
	"github.com/pennantrace/sandlot/internal/platform/resilience"
	"github.com/pennantrace/sandlot/internal/usecase"
)

type Config struct {
	BaseURL             string
	IntrospectURL       string
	Timeout             time.Duration
	CircuitFailureCount int
	CircuitOpenTimeout  time.Duration
}

// Client verifies access tokens against the rosterd account service.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	logger        *slog.Logger
	breaker       *resilience.CircuitBreaker
}

func NewClient(httpClient *http.Client, cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 3 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	failureCount := cfg.CircuitFailureCount
	if failureCount <= 0 {
		failureCount = 5
	}
	openTimeout := cfg.CircuitOpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectURL),
		logger:        logger,
		breaker:       resilience.NewCircuitBreaker(failureCount, openTimeout),
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "rosterd circuit breaker rejected request")
		return user.Principal{}, fmt.Errorf("%w: rosterd is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	principal, err := c.introspect(ctx, token)
	if err != nil {
		if isUpstreamFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return user.Principal{}, err
	}

	c.breaker.RecordSuccess()
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: request introspection to rosterd: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("read introspect response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "rosterd introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: rosterd introspection failed with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Role:   parseRole(decoded.Role),
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func parseRole(raw string) user.Role {
	if user.Role(strings.TrimSpace(raw)) == user.RoleAdmin {
		return user.RoleAdmin
	}
	return user.RoleUser
}

// Only transport-level and 5xx failures count toward the breaker: a denied
// or inactive token is a healthy upstream answering.
func isUpstreamFailure(err error) bool {
	return errors.Is(err, usecase.ErrDependencyUnavailable)
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
