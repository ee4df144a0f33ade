package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cardstore/client/internal/config"
	"cardstore/client/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// TokenSource supplies the current bearer token. An empty string means no
// Authorization header is sent at all.
type TokenSource func() string

// Gateway is the shared HTTP client every typed endpoint surface goes
// through. It validates the response envelope, injects bearer auth,
// intercepts 401s and maps transport failures to the error taxonomy.
// Calls are never retried at this layer.
type Gateway struct {
	http           *resty.Client
	rl             ratelimit.Limiter
	tokens         TokenSource
	onUnauthorized func()
}

func New(cfg config.APIConfig) *Gateway {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &Gateway{
		http:   client,
		rl:     rl,
		tokens: func() string { return "" },
	}
}

// SetTokenSource wires the session that owns the auth token.
func (g *Gateway) SetTokenSource(tokens TokenSource) {
	if tokens != nil {
		g.tokens = tokens
	}
}

// SetOnUnauthorized registers the mandatory 401 side effect (forced logout
// plus navigation to login). It runs before the AuthError reaches the caller.
func (g *Gateway) SetOnUnauthorized(hook func()) {
	g.onUnauthorized = hook
}

func (g *Gateway) do(ctx context.Context, method, path string, body any, query url.Values) ([]byte, error) {
	g.rl.Take()

	req := g.http.R().SetContext(ctx)
	if token := g.tokens(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		log.Debugf("request %s %s failed: %v", method, path, err)
		return nil, &NetworkError{Err: err}
	}

	return g.handle(resp)
}

func (g *Gateway) upload(ctx context.Context, path, subdir, filename string, file io.Reader) ([]byte, error) {
	g.rl.Take()

	req := g.http.R().
		SetContext(ctx).
		SetQueryParam("subdir", subdir).
		SetFileReader("file", filename, file)
	if token := g.tokens(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Post(path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, &NetworkError{Err: err}
	}

	return g.handle(resp)
}

func (g *Gateway) handle(resp *resty.Response) ([]byte, error) {
	if resp.StatusCode() == http.StatusUnauthorized {
		log.Warnf("unauthorized response from %s, forcing logout", resp.Request.URL)
		if g.onUnauthorized != nil {
			g.onUnauthorized()
		}
		return nil, &AuthError{Message: messageOrDefault(resp.Bytes(), http.StatusUnauthorized)}
	}

	if resp.IsError() {
		return nil, &HTTPError{
			Status:  resp.StatusCode(),
			Message: messageOrDefault(resp.Bytes(), resp.StatusCode()),
		}
	}

	return resp.Bytes(), nil
}

// messageOrDefault prefers the envelope message from an error body over the
// fixed status-code table.
func messageOrDefault(body []byte, status int) string {
	var env domain.Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return statusMessage(status)
}

func decode[T any](body []byte) (T, error) {
	var env domain.Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if env.Code != http.StatusOK {
		message := env.Message
		if message == "" {
			message = "request failed"
		}
		var zero T
		return zero, &BusinessError{Code: env.Code, Message: message}
	}
	return env.Data, nil
}

// Get issues a GET request and unwraps the envelope data.
func Get[T any](ctx context.Context, g *Gateway, path string, query url.Values) (T, error) {
	body, err := g.do(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](body)
}

// Post issues a POST request with a JSON body and unwraps the envelope data.
func Post[T any](ctx context.Context, g *Gateway, path string, body any) (T, error) {
	raw, err := g.do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw)
}

// Put issues a PUT request with a JSON body and unwraps the envelope data.
func Put[T any](ctx context.Context, g *Gateway, path string, body any) (T, error) {
	raw, err := g.do(ctx, http.MethodPut, path, body, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw)
}

// Delete issues a DELETE request and unwraps the envelope data.
func Delete[T any](ctx context.Context, g *Gateway, path string) (T, error) {
	raw, err := g.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw)
}

// Upload submits a single file as multipart form data with a subdirectory
// query parameter.
func Upload[T any](ctx context.Context, g *Gateway, path, subdir, filename string, file io.Reader) (T, error) {
	raw, err := g.upload(ctx, path, subdir, filename, file)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](raw)
}
