// Package api implements the driven ports against the external directory
// API. One Client covers every resource; all calls return the API's
// uniform envelope and fold transport failures into failure envelopes so
// no caller needs error handling beyond branching on Success.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gregjones/httpcache"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
	"github.com/rafaeltov/acessopainel/internal/domain/port/driven"
)

// Compile-time port satisfaction checks.
var (
	_ driven.AuthAPI        = (*Client)(nil)
	_ driven.LojaAPI        = (*Client)(nil)
	_ driven.SistemaAPI     = (*Client)(nil)
	_ driven.FuncionarioAPI = (*Client)(nil)
	_ driven.AcessoAPI      = (*Client)(nil)
)

// errComunicacao is the generic message surfaced for transport failures
// and unparseable responses. Business rejections keep the API's own text.
const errComunicacao = "Falha de comunicação com a API"

// Client talks to the directory API. Its transport stack:
//  1. cookie jar (carries the session cookie set by /auth/login)
//  2. httpcache (conditional-request caching of GET responses)
//  3. per-request timeout so a hung API call cannot hang a view forever
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

// NewClient creates a Client for the given base URL. timeout bounds every
// outbound call; zero means no limit.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing API base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API base URL %q must be absolute", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		http: &http.Client{
			Jar:       jar,
			Transport: httpcache.NewMemoryCacheTransport(),
			Timeout:   timeout,
		},
		baseURL: u,
	}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and
// base URL. This constructor is intended for testing, allowing injection
// of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing API base URL: %w", err)
	}

	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return &Client{http: httpClient, baseURL: u}, nil
}

// endpoint joins path and query onto the base URL.
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// request issues one HTTP call and decodes the envelope. Every failure
// mode (encode, transport, unparseable body) comes back as a failure
// envelope with the generic message; a well-formed failure envelope from
// the API passes through untouched so its message reaches the view.
func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) model.Envelope[T] {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			slog.Error("api request body encode failed", "method", method, "path", path, "error", err)
			return model.Fail[T](errComunicacao)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		slog.Error("api request build failed", "method", method, "path", path, "error", err)
		return model.Fail[T](errComunicacao)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("api request failed", "method", method, "path", path, "error", err)
		return model.Fail[T](errComunicacao)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("api response read failed", "method", method, "path", path, "error", err)
		return model.Fail[T](errComunicacao)
	}

	slog.Debug("api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	var env model.Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		slog.Warn("api response unparseable", "method", method, "path", path, "status", resp.StatusCode, "error", err)
		return model.Fail[T](errComunicacao)
	}

	// A failure envelope with no text at all still needs something the
	// view can show.
	if !env.Success && env.Error == "" && env.Message == "" {
		env.Error = errComunicacao
	}

	return env
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) model.Envelope[T] {
	return request[T](ctx, c, http.MethodGet, path, query, nil)
}

func post[T any](ctx context.Context, c *Client, path string, body any) model.Envelope[T] {
	return request[T](ctx, c, http.MethodPost, path, nil, body)
}

func put[T any](ctx context.Context, c *Client, path string, query url.Values, body any) model.Envelope[T] {
	return request[T](ctx, c, http.MethodPut, path, query, body)
}

func del[T any](ctx context.Context, c *Client, path string, query url.Values) model.Envelope[T] {
	return request[T](ctx, c, http.MethodDelete, path, query, nil)
}

// idQuery builds the `?id=` query used by the single-row verbs.
func idQuery(id int64) url.Values {
	return url.Values{"id": []string{strconv.FormatInt(id, 10)}}
}
