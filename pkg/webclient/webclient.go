package webclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mediawatch-srv/pkg/log"
)

const (
	// maxBodySize bounds how much of an untrusted response body is read.
	maxBodySize = 1 << 20 // 1 MiB

	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "MediaWatchBot/1.0 (+https://mediawatch.example.com/bot)"
)

//go:generate mockery --name IWebClient
type IWebClient interface {
	GetText(ctx context.Context, url string) (string, error)
	GetJSON(ctx context.Context, url string, out any) error
}

// Config is the constructor input for the web client.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

type client struct {
	httpClient *http.Client
	userAgent  string
	l          log.Logger
}

// New creates an identified, timeout-bounded HTTP read client.
// All probe traffic to external hosts goes through this client so the
// service is identifiable and never hangs on a slow endpoint.
func New(l log.Logger, cfg Config) IWebClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		l:          l,
	}
}

func (c *client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.l.Debugf(ctx, "pkg.webclient.get: %s failed after %v: %v", url, time.Since(start), err)
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return resp, nil
}

func (c *client) GetText(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *client) GetJSON(ctx context.Context, url string, out any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out)
}
