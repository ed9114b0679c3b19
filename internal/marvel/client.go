// Package marvel implements the authenticated Marvel API client and the
// paginated record fetcher built on top of it.
package marvel

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/acervantes/marvelsync/internal/config"
)

// RequestError reports an API call that came back with a failure status,
// either at the HTTP level or inside the response envelope.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsAuthFailure reports whether the error was caused by a rejected key pair.
func (e *RequestError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized
}

type Client struct {
	httpClient       *resty.Client
	publicKey        string
	privateKey       string
	maxRetryAttempts uint
	requestInterval  time.Duration

	// now is replaced in tests to pin the signature timestamp
	now func() time.Time
}

func NewClient(cfg config.MarvelConfig) *Client {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	if cfg.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}

	return &Client{
		httpClient:       client,
		publicKey:        cfg.PublicKey,
		privateKey:       cfg.PrivateKey,
		maxRetryAttempts: cfg.RetryAttempts,
		requestInterval:  time.Duration(cfg.RequestInterval) * time.Second,
		now:              time.Now,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// authParams builds the ts/apikey/hash query parameters the API requires.
// The hash is the hex md5 digest of ts + privateKey + publicKey.
func (client *Client) authParams() map[string]string {
	ts := strconv.FormatInt(client.now().Unix(), 10)
	digest := md5.Sum([]byte(ts + client.privateKey + client.publicKey))

	return map[string]string{
		"ts":     ts,
		"apikey": client.publicKey,
		"hash":   hex.EncodeToString(digest[:]),
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		// Retry on rate limiting and server errors, never on auth or other 4xx
		return requestErr.StatusCode == http.StatusTooManyRequests ||
			requestErr.StatusCode >= http.StatusInternalServerError
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	return false
}

// Get issues an authenticated GET against path and decodes the response
// envelope, retrying transient failures with backoff.
func (client *Client) Get(ctx context.Context, path string, params map[string]string) (*Envelope, error) {
	var result *Envelope
	if err := retry.Do(
		func() error {
			envelope, err := client.get(ctx, path, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = envelope
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(retry.BackOffDelay),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func (client *Client) get(ctx context.Context, path string, params map[string]string) (*Envelope, error) {
	if client.requestInterval > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(client.requestInterval):
		}
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(client.authParams()).
		SetQueryParams(params).
		SetResult(&Envelope{}).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &RequestError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	envelope := response.Result().(*Envelope)
	if envelope.Code != http.StatusOK {
		return nil, &RequestError{StatusCode: envelope.Code, Body: envelope.Status}
	}

	slog.Default().Debug("marvel API response",
		"path", path,
		"offset", envelope.Data.Offset,
		"count", envelope.Data.Count,
		"total", envelope.Data.Total,
	)
	return envelope, nil
}
