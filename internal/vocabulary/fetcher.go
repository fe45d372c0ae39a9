package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// ResponseError is returned when a word list server answers with a non-2xx status.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// Fetcher downloads JSON word lists over HTTP.
type Fetcher struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewFetcher creates a Fetcher. Failed downloads are retried up to retryAttempts times.
func NewFetcher(timeout time.Duration, retryAttempts uint) *Fetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &Fetcher{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (f *Fetcher) Close() error {
	return f.httpClient.Close()
}

// isRetryableError reports whether a failed download may succeed on a later attempt.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode >= http.StatusInternalServerError ||
			respErr.StatusCode == http.StatusTooManyRequests
	}
	// decoding and validation errors do not change between attempts
	return strings.Contains(err.Error(), "httpClient.Get")
}

// Fetch downloads and imports the word list at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Word, error) {
	var words []Word
	attempt := 0
	if err := retry.Do(
		func() error {
			attempt++
			result, err := f.fetch(ctx, url)
			if err != nil {
				slog.Default().Debug("fetch word list failed",
					slog.String("url", url),
					slog.Int("attempt", attempt),
					slog.Any("error", err))
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			words = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return words, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]Word, error) {
	response, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, &ResponseError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return ImportJSON(strings.NewReader(response.String()))
}
