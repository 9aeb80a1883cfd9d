package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public photo service.
	DefaultBaseURL = "https://picsum.photos"
	// DefaultUserAgent is sent with every request; the CDN serves clients
	// without one less reliably.
	DefaultUserAgent = "TestPaperEditor/1.0 (+https://picsum.photos/)"
	// DefaultDelay is the pause between two downloads.
	DefaultDelay = 150 * time.Millisecond
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second
	// MaxRetries is the number of retries after a transient failure.
	MaxRetries = 3
)

// StatusError is returned for a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Downloader fetches seeded photos over HTTP.
type Downloader struct {
	Client    *http.Client
	BaseURL   string
	UserAgent string
	// Delay is slept after every downloaded file. Zero disables it.
	Delay      time.Duration
	MaxRetries int
	// Backoff returns the wait before retry attempt n (0-indexed).
	Backoff func(attempt int) time.Duration
	Logger  *zap.Logger
}

// NewDownloader creates a Downloader with the default service settings.
func NewDownloader(logger *zap.Logger) *Downloader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Downloader{
		Client:     &http.Client{Timeout: DefaultTimeout},
		BaseURL:    DefaultBaseURL,
		UserAgent:  DefaultUserAgent,
		Delay:      DefaultDelay,
		MaxRetries: MaxRetries,
		Backoff:    Backoff,
		Logger:     logger,
	}
}

// URL returns the service URL for an item. Every file gets its own seed
// derived from the run seed, so re-running with the same seed fetches the
// same photos.
func (d *Downloader) URL(seed int64, it Item) string {
	fileSeed := fmt.Sprintf("%d-%s-%d", seed, it.Category, it.Index)

	return fmt.Sprintf("%s/seed/%s/%d/%d", d.BaseURL, url.PathEscape(fileSeed), it.Width, it.Height)
}

// Download fetches every planned photo into outDir and returns the
// written paths in plan order. It stops at the first failure.
func (d *Downloader) Download(ctx context.Context, outDir string, seed int64, plan Plan) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	var written []string

	for _, it := range plan.Items() {
		dest := filepath.Join(outDir, it.FileName())
		src := d.URL(seed, it)

		if err := d.fetchWithRetry(ctx, src, dest); err != nil {
			return written, err
		}

		written = append(written, dest)
		d.Logger.Debug("photo downloaded", zap.String("url", src), zap.String("dest", dest))

		if err := sleep(ctx, d.Delay); err != nil {
			return written, err
		}
	}

	return written, nil
}

func (d *Downloader) fetchWithRetry(ctx context.Context, src, dest string) error {
	var err error

	for attempt := 0; ; attempt++ {
		err = d.fetch(ctx, src, dest)
		if err == nil || !IsRetryable(err) || attempt >= d.MaxRetries {
			return err
		}

		wait := d.backoff(attempt)
		d.Logger.Warn("download failed, retrying",
			zap.String("url", src),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err),
		)

		if serr := sleep(ctx, wait); serr != nil {
			return serr
		}
	}
}

func (d *Downloader) fetch(ctx context.Context, src, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", src, err)
	}

	req.Header.Set("User-Agent", d.UserAgent)

	resp, err := d.client().Do(req)
	if err != nil {
		return &transientError{err: fmt.Errorf("GET %s: %w", src, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: src, Code: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transientError{err: fmt.Errorf("failed to read %s: %w", src, err)}
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	return nil
}

func (d *Downloader) client() *http.Client {
	if d.Client != nil {
		return d.Client
	}

	return http.DefaultClient
}

func (d *Downloader) backoff(attempt int) time.Duration {
	if d.Backoff != nil {
		return d.Backoff(attempt)
	}

	return Backoff(attempt)
}

type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }

// IsRetryable checks if an error is worth retrying: network failures,
// server errors and rate limiting. Cancellation never is.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500 || statusErr.Code == http.StatusTooManyRequests
	}

	var tErr *transientError

	return errors.As(err, &tErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}

	jitter := time.Duration(rand.Int64N(int64(base) / 2))

	return base + jitter
}

// ParseSeed parses a seed flag value; empty means the current Unix time,
// so unseeded runs differ from each other.
func ParseSeed(s string, now func() time.Time) (int64, error) {
	if s == "" {
		return now().Unix(), nil
	}

	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}

	return seed, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
