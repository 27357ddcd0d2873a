package collect

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dreamerjackson/moonbag/limiter"
	"github.com/dreamerjackson/moonbag/proxy"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error status code:%d url:%s", e.Code, e.URL)
}

// Temporary reports whether retrying may help.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

type BaseFetch struct{}

func (BaseFetch) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get url failed:%w", err)
	}

	return do(http.DefaultClient, req)
}

// BrowserFetch looks like a browser to the site: random User-Agent, an
// optional cookie, a rate limit shared by every request, and a retry on
// transient failures.
type BrowserFetch struct {
	Timeout   time.Duration
	Proxy     proxy.Func
	Cookie    string
	Limit     limiter.RateLimiter
	Retries   int
	RetryWait time.Duration
	Logger    *zap.Logger
}

func (b BrowserFetch) Get(ctx context.Context, url string) ([]byte, error) {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	client := &http.Client{
		Timeout: b.Timeout,
	}
	if b.Proxy != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = b.Proxy
		client.Transport = transport
	}

	var body []byte
	op := func() error {
		if b.Limit != nil {
			if err := b.Limit.Wait(ctx); err != nil {
				return backoff.Permanent(err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("get url failed:%w", err))
		}
		if len(b.Cookie) > 0 {
			req.Header.Set("Cookie", b.Cookie)
		}
		req.Header.Set("User-Agent", RandomUA())

		body, err = do(client, req)
		if se, ok := err.(*StatusError); ok && !se.Temporary() {
			return backoff.Permanent(err)
		}

		return err
	}

	wait := b.RetryWait
	if wait <= 0 {
		wait = 3 * time.Second
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(wait), uint64(b.Retries)), ctx)

	err := backoff.RetryNotify(op, policy, func(err error, d time.Duration) {
		logger.Warn("fetch failed, retry",
			zap.String("url", url),
			zap.Duration("after", d),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

func do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: req.URL.String(), Code: resp.StatusCode}
	}

	bodyReader := bufio.NewReader(resp.Body)
	e := DeterminEncoding(bodyReader, resp.Header.Get("Content-Type"))
	utf8Reader := transform.NewReader(bodyReader, e.NewDecoder())

	return io.ReadAll(utf8Reader)
}

// DeterminEncoding sniffs the first KB of the body, falling back to UTF-8.
func DeterminEncoding(r *bufio.Reader, contentType string) encoding.Encoding {
	bytes, err := r.Peek(1024)
	if err != nil && err != io.EOF {
		zap.L().Error("fetch failed", zap.Error(err))

		return unicode.UTF8
	}

	e, _, _ := charset.DetermineEncoding(bytes, contentType)

	return e
}
