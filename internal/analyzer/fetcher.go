package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

const MaxHops = 15

// Fetcher downloads the raw HTML of a single page. One outbound GET per
// call, no retries.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Transport: &http.Transport{
				DisableKeepAlives: true,
				MaxIdleConns:      0,
			},
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxHops {
					return fmt.Errorf("stopped after %d redirects (MaxHops exceeded)", MaxHops)
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Fetch returns the decoded response body for a 2xx status. Non-2xx yields a
// StatusError, timeouts wrap ErrTimeout, everything else is a network error.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		var netErr net.Error
		if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{Status: resp.StatusCode}
	}

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		utf8Reader = resp.Body
	}

	body, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
