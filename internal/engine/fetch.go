package engine

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"
)

const defaultMaxBodyBytes = 8 * 1024 * 1024

// limiter paces all upstream requests.
var limiter = rate.NewLimiter(rate.Inf, 1)

func initLimiter(rps float64) {
	if rps <= 0 {
		limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

func maxBodyBytes() int64 {
	if Cfg.MaxBodyBytes > 0 {
		return Cfg.MaxBodyBytes
	}
	return defaultMaxBodyBytes
}

// newFetchClient creates an HTTP client with proper settings for web scraping.
func newFetchClient() *http.Client {
	timeout := Cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			DisableCompression:  false,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

func httpClient() *http.Client {
	if Cfg.HTTPClient != nil {
		return Cfg.HTTPClient
	}
	return newFetchClient()
}

// FetchPage GETs a page with browser-grade headers and returns the body.
// The TLS-fingerprint client is preferred when configured; on its failure the
// plain client takes over.
func FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	metrics.FetchRequests.Add(1)
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if Cfg.BrowserClient != nil {
		body, status, err := Cfg.BrowserClient.Do(http.MethodGet, pageURL, ChromeHeaders(), nil)
		if err == nil && status == http.StatusOK {
			return body, nil
		}
		slog.Debug("fetch: browser client failed, using plain client",
			slog.Int("status", status), slog.Any("error", err))
	}

	resp, err := fetchWithRetry(ctx, pageURL)
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}
	return body, nil
}

// PostJSON POSTs a JSON payload and returns the response body on HTTP 200.
func PostJSON(ctx context.Context, postURL string, headers map[string]string, payload []byte) ([]byte, error) {
	metrics.FetchRequests.Add(1)
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, postURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", RandomUserAgent())
		req.Header.Set("Accept", "*/*")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return httpClient().Do(req)
	})
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, fmt.Errorf("post %s: %w", postURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		metrics.FetchErrors.Add(1)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes()))
}

// fetchWithRetry performs an HTTP GET with retry logic using exponential backoff.
func fetchWithRetry(ctx context.Context, fetchURL string) (*http.Response, error) {
	client := httpClient()

	operation := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
		if err != nil {
			return nil, err
		}

		req.Header.Set("User-Agent", RandomUserAgent())
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept-Encoding", "gzip, deflate")

		resp, err := client.Do(req)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		if isRetryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}

		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3), backoff.WithMaxElapsedTime(30*time.Second))
}

// readResponseBody reads the response body, handling gzip decompression if needed.
func readResponseBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return io.ReadAll(io.LimitReader(r, maxBodyBytes()))
}
