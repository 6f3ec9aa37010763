package ingest

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const (
	defaultFetchTimeout   = 30 * time.Second
	defaultMaxContentSize = 5 << 20 // 5 MiB
	defaultUserAgent      = "archlens/1.0 (+https://github.com/archlens/archlens)"
	maxRedirects          = 5
)

// Fetcher retrieves remote documentation pages and extracts their
// readable content as markdown.
type Fetcher struct {
	client         *http.Client
	converter      *Converter
	userAgent      string
	maxContentSize int64
}

// NewFetcher creates a fetcher with the given timeout. A zero timeout
// uses the default.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects (max %d)", maxRedirects)
				}
				return validateURL(req.URL)
			},
		},
		converter:      NewConverter(),
		userAgent:      defaultUserAgent,
		maxContentSize: defaultMaxContentSize,
	}
}

// Fetch downloads the page at rawURL and returns its readable content
// rendered as markdown.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if err := validateURL(parsed); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxContentSize+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxContentSize {
		return "", fmt.Errorf("fetch %s: content exceeds %d bytes", rawURL, f.maxContentSize)
	}

	article, err := readability.FromReader(strings.NewReader(string(body)), parsed)
	if err != nil {
		// Not every page is an article; fall back to full conversion.
		return f.converter.Convert(body)
	}

	markdown, err := f.converter.Convert([]byte(article.Content))
	if err != nil {
		return "", err
	}
	if article.Title != "" && !strings.HasPrefix(markdown, "# ") {
		markdown = "# " + article.Title + "\n\n" + markdown
	}
	return markdown, nil
}

// validateURL blocks non-HTTP schemes, localhost, local domains, and
// private IP literals.
func validateURL(u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if host == "localhost" || strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".internal") {
		return fmt.Errorf("local host %q is not allowed", host)
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return fmt.Errorf("private address %s is not allowed", ip)
		}
	}
	return nil
}
