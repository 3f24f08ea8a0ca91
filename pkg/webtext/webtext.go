// Package webtext fetches web pages and extracts their Sanskrit text.
// Digital editions annotate Devanagari with transliteration in ruby
// tags and with superscript footnote markers; both would be merged
// into the extracted text by readability, so they are stripped first.
package webtext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxBodySize caps fetched HTML to keep untrusted URLs from exhausting memory.
const maxBodySize = 10 * 1024 * 1024

var (
	reRT  = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP  = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
	reSup = regexp.MustCompile(`(?si)<sup\b[^>]*>.*?</sup>`)
)

// Sanitize removes ruby readings (<rt>, <rp>) and superscript footnote
// markers (<sup>) from HTML content. Operates on bytes; the tag names
// are ASCII so this is safe for any ASCII-compatible encoding.
func Sanitize(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	cleaned = reRP.ReplaceAll(cleaned, nil)
	cleaned = reSup.ReplaceAll(cleaned, nil)
	return cleaned
}

// Article is the extracted content of one fetched page.
type Article struct {
	Title    string
	SiteName string
	Text     string
}

// Fetch downloads a page with browser-like headers. Some hosts return
// 403 to default Go user agents.
func Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("webtext: build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,sa;q=0.8,hi;q=0.7")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webtext: fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("webtext: fetch %s: status %d", pageURL, resp.StatusCode)
	}
	if resp.ContentLength > maxBodySize {
		return nil, fmt.Errorf("webtext: content length %d exceeds %d bytes", resp.ContentLength, maxBodySize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("webtext: read body: %w", err)
	}
	if len(body) >= maxBodySize {
		return nil, fmt.Errorf("webtext: body exceeds %d bytes", maxBodySize)
	}
	return body, nil
}

// Extract sanitizes the HTML and pulls out the readable article text.
// pageURL helps readability resolve relative links and may be empty.
func Extract(content []byte, pageURL string) (Article, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("webtext: parse url: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(Sanitize(content)), parsed)
	if err != nil {
		return Article{}, fmt.Errorf("webtext: extract article: %w", err)
	}
	return Article{
		Title:    article.Title,
		SiteName: article.SiteName,
		Text:     article.TextContent,
	}, nil
}
