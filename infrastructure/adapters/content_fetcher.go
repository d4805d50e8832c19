package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podcast-gateway/application/ports/outbound"
	"podcast-gateway/config"
)

type contentFetcher struct {
	logger     outbound.LoggerPort
	httpClient *http.Client
	cfg        *config.FetcherConfig
}

// NewContentFetcher builds the page fetcher used for URL content sources.
// It strips markup down to readable text; callers treat per-URL failures
// as non-fatal.
func NewContentFetcher(cfg *config.FetcherConfig, logger outbound.LoggerPort) outbound.ContentFetcherPort {
	return &contentFetcher{
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

func (c *contentFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml")

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to fetch source URL", map[string]interface{}{
			"url": url,
		})
		return "", err
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			c.logger.Error(cerr, "Failed to close response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		c.logger.ErrorWithFields(nil, "Source URL returned non-OK status", map[string]interface{}{
			"url":    url,
			"status": res.StatusCode,
		})
		return "", fmt.Errorf("fetch %s: status %d", url, res.StatusCode)
	}

	body := io.LimitReader(res.Body, c.cfg.MaxBodyBytes)
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	var builder strings.Builder
	doc.Find("h1, h2, h3, p, li, article").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			builder.WriteString(text)
			builder.WriteString("\n")
		}
	})

	text := strings.TrimSpace(builder.String())
	if text == "" {
		// Pages without the usual content tags fall back to the body text.
		text = strings.TrimSpace(doc.Find("body").Text())
	}

	c.logger.DebugWithFields("Fetched source URL", map[string]interface{}{
		"url":   url,
		"bytes": len(text),
	})

	return text, nil
}
