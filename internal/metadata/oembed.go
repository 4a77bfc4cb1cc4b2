// Package metadata looks up a canonical title for a known-platform URL via
// the unauthenticated YouTube oEmbed endpoint. Every failure degrades
// silently to "no title available".
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vmedia/showreel/internal/domain"
	"github.com/vmedia/showreel/internal/utils"
)

const defaultEndpoint = "https://www.youtube.com/oembed"

// Client performs oEmbed lookups.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates an oEmbed client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		endpoint:   defaultEndpoint,
	}
}

// Title returns the canonical title for a known-platform video URL, or ""
// when the platform is unsupported or the lookup fails for any reason.
// The error return is always nil; it exists so call sites read naturally.
func (c *Client) Title(ctx context.Context, rawURL string) (string, error) {
	if domain.Classify(rawURL) != domain.PlatformYouTube {
		return "", nil
	}

	lookup := fmt.Sprintf("%s?format=json&url=%s", c.endpoint, url.QueryEscape(rawURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookup, nil)
	if err != nil {
		return "", nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", nil
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", nil
	}
	return payload.Title, nil
}
