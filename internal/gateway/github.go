// Package gateway provides the GitHub REST API client and the lazy
// paginated commit sequence built on top of it.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/ehogberg/happygit/internal/domain"
)

// Fetcher defines the behavior of a gateway for streaming commit history.
type Fetcher interface {
	ListCommits(ctx context.Context, owner, repo, since string) iter.Seq2[domain.Commit, error]
}

// Client is the concrete GitHub implementation of the Fetcher interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a GitHub client that authenticates every request with
// the given token, sent as "Authorization: token <TOKEN>" (the classic
// GitHub scheme). baseURL is the API root, e.g. https://api.github.com.
func NewClient(token, baseURL string, logger *logrus.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "token"})

	return &Client{
		httpClient: oauth2.NewClient(context.Background(), ts),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger,
	}
}

// QueryPage issues exactly one GET for pageURL, decodes the JSON array of
// commit records, and returns the records together with the URL of the
// next page. The next URL comes from the rel="next" entry of the Link
// response header and is empty when the header names no further page.
func (c *Client) QueryPage(ctx context.Context, pageURL string) ([]domain.Commit, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", NewAPIError(0, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", NewAPIError(resp.StatusCode, "failed to read response body", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", NewAPIError(resp.StatusCode, string(body), nil)
	}

	var commits []domain.Commit
	if err := json.Unmarshal(body, &commits); err != nil {
		return nil, "", NewAPIError(resp.StatusCode, "failed to decode response", err)
	}

	return commits, parseNextLink(resp.Header.Get("Link")), nil
}

// ListCommits returns the repository's commit history since the given
// ISO date as a single logical sequence. Records are yielded page by
// page in API order, and the next page is requested only once the
// current page's records have been consumed, so a traversal abandoned
// early issues no further requests. The sequence is forward-only and
// single-use: each record is produced at most once, and a drained or
// failed sequence yields nothing when ranged again. The first transport
// or decode error is yielded as the final element and ends the
// sequence; there is no partial-result recovery and no retry.
func (c *Client) ListCommits(ctx context.Context, owner, repo, since string) iter.Seq2[domain.Commit, error] {
	next := c.commitsURL(owner, repo, since)
	page := 0
	return func(yield func(domain.Commit, error) bool) {
		for next != "" {
			page++
			c.logger.WithFields(logrus.Fields{
				"repo": owner + "/" + repo,
				"page": page,
			}).Debug("fetching commits page")

			commits, nextURL, err := c.QueryPage(ctx, next)
			if err != nil {
				next = ""
				yield(domain.Commit{}, err)
				return
			}
			// Advance before yielding so an abandoned traversal can
			// never replay records it already produced.
			next = nextURL

			for _, commit := range commits {
				if !yield(commit, nil) {
					return
				}
			}
		}
	}
}

// commitsURL builds the first-page URL for a repository's commit listing.
// Later pages come verbatim from the Link header.
func (c *Client) commitsURL(owner, repo, since string) string {
	query := url.Values{}
	query.Set("since", since)
	return fmt.Sprintf("%s/repos/%s/%s/commits?%s", c.baseURL, owner, repo, query.Encode())
}

// parseNextLink extracts the rel="next" URL from a Link response header.
// Header values look like:
//
//	<https://api.github.com/...&page=2>; rel="next", <https://...&page=7>; rel="last"
//
// A relation list may carry several names on one entry (rel="next last"
// still names the next page). Relation names compare case-insensitively.
// Returns "" when no entry's relations include "next".
func parseNextLink(header string) string {
	for _, entry := range strings.Split(header, ",") {
		parts := strings.Split(entry, ";")
		if len(parts) < 2 {
			continue
		}

		target := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		for _, param := range parts[1:] {
			name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(name), "rel") {
				continue
			}
			for _, rel := range strings.Fields(strings.Trim(value, `"`)) {
				if strings.EqualFold(rel, "next") {
					return strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")
				}
			}
		}
	}
	return ""
}
