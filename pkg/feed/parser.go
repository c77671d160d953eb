// Package feed fetches and parses RSS/Atom feeds into sanitized articles
package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/readlist/pkg/domain"
)

// Parser parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
	strict    *bluemonday.Policy // titles and authors, no markup at all
	ugc       *bluemonday.Policy // article content, safe formatting only
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		strict:    bluemonday.StrictPolicy(),
		ugc:       bluemonday.UGCPolicy(),
	}
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &domain.ParsedFeed{
		Title:       p.text(feed.Title),
		Description: p.text(feed.Description),
		Link:        feed.Link,
		Items:       make([]domain.ParsedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		parsedItem := domain.ParsedItem{
			Title: p.text(item.Title),
			Link:  item.Link,
		}

		// full content preferred, description is often a teaser
		content := item.Content
		if strings.TrimSpace(content) == "" {
			content = item.Description
		}
		parsedItem.Content = strings.TrimSpace(p.ugc.Sanitize(content))

		switch {
		case item.GUID != "":
			parsedItem.GUID = item.GUID
		case item.Link != "":
			parsedItem.GUID = item.Link
		default:
			parsedItem.GUID = fmt.Sprintf("%s-%s", feed.Title, item.Title)
		}

		if item.Author != nil {
			parsedItem.Author = p.text(item.Author.Name)
		}

		switch {
		case item.PublishedParsed != nil:
			parsedItem.Published = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			parsedItem.Published = *item.UpdatedParsed
		}

		result.Items = append(result.Items, parsedItem)
	}

	return result, nil
}

// text strips all markup and unescapes entities, the policy escapes what it keeps
func (p *Parser) text(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.strict.Sanitize(s)))
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
